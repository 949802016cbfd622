package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"venuebook/handlers"
	"venuebook/utils"
)

func main() {
	cfg, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	utils.SetupLogger(cfg.LogLevel)
	log.WithField("environment", cfg.AppEnv).Info("starting")

	// Initialize the database connection pool
	dbPool, err := utils.OpenDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	if err = utils.RunMigrations(context.Background(), dbPool); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	var otpStore utils.OTPStore
	if cfg.RedisURL != "" {
		redisPool, err := utils.OpenRedisPool(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer redisPool.Close()
		otpStore = utils.NewRedisOTPStore(redisPool)
	} else {
		log.Warn("REDIS_URL not set, OTP codes are kept in process memory")
		otpStore = utils.NewMemoryOTPStore()
	}

	mailer, err := utils.NewMailer(cfg)
	if err != nil {
		log.Fatalf("mailer error: %v", err)
	}

	a := &app{
		db:       dbPool,
		otpStore: otpStore,
		mailer:   mailer,
		otpTTL:   cfg.OTPTTL,
		tokens: handlers.TokenConfig{
			Secret:   []byte(cfg.JWTSecret),
			Validity: cfg.JWTTTL,
		},
		requireAdminToken: cfg.RequireAdminToken,
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           a.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infof("Starting server on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("Server failed: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("shutdown: %v", err)
	}
}
