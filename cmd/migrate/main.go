// Command migrate applies the embedded schema, or rolls back its latest
// version with -down.
package main

import (
	"context"
	"database/sql"
	"flag"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	log "github.com/sirupsen/logrus"

	"venuebook/utils"
)

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	db.SetMaxOpenConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

func main() {
	down := flag.Bool("down", false, "roll back the latest migration")
	flag.Parse()

	cfg, err := utils.LoadConfig()
	if err != nil && cfg.DatabaseURL == "" {
		log.Fatalf("config error: %v", err)
	}
	utils.SetupLogger(cfg.LogLevel)

	db, err := openDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if *down {
		err = utils.MigrateDown(ctx, db)
	} else {
		err = utils.MigrateUp(ctx, db)
	}
	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	log.Info("migrations applied")
}
