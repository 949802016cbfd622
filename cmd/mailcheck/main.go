// Command mailcheck sends one verification email through the configured
// transport so credentials can be checked before deploying.
package main

import (
	"context"
	"flag"
	"time"

	log "github.com/sirupsen/logrus"

	"venuebook/utils"
)

func main() {
	to := flag.String("to", "", "recipient address")
	flag.Parse()

	if err := utils.ValidateEmail(*to); err != nil {
		log.Fatalf("invalid -to address: %v", err)
	}

	cfg, err := utils.LoadConfig()
	if err != nil {
		log.Warnf("config: %v", err)
	}
	utils.SetupLogger(cfg.LogLevel)

	mailer, err := utils.NewMailer(cfg)
	if err != nil {
		log.Fatalf("mailer error: %v", err)
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = utils.SendOTP(ctx, mailer, *to, otp); err != nil {
		log.Fatalf("send failed: %v", err)
	}
	log.Println("success")
}
