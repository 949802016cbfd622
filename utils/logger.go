package utils

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// SetupLogger configures the global logrus logger, falling back to info on
// an unknown level.
func SetupLogger(logLevel string) {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetFormatter(&log.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(level)
}
