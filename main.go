package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/slotbook/slotbook/internal/app"
)

func init() {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		logrusLevel, err := log.ParseLevel(level)
		if err != nil {
			log.Fatal(err)
		}
		log.SetLevel(logrusLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	configPath := os.Getenv("SLOTBOOK_CONFIG")
	if configPath == "" {
		configPath = app.DefaultConfigPath
	}

	application, err := app.NewApplication(configPath)
	if err != nil {
		log.WithField("config", configPath).Fatalf("failed to initialize application: %v", err)
	}
	log.WithFields(log.Fields{
		"config": configPath,
		"addr":   application.Addr(),
	}).Info("slotbook ready")

	if err := application.Run(); err != nil {
		log.Fatal(err)
	}
}
