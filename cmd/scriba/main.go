package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/scriba-dev/scriba/db"
	"github.com/scriba-dev/scriba/internal/config"
	"github.com/scriba-dev/scriba/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, reading configuration from environment")
	}

	cfg := config.Load()

	conn, err := db.Connect(cfg)

	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	if err := db.Migrate(conn); err != nil {
		logrus.WithError(err).Fatal("Failed to migrate database")
	}

	r := router.New(conn)

	logrus.WithField("port", cfg.Port).Info("Starting server")

	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("Failed to start server")
	}
}
