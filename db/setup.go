package db

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/scriba-dev/scriba/internal/config"
	"github.com/scriba-dev/scriba/internal/models"
)

// Connect opens the Postgres handle used by the whole process. The handle
// is returned to the caller rather than stored in a package global, so
// stores and handlers receive it explicitly at startup.
func Connect(cfg config.Config) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})

	if err != nil {
		return nil, err
	}

	sqlDB, err := conn.DB()

	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return conn, nil
}

func Migrate(conn *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.Article{},
	}

	migrator := conn.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := conn.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return nil
}
