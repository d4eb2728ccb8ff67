package db

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/edumart/edumart-back/internal/models"
)

var DB *gorm.DB

// ErrConflict reports a write that would violate a uniqueness rule,
// e.g. a second teacher request for the same email.
var ErrConflict = errors.New("db: conflicting record exists")

func InitDB(dsn string) {
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	if err := Migrate(DB); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	log.Info().Msg("database connected and migrated")
}

// Migrate creates or updates the schema for every collection.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.TeacherRequest{},
		&models.Class{},
		&models.Assignment{},
		&models.Payment{},
		&models.Feedback{},
	)
}

func PingDB() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
