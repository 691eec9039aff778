package db

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/VidaPediatria/clinic-api/internal/config"
	"github.com/VidaPediatria/clinic-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.ClinicSettings{},
		&models.User{},
		&models.Patient{},
		&models.Service{},
		&models.OperatingHours{},
		&models.Appointment{},
		&models.AppointmentService{},
		&models.ExamResult{},
		&models.InventoryItem{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	db.Exec(`
        UPDATE clinic_settings
        SET timezone = ?
        WHERE timezone IS NULL OR timezone = ''
    `, cfg.Timezone)

	return db
}
