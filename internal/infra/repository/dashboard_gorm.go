package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/VidaPediatria/clinic-api/internal/models"
	"github.com/VidaPediatria/clinic-api/internal/usecase/dashboard"
)

type DashboardGormRepository struct {
	db *gorm.DB
}

func NewDashboardGormRepository(db *gorm.DB) *DashboardGormRepository {
	return &DashboardGormRepository{db: db}
}

func (r *DashboardGormRepository) GetClinicSettings(
	ctx context.Context,
) (*models.ClinicSettings, error) {

	var settings models.ClinicSettings
	if err := r.db.WithContext(ctx).First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *DashboardGormRepository) ListAllAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Services.Service").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *DashboardGormRepository) CountAppointmentsByDay(
	ctx context.Context,
	start time.Time,
	end time.Time,
) (map[string]int64, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "scheduled_at").
		Where("scheduled_at >= ? AND scheduled_at < ?", start, end).
		Find(&apps).Error; err != nil {
		return nil, err
	}

	loc := start.Location()
	counts := make(map[string]int64)
	for _, ap := range apps {
		counts[ap.ScheduledAt.In(loc).Format("2006-01-02")]++
	}

	return counts, nil
}

// Compile-time check
var _ dashboard.SeriesRepository = (*DashboardGormRepository)(nil)
