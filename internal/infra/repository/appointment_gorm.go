package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/VidaPediatria/clinic-api/internal/domain/appointment"
	examdomain "github.com/VidaPediatria/clinic-api/internal/domain/examresult"
	"github.com/VidaPediatria/clinic-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Settings
// --------------------------------------------------

func (r *AppointmentGormRepository) GetClinicSettings(
	ctx context.Context,
) (*models.ClinicSettings, error) {

	var settings models.ClinicSettings
	if err := r.db.WithContext(ctx).First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// --------------------------------------------------
// Patient
// --------------------------------------------------

func (r *AppointmentGormRepository) GetPatient(
	ctx context.Context,
	patientID uint,
) (*models.Patient, error) {

	var patient models.Patient
	if err := r.db.WithContext(ctx).First(&patient, patientID).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *AppointmentGormRepository) GetActiveServices(
	ctx context.Context,
	serviceIDs []uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ? AND active = ?", serviceIDs, true).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Appointment (create)
// --------------------------------------------------

// CreateAppointmentWithServices persiste o agregado inteiro em uma
// transação: agendamento, linhas do join e um resultado pendente por
// serviço. Qualquer falha desfaz tudo.
func (r *AppointmentGormRepository) CreateAppointmentWithServices(
	ctx context.Context,
	ap *models.Appointment,
	serviceIDs []uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Create(ap).Error; err != nil {
			return err
		}

		for _, serviceID := range serviceIDs {
			line := models.AppointmentService{
				AppointmentID: ap.ID,
				ServiceID:     serviceID,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}

			result := models.ExamResult{
				AppointmentID: ap.ID,
				ServiceID:     serviceID,
				PatientID:     ap.PatientID,
				Status:        string(examdomain.InitialStatus()),
				CreatedByID:   ap.CreatedByID,
			}
			if err := tx.Create(&result).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Services.Service").
		First(&ap, appointmentID).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Omit("Patient", "Services", "CreatedBy").
		Save(ap).Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Services.Service").
		Where(
			"scheduled_at >= ? AND scheduled_at < ?",
			start,
			end,
		).
		Order("scheduled_at ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsByStatus(
	ctx context.Context,
	statuses []domain.Status,
) ([]models.Appointment, error) {

	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}

	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Services.Service").
		Where("status IN ?", values).
		Order("scheduled_at ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Operating hours
// --------------------------------------------------

func (r *AppointmentGormRepository) GetOperatingHours(
	ctx context.Context,
	weekday int,
) (*models.OperatingHours, error) {

	var oh models.OperatingHours
	if err := r.db.WithContext(ctx).
		Where("weekday = ?", weekday).
		First(&oh).Error; err != nil {
		return nil, err
	}

	return &oh, nil
}

// IsWithinOperatingHours valida o horário contra a janela do dia,
// incluindo a pausa de almoço. Sem janela configurada para o dia,
// qualquer horário é aceito (clínica sem grade definida).
func (r *AppointmentGormRepository) IsWithinOperatingHours(
	ctx context.Context,
	start time.Time,
) (bool, error) {

	weekday := int(start.Weekday())
	loc := start.Location()

	var oh models.OperatingHours
	if err := r.db.WithContext(ctx).
		Where("weekday = ?", weekday).
		First(&oh).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return true, nil
		}
		return false, err
	}

	if !oh.Active || oh.StartTime == "" || oh.EndTime == "" {
		return false, nil
	}

	parseHM := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(
			start.Year(), start.Month(), start.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	workStart := parseHM(oh.StartTime)
	workEnd := parseHM(oh.EndTime)

	if start.Before(workStart) || start.After(workEnd) {
		return false, nil
	}

	if oh.LunchStart != "" && oh.LunchEnd != "" {
		lunchStart := parseHM(oh.LunchStart)
		lunchEnd := parseHM(oh.LunchEnd)

		if !start.Before(lunchStart) && start.Before(lunchEnd) {
			return false, nil
		}
	}

	return true, nil
}

func (r *AppointmentGormRepository) ListScheduledForDay(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "scheduled_at").
		Where(
			"status = ? AND scheduled_at >= ? AND scheduled_at < ?",
			string(domain.StatusScheduled), start, end,
		).
		Order("scheduled_at ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
