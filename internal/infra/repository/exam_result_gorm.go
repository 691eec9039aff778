package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/VidaPediatria/clinic-api/internal/domain/examresult"
	"github.com/VidaPediatria/clinic-api/internal/models"
)

type ExamResultGormRepository struct {
	db *gorm.DB
}

func NewExamResultGormRepository(db *gorm.DB) *ExamResultGormRepository {
	return &ExamResultGormRepository{db: db}
}

func (r *ExamResultGormRepository) GetAppointmentServiceLine(
	ctx context.Context,
	appointmentID uint,
	serviceID uint,
) (*models.AppointmentService, error) {

	var line models.AppointmentService
	if err := r.db.WithContext(ctx).
		Where("appointment_id = ? AND service_id = ?", appointmentID, serviceID).
		First(&line).Error; err != nil {
		return nil, err
	}

	return &line, nil
}

func (r *ExamResultGormRepository) GetResult(
	ctx context.Context,
	appointmentID uint,
	serviceID uint,
) (*models.ExamResult, error) {

	var result models.ExamResult
	err := r.db.WithContext(ctx).
		Where("appointment_id = ? AND service_id = ?", appointmentID, serviceID).
		First(&result).Error

	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *ExamResultGormRepository) GetAppointmentPatientID(
	ctx context.Context,
	appointmentID uint,
) (uint, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "patient_id").
		First(&ap, appointmentID).Error; err != nil {
		return 0, err
	}

	return ap.PatientID, nil
}

// SaveResult grava a cópia desnormalizada e a linha canônica na MESMA
// transação. O upsert usa (appointment_id, service_id) como alvo de
// conflito; a segunda escrita para o par sempre vence.
func (r *ExamResultGormRepository) SaveResult(
	ctx context.Context,
	line *models.AppointmentService,
	result *models.ExamResult,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Model(&models.AppointmentService{}).
			Where("id = ?", line.ID).
			Updates(map[string]any{
				"result_data": line.ResultData,
				"notes":       line.Notes,
			}).Error; err != nil {
			return err
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "appointment_id"},
				{Name: "service_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"result_data",
				"notes",
				"status",
				"issued_at",
				"updated_by_id",
				"updated_at",
			}),
		}).Create(result).Error; err != nil {
			return err
		}

		return nil
	})
}

func (r *ExamResultGormRepository) ListResultsForAppointment(
	ctx context.Context,
	appointmentID uint,
) ([]models.ExamResult, error) {

	var results []models.ExamResult
	if err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Order("service_id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}

	return results, nil
}

// Compile-time check
var _ domain.Repository = (*ExamResultGormRepository)(nil)
