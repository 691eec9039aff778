package examresult

import (
	"context"
	"errors"

	domain "github.com/VidaPediatria/clinic-api/internal/domain/examresult"
	"github.com/VidaPediatria/clinic-api/internal/models"
)

// Compile-time check to ensure mockRepository implements domain.Repository
var _ domain.Repository = (*mockRepository)(nil)

type mockRepository struct {
	GetAppointmentServiceLineFunc func(ctx context.Context, appointmentID, serviceID uint) (*models.AppointmentService, error)
	GetResultFunc                 func(ctx context.Context, appointmentID, serviceID uint) (*models.ExamResult, error)
	GetAppointmentPatientIDFunc   func(ctx context.Context, appointmentID uint) (uint, error)
	SaveResultFunc                func(ctx context.Context, line *models.AppointmentService, result *models.ExamResult) error
	ListResultsForAppointmentFunc func(ctx context.Context, appointmentID uint) ([]models.ExamResult, error)
}

func (m *mockRepository) GetAppointmentServiceLine(ctx context.Context, appointmentID, serviceID uint) (*models.AppointmentService, error) {
	if m.GetAppointmentServiceLineFunc != nil {
		return m.GetAppointmentServiceLineFunc(ctx, appointmentID, serviceID)
	}
	return &models.AppointmentService{AppointmentID: appointmentID, ServiceID: serviceID}, nil
}

func (m *mockRepository) GetResult(ctx context.Context, appointmentID, serviceID uint) (*models.ExamResult, error) {
	if m.GetResultFunc != nil {
		return m.GetResultFunc(ctx, appointmentID, serviceID)
	}
	return nil, nil
}

func (m *mockRepository) GetAppointmentPatientID(ctx context.Context, appointmentID uint) (uint, error) {
	if m.GetAppointmentPatientIDFunc != nil {
		return m.GetAppointmentPatientIDFunc(ctx, appointmentID)
	}
	return 1, nil
}

func (m *mockRepository) SaveResult(ctx context.Context, line *models.AppointmentService, result *models.ExamResult) error {
	if m.SaveResultFunc != nil {
		return m.SaveResultFunc(ctx, line, result)
	}
	return nil
}

func (m *mockRepository) ListResultsForAppointment(ctx context.Context, appointmentID uint) ([]models.ExamResult, error) {
	if m.ListResultsForAppointmentFunc != nil {
		return m.ListResultsForAppointmentFunc(ctx, appointmentID)
	}
	return nil, errors.New("ListResultsForAppointmentFunc not implemented in mock")
}
