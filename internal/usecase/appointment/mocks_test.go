package appointment

import (
	"context"
	"errors"
	"time"

	domain "github.com/VidaPediatria/clinic-api/internal/domain/appointment"
	"github.com/VidaPediatria/clinic-api/internal/models"
)

// Compile-time check to ensure mockRepository implements domain.Repository
var _ domain.Repository = (*mockRepository)(nil)

type mockRepository struct {
	GetClinicSettingsFunc             func(ctx context.Context) (*models.ClinicSettings, error)
	GetPatientFunc                    func(ctx context.Context, patientID uint) (*models.Patient, error)
	GetActiveServicesFunc             func(ctx context.Context, serviceIDs []uint) ([]models.Service, error)
	CreateAppointmentWithServicesFunc func(ctx context.Context, ap *models.Appointment, serviceIDs []uint) error
	GetAppointmentFunc                func(ctx context.Context, appointmentID uint) (*models.Appointment, error)
	UpdateAppointmentFunc             func(ctx context.Context, ap *models.Appointment) error
	ListAppointmentsForPeriodFunc     func(ctx context.Context, start, end time.Time) ([]models.Appointment, error)
	ListAppointmentsByStatusFunc      func(ctx context.Context, statuses []domain.Status) ([]models.Appointment, error)
	GetOperatingHoursFunc             func(ctx context.Context, weekday int) (*models.OperatingHours, error)
	IsWithinOperatingHoursFunc        func(ctx context.Context, start time.Time) (bool, error)
	ListScheduledForDayFunc           func(ctx context.Context, start, end time.Time) ([]models.Appointment, error)
}

func (m *mockRepository) GetClinicSettings(ctx context.Context) (*models.ClinicSettings, error) {
	if m.GetClinicSettingsFunc != nil {
		return m.GetClinicSettingsFunc(ctx)
	}
	return &models.ClinicSettings{ID: 1, Timezone: "America/Sao_Paulo"}, nil
}

func (m *mockRepository) GetPatient(ctx context.Context, patientID uint) (*models.Patient, error) {
	if m.GetPatientFunc != nil {
		return m.GetPatientFunc(ctx, patientID)
	}
	return &models.Patient{ID: patientID, Name: "Ana Clara"}, nil
}

func (m *mockRepository) GetActiveServices(ctx context.Context, serviceIDs []uint) ([]models.Service, error) {
	if m.GetActiveServicesFunc != nil {
		return m.GetActiveServicesFunc(ctx, serviceIDs)
	}
	return nil, errors.New("GetActiveServicesFunc not implemented in mock")
}

func (m *mockRepository) CreateAppointmentWithServices(ctx context.Context, ap *models.Appointment, serviceIDs []uint) error {
	if m.CreateAppointmentWithServicesFunc != nil {
		return m.CreateAppointmentWithServicesFunc(ctx, ap, serviceIDs)
	}
	ap.ID = 1
	return nil
}

func (m *mockRepository) GetAppointment(ctx context.Context, appointmentID uint) (*models.Appointment, error) {
	if m.GetAppointmentFunc != nil {
		return m.GetAppointmentFunc(ctx, appointmentID)
	}
	return nil, errors.New("GetAppointmentFunc not implemented in mock")
}

func (m *mockRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if m.UpdateAppointmentFunc != nil {
		return m.UpdateAppointmentFunc(ctx, ap)
	}
	return nil
}

func (m *mockRepository) ListAppointmentsForPeriod(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
	if m.ListAppointmentsForPeriodFunc != nil {
		return m.ListAppointmentsForPeriodFunc(ctx, start, end)
	}
	return nil, nil
}

func (m *mockRepository) ListAppointmentsByStatus(ctx context.Context, statuses []domain.Status) ([]models.Appointment, error) {
	if m.ListAppointmentsByStatusFunc != nil {
		return m.ListAppointmentsByStatusFunc(ctx, statuses)
	}
	return nil, nil
}

func (m *mockRepository) GetOperatingHours(ctx context.Context, weekday int) (*models.OperatingHours, error) {
	if m.GetOperatingHoursFunc != nil {
		return m.GetOperatingHoursFunc(ctx, weekday)
	}
	return nil, errors.New("GetOperatingHoursFunc not implemented in mock")
}

func (m *mockRepository) IsWithinOperatingHours(ctx context.Context, start time.Time) (bool, error) {
	if m.IsWithinOperatingHoursFunc != nil {
		return m.IsWithinOperatingHoursFunc(ctx, start)
	}
	return true, nil
}

func (m *mockRepository) ListScheduledForDay(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
	if m.ListScheduledForDayFunc != nil {
		return m.ListScheduledForDayFunc(ctx, start, end)
	}
	return nil, nil
}
