package appointment

import (
	"context"
	"time"

	"github.com/VidaPediatria/clinic-api/internal/models"
)

type Repository interface {
	// -------- Settings --------
	GetClinicSettings(
		ctx context.Context,
	) (*models.ClinicSettings, error)

	// -------- Patient --------
	GetPatient(
		ctx context.Context,
		patientID uint,
	) (*models.Patient, error)

	// -------- Services --------
	GetActiveServices(
		ctx context.Context,
		serviceIDs []uint,
	) ([]models.Service, error)

	// -------- Appointment (create) --------
	// Cria agendamento + linhas de serviço + resultados pendentes
	// em uma única transação. Falha de qualquer parte desfaz tudo.
	CreateAppointmentWithServices(
		ctx context.Context,
		ap *models.Appointment,
		serviceIDs []uint,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listing --------
	ListAppointmentsForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsByStatus(
		ctx context.Context,
		statuses []Status,
	) ([]models.Appointment, error)

	// -------- Operating hours --------
	GetOperatingHours(
		ctx context.Context,
		weekday int,
	) (*models.OperatingHours, error)

	IsWithinOperatingHours(
		ctx context.Context,
		start time.Time,
	) (bool, error)

	ListScheduledForDay(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
