package examresult

import (
	"context"

	"github.com/VidaPediatria/clinic-api/internal/models"
)

type Repository interface {
	GetAppointmentServiceLine(
		ctx context.Context,
		appointmentID uint,
		serviceID uint,
	) (*models.AppointmentService, error)

	// GetResult devolve (nil, nil) quando não há linha canônica ainda.
	GetResult(
		ctx context.Context,
		appointmentID uint,
		serviceID uint,
	) (*models.ExamResult, error)

	GetAppointmentPatientID(
		ctx context.Context,
		appointmentID uint,
	) (uint, error)

	// Atualiza a cópia desnormalizada na linha do join E faz upsert da
	// linha canônica de exam_results na mesma transação. A dupla escrita
	// nunca fica pela metade.
	SaveResult(
		ctx context.Context,
		line *models.AppointmentService,
		result *models.ExamResult,
	) error

	ListResultsForAppointment(
		ctx context.Context,
		appointmentID uint,
	) ([]models.ExamResult, error)
}
