package appointment

import (
	"context"
	"time"

	domain "github.com/VidaPediatria/clinic-api/internal/domain/appointment"
	"github.com/VidaPediatria/clinic-api/internal/dto"
	"github.com/VidaPediatria/clinic-api/internal/models"
	"github.com/VidaPediatria/clinic-api/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	settings, err := uc.repo.GetClinicSettings(ctx)
	if err != nil {
		return nil, err
	}

	start, end := timezone.DayBounds(date, settings.Timezone)

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return toListDTOs(appointments), nil
}

func toListDTOs(appointments []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		names := make([]string, 0, len(ap.Services))
		for _, line := range ap.Services {
			names = append(names, line.Service.Name)
		}

		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			ScheduledAt: ap.ScheduledAt,
			Status:      ap.Status,
			PatientName: ap.Patient.Name,
			Services:    names,
			Total:       domain.TotalForLines(ap.Services),
		})
	}
	return out
}
