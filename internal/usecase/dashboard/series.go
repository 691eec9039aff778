package dashboard

import (
	"context"
	"time"

	"github.com/VidaPediatria/clinic-api/internal/dto"
	"github.com/VidaPediatria/clinic-api/internal/httperr"
	"github.com/VidaPediatria/clinic-api/internal/timezone"
)

type SeriesRepository interface {
	Repository
	CountAppointmentsByDay(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) (map[string]int64, error)
}

// GetDailySeries devolve a contagem de agendamentos por dia civil dentro
// do intervalo, no fuso da clínica. Dias sem agendamento aparecem com zero.
type GetDailySeries struct {
	repo SeriesRepository
}

func NewGetDailySeries(repo SeriesRepository) *GetDailySeries {
	return &GetDailySeries{repo: repo}
}

func (uc *GetDailySeries) Execute(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]dto.DailyCountDTO, error) {

	if to.Before(from) {
		return nil, httperr.ErrBusiness("invalid_range")
	}

	settings, err := uc.repo.GetClinicSettings(ctx)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(settings.Timezone)

	start, _ := timezone.DayBounds(from, settings.Timezone)
	_, end := timezone.DayBounds(to, settings.Timezone)

	counts, err := uc.repo.CountAppointmentsByDay(ctx, start, end)
	if err != nil {
		return nil, err
	}

	var series []dto.DailyCountDTO
	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		key := day.In(loc).Format("2006-01-02")
		series = append(series, dto.DailyCountDTO{
			Day:   key,
			Count: counts[key],
		})
	}

	return series, nil
}
