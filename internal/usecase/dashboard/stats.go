package dashboard

import (
	"context"
	"time"

	"github.com/VidaPediatria/clinic-api/internal/cache"
	apdomain "github.com/VidaPediatria/clinic-api/internal/domain/appointment"
	"github.com/VidaPediatria/clinic-api/internal/dto"
	"github.com/VidaPediatria/clinic-api/internal/models"
	"github.com/VidaPediatria/clinic-api/internal/timezone"
)

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = 15 * time.Second // piso do polling dos clientes
)

type Repository interface {
	GetClinicSettings(ctx context.Context) (*models.ClinicSettings, error)
	ListAllAppointments(ctx context.Context) ([]models.Appointment, error)
}

type GetStats struct {
	repo  Repository
	cache *cache.Cache
}

func NewGetStats(repo Repository, c *cache.Cache) *GetStats {
	return &GetStats{repo: repo, cache: c}
}

func (uc *GetStats) Execute(ctx context.Context) (*dto.DashboardStatsDTO, error) {

	var cached dto.DashboardStatsDTO
	if hit, err := uc.cache.GetJSON(ctx, statsCacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	settings, err := uc.repo.GetClinicSettings(ctx)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListAllAppointments(ctx)
	if err != nil {
		return nil, err
	}

	stats := ComputeStats(appointments, timezone.NowIn(settings.Timezone), settings.Timezone)

	// cache best-effort: falha de escrita não afeta a resposta
	_ = uc.cache.SetJSON(ctx, statsCacheKey, stats, statsCacheTTL)

	return stats, nil
}

// ComputeStats agrega a coleção inteira. "Hoje" usa limites de dia civil
// no fuso da clínica. Receita soma os preços base dos serviços de
// agendamentos não cancelados (sem no-show).
func ComputeStats(
	appointments []models.Appointment,
	now time.Time,
	tz string,
) *dto.DashboardStatsDTO {

	stats := &dto.DashboardStatsDTO{
		ByStatus: make(map[string]int64),
	}

	for _, ap := range appointments {
		stats.TotalAppointments++
		stats.ByStatus[ap.Status]++

		today := timezone.SameDay(ap.CreatedAt, now, tz)
		if today {
			stats.TodayAppointments++
		}

		if countsForRevenue(apdomain.Status(ap.Status)) {
			total := apdomain.TotalForLines(ap.Services)
			stats.TotalRevenue += total
			if today {
				stats.TodayRevenue += total
			}
		}
	}

	return stats
}

func countsForRevenue(s apdomain.Status) bool {
	return s != apdomain.StatusCanceled && s != apdomain.StatusNoShow
}
