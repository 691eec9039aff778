package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/VidaPediatria/clinic-api/internal/httperr"
	"github.com/VidaPediatria/clinic-api/internal/models"
)

func availabilityRepo(appointments []models.Appointment) *mockRepository {
	return &mockRepository{
		GetOperatingHoursFunc: func(ctx context.Context, weekday int) (*models.OperatingHours, error) {
			return &models.OperatingHours{
				Weekday:    weekday,
				StartTime:  "08:00",
				EndTime:    "12:00",
				LunchStart: "10:00",
				LunchEnd:   "11:00",
				Active:     true,
			}, nil
		},
		ListScheduledForDayFunc: func(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
			return appointments, nil
		},
	}
}

func TestGetAvailability_SkipsLunchAndBookedSlots(t *testing.T) {
	loc, _ := time.LoadLocation("America/Sao_Paulo")
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, loc)

	booked := []models.Appointment{
		{ScheduledAt: time.Date(2026, 9, 10, 8, 30, 0, 0, loc)},
	}

	uc := NewGetAvailability(availabilityRepo(booked))

	slots, err := uc.Execute(context.Background(), date, 30)
	assert.NoError(t, err)

	starts := make([]string, 0, len(slots))
	for _, s := range slots {
		starts = append(starts, s.Start)
	}

	// 08:30 ocupado; 10:00-11:00 é almoço
	assert.Equal(t, []string{
		"08:00", "09:00", "09:30",
		"11:00", "11:30",
	}, starts)
}

func TestGetAvailability_DayWithoutOperatingHours(t *testing.T) {
	repo := &mockRepository{
		GetOperatingHoursFunc: func(ctx context.Context, weekday int) (*models.OperatingHours, error) {
			return nil, httperr.ErrBusiness("not_found")
		},
	}

	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), time.Now(), 30)
	assert.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailability_DefaultSlotSize(t *testing.T) {
	uc := NewGetAvailability(availabilityRepo(nil))

	loc, _ := time.LoadLocation("America/Sao_Paulo")
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, loc)

	slots, err := uc.Execute(context.Background(), date, 0)
	assert.NoError(t, err)
	// 4h úteis menos 1h de almoço em janelas de 30min
	assert.Len(t, slots, 6)
}
