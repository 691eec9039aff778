package appointment

import (
	"context"
	"time"

	domain "github.com/VidaPediatria/clinic-api/internal/domain/appointment"
)

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// GetAvailability lista janelas livres de um dia a partir do horário de
// funcionamento da clínica, descontando almoço e agendamentos já feitos.
type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	date time.Time,
	slotMinutes int,
) ([]TimeSlot, error) {

	if slotMinutes <= 0 {
		slotMinutes = 30
	}

	weekday := int(date.Weekday())

	oh, err := uc.repo.GetOperatingHours(ctx, weekday)
	if err != nil || !oh.Active || oh.StartTime == "" || oh.EndTime == "" {
		return []TimeSlot{}, nil
	}

	loc := date.Location()

	parseHM := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(
			date.Year(), date.Month(), date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	dayStart := parseHM(oh.StartTime)
	dayEnd := parseHM(oh.EndTime)

	hasLunch := oh.LunchStart != "" && oh.LunchEnd != ""
	var lunchStart, lunchEnd time.Time
	if hasLunch {
		lunchStart = parseHM(oh.LunchStart)
		lunchEnd = parseHM(oh.LunchEnd)
	}

	appointments, err := uc.repo.ListScheduledForDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	slotDuration := time.Duration(slotMinutes) * time.Minute
	slots := []TimeSlot{}

	for cur := dayStart; !cur.Add(slotDuration).After(dayEnd); cur = cur.Add(slotDuration) {

		slotStart := cur
		slotEnd := cur.Add(slotDuration)

		if hasLunch && slotStart.Before(lunchEnd) && slotEnd.After(lunchStart) {
			continue
		}

		conflict := false
		for _, ap := range appointments {
			if ap.ScheduledAt.Before(slotEnd) && !ap.ScheduledAt.Before(slotStart) {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, TimeSlot{
				Start: slotStart.Format("15:04"),
				End:   slotEnd.Format("15:04"),
			})
		}
	}

	return slots, nil
}
