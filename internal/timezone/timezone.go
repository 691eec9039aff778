package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// DayBounds retorna [início, fim) do dia civil de t no fuso da clínica.
// "Hoje" do dashboard usa estes limites, nunca prefixo de string ISO.
func DayBounds(t time.Time, tz string) (time.Time, time.Time) {
	loc := Location(tz)
	t = t.In(loc)

	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return start, start.Add(24 * time.Hour)
}

// SameDay informa se a e b caem no mesmo dia civil no fuso dado.
func SameDay(a, b time.Time, tz string) bool {
	loc := Location(tz)
	a, b = a.In(loc), b.In(loc)

	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
