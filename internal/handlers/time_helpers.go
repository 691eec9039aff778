package handlers

import (
	"time"

	"github.com/VidaPediatria/clinic-api/internal/models"
	"github.com/VidaPediatria/clinic-api/internal/timezone"
)

// Fuso oficial vem das configurações da clínica; fallback no padrão.
func locationFromSettings(settings *models.ClinicSettings) *time.Location {
	if settings != nil {
		return timezone.Location(settings.Timezone)
	}
	return timezone.Location("")
}

func parseDateInClinic(settings *models.ClinicSettings, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromSettings(settings),
	)
}
