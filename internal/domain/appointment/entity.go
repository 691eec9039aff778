package appointment

import (
	"time"

	"github.com/VidaPediatria/clinic-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCanceled)
	ap.CanceledAt = &now
	return nil
}

func MarkNoShow(ap *models.Appointment, now time.Time) error {
	if err := CanMarkNoShow(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusNoShow)
	ap.CanceledAt = &now
	return nil
}

// Advance move o agendamento para o status literal pedido pelo quadro.
// Chegando em completed, carimba completed_at.
func Advance(ap *models.Appointment, target Status, now time.Time) error {
	if err := CanAdvanceTo(Status(ap.Status), target); err != nil {
		return err
	}

	ap.Status = string(target)
	if target == StatusCompleted {
		ap.CompletedAt = &now
	}
	return nil
}
