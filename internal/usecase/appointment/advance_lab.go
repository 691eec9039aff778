package appointment

import (
	"context"

	"github.com/VidaPediatria/clinic-api/internal/audit"
	domain "github.com/VidaPediatria/clinic-api/internal/domain/appointment"
	"github.com/VidaPediatria/clinic-api/internal/httperr"
	"github.com/VidaPediatria/clinic-api/internal/models"
	"github.com/VidaPediatria/clinic-api/internal/timezone"
)

// AdvanceLabStatus move um agendamento uma coluna para frente no quadro
// laboratorial. O quadro manda o status literal de destino; qualquer
// coisa diferente do único sucessor é rejeitada.
type AdvanceLabStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAdvanceLabStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AdvanceLabStatus {
	return &AdvanceLabStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *AdvanceLabStatus) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
	target domain.Status,
) (*models.Appointment, error) {

	if !domain.IsValid(target) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	settings, err := uc.repo.GetClinicSettings(ctx)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	oldStatus := ap.Status

	now := timezone.NowIn(settings.Timezone)
	if err := domain.Advance(ap, target, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:    &userID,
		Action:    audit.ActionUpdate,
		TableName: "appointments",
		RecordID:  &ap.ID,
		OldData:   map[string]any{"status": oldStatus},
		NewData:   map[string]any{"status": ap.Status},
	})

	return ap, nil
}
