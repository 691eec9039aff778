package appointment

import (
	"context"
	"time"

	"github.com/VidaPediatria/clinic-api/internal/audit"
	domain "github.com/VidaPediatria/clinic-api/internal/domain/appointment"
	"github.com/VidaPediatria/clinic-api/internal/httperr"
	"github.com/VidaPediatria/clinic-api/internal/models"
	"github.com/VidaPediatria/clinic-api/internal/timezone"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreateAppointmentInput struct {
	PatientID  uint
	ServiceIDs []uint

	PaymentMethod string
	InsuranceType string

	Date  string
	Time  string
	Notes string

	CreatedByID uint
}

type CreateAppointmentOutput struct {
	Appointment *models.Appointment
	Total       float64
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*CreateAppointmentOutput, error) {

	// --------------------------------------------------
	// 1. Ao menos um serviço (regra dura, não só de UI)
	// --------------------------------------------------
	if len(in.ServiceIDs) == 0 {
		return nil, httperr.ErrBusiness("services_required")
	}

	// --------------------------------------------------
	// 2. Forma de pagamento e categoria de cobrança
	// --------------------------------------------------
	if err := domain.ValidatePaymentMethod(in.PaymentMethod); err != nil {
		return nil, err
	}
	if err := domain.ValidateInsuranceType(in.InsuranceType); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Paciente
	// --------------------------------------------------
	patient, err := uc.repo.GetPatient(ctx, in.PatientID)
	if err != nil {
		return nil, httperr.ErrBusiness("patient_not_found")
	}

	// --------------------------------------------------
	// 4. Data/hora no fuso da clínica
	// --------------------------------------------------
	settings, err := uc.repo.GetClinicSettings(ctx)
	if err != nil {
		return nil, err
	}

	scheduledAt, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(settings.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 5. Janela de atendimento (quando configurada)
	// --------------------------------------------------
	ok, err := uc.repo.IsWithinOperatingHours(ctx, scheduledAt)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("outside_operating_hours")
	}

	// --------------------------------------------------
	// 6. Serviços ativos (todos precisam existir)
	// --------------------------------------------------
	services, err := uc.repo.GetActiveServices(ctx, in.ServiceIDs)
	if err != nil {
		return nil, err
	}
	if len(services) != len(uniqueIDs(in.ServiceIDs)) {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// --------------------------------------------------
	// 7. Criação atômica: agendamento + linhas + pendências
	// --------------------------------------------------
	ap := &models.Appointment{
		PatientID:     patient.ID,
		ScheduledAt:   scheduledAt,
		Status:        string(domain.InitialStatus()),
		PaymentMethod: in.PaymentMethod,
		InsuranceType: in.InsuranceType,
		Notes:         in.Notes,
		CreatedByID:   &in.CreatedByID,
	}

	if err := uc.repo.CreateAppointmentWithServices(ctx, ap, uniqueIDs(in.ServiceIDs)); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 8. Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:    &in.CreatedByID,
		Action:    audit.ActionInsert,
		TableName: "appointments",
		RecordID:  &ap.ID,
		NewData: map[string]any{
			"patient_id":     ap.PatientID,
			"scheduled_at":   ap.ScheduledAt,
			"status":         ap.Status,
			"payment_method": ap.PaymentMethod,
			"services":       in.ServiceIDs,
		},
	})

	return &CreateAppointmentOutput{
		Appointment: ap,
		Total:       domain.Total(services),
	}, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
