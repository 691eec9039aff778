package examresult

import (
	"context"

	"github.com/VidaPediatria/clinic-api/internal/audit"
	domain "github.com/VidaPediatria/clinic-api/internal/domain/examresult"
	"github.com/VidaPediatria/clinic-api/internal/httperr"
	"github.com/VidaPediatria/clinic-api/internal/models"
	"github.com/VidaPediatria/clinic-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type UpsertResultInput struct {
	AppointmentID uint
	ServiceID     uint

	ResultData string
	Notes      string
	Status     string

	UserID uint
}

// ======================================================
// USE CASE
// ======================================================

// UpsertResult grava um laudo como UMA atualização lógica: a cópia
// desnormalizada na linha do join e a linha canônica de exam_results
// são escritas na mesma transação. Última escrita vence; não há token
// de concorrência.
type UpsertResult struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpsertResult(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpsertResult {
	return &UpsertResult{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpsertResult) Execute(
	ctx context.Context,
	in UpsertResultInput,
) (*models.ExamResult, error) {

	if in.UserID == 0 {
		return nil, httperr.ErrBusiness("unauthenticated")
	}

	target := domain.Status(in.Status)
	if target == "" {
		target = domain.StatusFinal
	}

	// --------------------------------------------------
	// 1. Linha do join precisa existir
	// --------------------------------------------------
	line, err := uc.repo.GetAppointmentServiceLine(ctx, in.AppointmentID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_service_not_found")
	}

	// --------------------------------------------------
	// 2. Transição de status do laudo
	// --------------------------------------------------
	current := domain.InitialStatus()

	existing, err := uc.repo.GetResult(ctx, in.AppointmentID, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		current = domain.Status(existing.Status)
	}

	if err := domain.CanTransition(current, target); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Escrita dupla em uma transação
	// --------------------------------------------------
	line.ResultData = in.ResultData
	line.Notes = in.Notes

	result := &models.ExamResult{
		AppointmentID: in.AppointmentID,
		ServiceID:     in.ServiceID,
		ResultData:    in.ResultData,
		Notes:         in.Notes,
		Status:        string(target),
		UpdatedByID:   &in.UserID,
	}

	if existing != nil {
		result.ID = existing.ID
		result.PatientID = existing.PatientID
		result.CreatedByID = existing.CreatedByID
		result.IssuedAt = existing.IssuedAt
	} else {
		// linha canônica ausente (agendamentos antigos): recompõe o
		// vínculo com o paciente a partir do agendamento
		patientID, err := uc.repo.GetAppointmentPatientID(ctx, in.AppointmentID)
		if err != nil {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		result.PatientID = patientID
		result.CreatedByID = &in.UserID
	}

	if target == domain.StatusFinal || target == domain.StatusCorrected {
		now := timezone.Now()
		result.IssuedAt = &now
	}

	var oldData map[string]any
	if existing != nil {
		oldData = map[string]any{
			"result_data": existing.ResultData,
			"status":      existing.Status,
		}
	}

	if err := uc.repo.SaveResult(ctx, line, result); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:    &in.UserID,
		Action:    audit.ActionUpdate,
		TableName: "exam_results",
		RecordID:  &result.ID,
		OldData:   oldData,
		NewData: map[string]any{
			"result_data": result.ResultData,
			"status":      result.Status,
		},
	})

	return result, nil
}
