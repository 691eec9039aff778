package examresult

import "github.com/VidaPediatria/clinic-api/internal/httperr"

// ===============================
// Exam Result Status
// ===============================

type Status string

const (
	StatusPending     Status = "pending"
	StatusPreliminary Status = "preliminary"
	StatusFinal       Status = "final"
	StatusCorrected   Status = "corrected"
)

func IsValid(s Status) bool {
	switch s {
	case StatusPending, StatusPreliminary, StatusFinal, StatusCorrected:
		return true
	}
	return false
}

// CanTransition: pending nasce com o agendamento; o envio do laudo leva
// a preliminary ou final; corrigir exige um laudo final emitido. Não
// existe caminho de volta para pending.
func CanTransition(current, target Status) error {
	if !IsValid(target) {
		return httperr.ErrBusiness("invalid_result_status")
	}

	switch current {
	case StatusPending:
		if target == StatusPreliminary || target == StatusFinal {
			return nil
		}
	case StatusPreliminary:
		if target == StatusPreliminary || target == StatusFinal {
			return nil
		}
	case StatusFinal:
		if target == StatusFinal || target == StatusCorrected {
			return nil
		}
	case StatusCorrected:
		if target == StatusCorrected {
			return nil
		}
	}

	return httperr.ErrBusiness("invalid_result_transition")
}

func InitialStatus() Status {
	return StatusPending
}
