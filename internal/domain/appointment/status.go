package appointment

import "github.com/VidaPediatria/clinic-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled          Status = "scheduled"
	StatusAwaitingCollection Status = "awaiting_collection"
	StatusInAnalysis         Status = "in_analysis"
	StatusAwaitingReport     Status = "awaiting_report"
	StatusCompleted          Status = "completed"
	StatusCanceled           Status = "canceled"
	StatusNoShow             Status = "no_show"
)

// Cadeia do fluxo laboratorial. Cada coluna tem exatamente uma
// transição para frente; completed é terminal.
var forward = map[Status]Status{
	StatusScheduled:          StatusAwaitingCollection,
	StatusAwaitingCollection: StatusInAnalysis,
	StatusInAnalysis:         StatusAwaitingReport,
	StatusAwaitingReport:     StatusCompleted,
}

// LabColumns são as colunas exibidas no quadro de acompanhamento.
var LabColumns = []Status{
	StatusAwaitingCollection,
	StatusInAnalysis,
	StatusAwaitingReport,
	StatusCompleted,
}

func IsValid(s Status) bool {
	switch s {
	case StatusScheduled, StatusAwaitingCollection, StatusInAnalysis,
		StatusAwaitingReport, StatusCompleted, StatusCanceled, StatusNoShow:
		return true
	}
	return false
}

// Next retorna o único sucessor no fluxo. Erro em status terminal.
func Next(current Status) (Status, error) {
	next, ok := forward[current]
	if !ok {
		return "", httperr.ErrBusiness("invalid_state")
	}
	return next, nil
}

// CanAdvanceTo valida a transição literal pedida pelo quadro:
// sem pular etapas, sem voltar.
func CanAdvanceTo(current, target Status) error {
	next, err := Next(current)
	if err != nil {
		return err
	}
	if next != target {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}

// CanCancel: cancelamento só antes da coleta começar.
func CanCancel(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanMarkNoShow segue a mesma regra do cancelamento.
func CanMarkNoShow(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
