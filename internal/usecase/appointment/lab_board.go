package appointment

import (
	"context"

	domain "github.com/VidaPediatria/clinic-api/internal/domain/appointment"
	"github.com/VidaPediatria/clinic-api/internal/dto"
)

// GetLabBoard monta o quadro de acompanhamento de amostras: uma coluna
// por status laboratorial, na ordem do fluxo.
type GetLabBoard struct {
	repo domain.Repository
}

func NewGetLabBoard(repo domain.Repository) *GetLabBoard {
	return &GetLabBoard{repo: repo}
}

func (uc *GetLabBoard) Execute(ctx context.Context) (*dto.LabBoardDTO, error) {

	appointments, err := uc.repo.ListAppointmentsByStatus(ctx, domain.LabColumns)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[domain.Status][]dto.LabCardDTO, len(domain.LabColumns))
	for _, ap := range appointments {
		names := make([]string, 0, len(ap.Services))
		for _, line := range ap.Services {
			names = append(names, line.Service.Name)
		}

		card := dto.LabCardDTO{
			ID:          ap.ID,
			ScheduledAt: ap.ScheduledAt,
			PatientName: ap.Patient.Name,
			Services:    names,
		}
		byStatus[domain.Status(ap.Status)] = append(byStatus[domain.Status(ap.Status)], card)
	}

	board := &dto.LabBoardDTO{
		Columns: make([]dto.LabColumnDTO, 0, len(domain.LabColumns)),
	}
	for _, status := range domain.LabColumns {
		cards := byStatus[status]
		if cards == nil {
			cards = []dto.LabCardDTO{}
		}
		board.Columns = append(board.Columns, dto.LabColumnDTO{
			Status: string(status),
			Cards:  cards,
		})
	}

	return board, nil
}
