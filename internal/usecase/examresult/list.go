package examresult

import (
	"context"

	domain "github.com/VidaPediatria/clinic-api/internal/domain/examresult"
	"github.com/VidaPediatria/clinic-api/internal/models"
)

type ListResults struct {
	repo domain.Repository
}

func NewListResults(repo domain.Repository) *ListResults {
	return &ListResults{repo: repo}
}

func (uc *ListResults) Execute(
	ctx context.Context,
	appointmentID uint,
) ([]models.ExamResult, error) {
	return uc.repo.ListResultsForAppointment(ctx, appointmentID)
}
