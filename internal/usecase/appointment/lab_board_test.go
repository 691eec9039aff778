package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/VidaPediatria/clinic-api/internal/domain/appointment"
	"github.com/VidaPediatria/clinic-api/internal/models"
)

func TestGetLabBoard_ColumnsInFlowOrder(t *testing.T) {
	repo := &mockRepository{
		ListAppointmentsByStatusFunc: func(ctx context.Context, statuses []domain.Status) ([]models.Appointment, error) {
			return []models.Appointment{
				{
					ID:      1,
					Status:  string(domain.StatusInAnalysis),
					Patient: models.Patient{Name: "Ana Clara"},
					Services: []models.AppointmentService{
						{Service: models.Service{Name: "Hemograma"}},
					},
				},
				{
					ID:      2,
					Status:  string(domain.StatusAwaitingCollection),
					Patient: models.Patient{Name: "João"},
				},
			}, nil
		},
	}

	uc := NewGetLabBoard(repo)

	board, err := uc.Execute(context.Background())
	assert.NoError(t, err)
	assert.Len(t, board.Columns, 4)

	assert.Equal(t, string(domain.StatusAwaitingCollection), board.Columns[0].Status)
	assert.Equal(t, string(domain.StatusInAnalysis), board.Columns[1].Status)
	assert.Equal(t, string(domain.StatusAwaitingReport), board.Columns[2].Status)
	assert.Equal(t, string(domain.StatusCompleted), board.Columns[3].Status)

	assert.Len(t, board.Columns[0].Cards, 1)
	assert.Equal(t, "João", board.Columns[0].Cards[0].PatientName)

	assert.Len(t, board.Columns[1].Cards, 1)
	assert.Equal(t, []string{"Hemograma"}, board.Columns[1].Cards[0].Services)

	// colunas vazias vêm como lista vazia, nunca nil
	assert.NotNil(t, board.Columns[2].Cards)
	assert.Empty(t, board.Columns[2].Cards)
}
