package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/VidaPediatria/clinic-api/internal/domain/appointment"
	"github.com/VidaPediatria/clinic-api/internal/httperr"
	"github.com/VidaPediatria/clinic-api/internal/models"
)

func TestAdvanceLabStatus_OneColumnForward(t *testing.T) {
	stored := &models.Appointment{ID: 7, Status: string(domain.StatusAwaitingCollection)}

	var updated *models.Appointment
	repo := &mockRepository{
		GetAppointmentFunc: func(ctx context.Context, id uint) (*models.Appointment, error) {
			return stored, nil
		},
		UpdateAppointmentFunc: func(ctx context.Context, ap *models.Appointment) error {
			updated = ap
			return nil
		},
	}

	uc := NewAdvanceLabStatus(repo, testDispatcher())

	ap, err := uc.Execute(context.Background(), 1, 7, domain.StatusInAnalysis)
	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusInAnalysis), ap.Status)
	assert.NotNil(t, updated)
}

func TestAdvanceLabStatus_RejectsSkip(t *testing.T) {
	repo := &mockRepository{
		GetAppointmentFunc: func(ctx context.Context, id uint) (*models.Appointment, error) {
			return &models.Appointment{ID: 7, Status: string(domain.StatusScheduled)}, nil
		},
	}

	uc := NewAdvanceLabStatus(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), 1, 7, domain.StatusCompleted)
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
}

func TestAdvanceLabStatus_UnknownStatus(t *testing.T) {
	uc := NewAdvanceLabStatus(&mockRepository{}, testDispatcher())

	_, err := uc.Execute(context.Background(), 1, 7, domain.Status("done"))
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestCancelAppointment_AfterCollectionStarted(t *testing.T) {
	repo := &mockRepository{
		GetAppointmentFunc: func(ctx context.Context, id uint) (*models.Appointment, error) {
			return &models.Appointment{ID: 7, Status: string(domain.StatusInAnalysis)}, nil
		},
	}

	uc := NewCancelAppointment(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), 1, 7)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCancelAppointment_Scheduled(t *testing.T) {
	repo := &mockRepository{
		GetAppointmentFunc: func(ctx context.Context, id uint) (*models.Appointment, error) {
			return &models.Appointment{ID: 7, Status: string(domain.StatusScheduled)}, nil
		},
	}

	uc := NewCancelAppointment(repo, testDispatcher())

	ap, err := uc.Execute(context.Background(), 1, 7)
	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusCanceled), ap.Status)
	assert.NotNil(t, ap.CanceledAt)
}

func TestMarkNoShow_Scheduled(t *testing.T) {
	repo := &mockRepository{
		GetAppointmentFunc: func(ctx context.Context, id uint) (*models.Appointment, error) {
			return &models.Appointment{ID: 7, Status: string(domain.StatusScheduled)}, nil
		},
	}

	uc := NewMarkNoShow(repo, testDispatcher())

	ap, err := uc.Execute(context.Background(), 1, 7)
	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusNoShow), ap.Status)
	assert.NotNil(t, ap.CanceledAt)
}

func TestMarkNoShow_AfterCollectionStarted(t *testing.T) {
	repo := &mockRepository{
		GetAppointmentFunc: func(ctx context.Context, id uint) (*models.Appointment, error) {
			return &models.Appointment{ID: 7, Status: string(domain.StatusAwaitingCollection)}, nil
		},
	}

	uc := NewMarkNoShow(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), 1, 7)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}
