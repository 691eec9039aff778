package examresult

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/VidaPediatria/clinic-api/internal/audit"
	domain "github.com/VidaPediatria/clinic-api/internal/domain/examresult"
	"github.com/VidaPediatria/clinic-api/internal/httperr"
	"github.com/VidaPediatria/clinic-api/internal/models"
)

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

func validInput() UpsertResultInput {
	return UpsertResultInput{
		AppointmentID: 3,
		ServiceID:     10,
		ResultData:    "12.5 g/dL",
		UserID:        5,
	}
}

func TestUpsertResult_Unauthenticated(t *testing.T) {
	uc := NewUpsertResult(&mockRepository{}, testDispatcher())

	in := validInput()
	in.UserID = 0

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "unauthenticated"))
}

func TestUpsertResult_LineMustExist(t *testing.T) {
	repo := &mockRepository{
		GetAppointmentServiceLineFunc: func(ctx context.Context, apID, svcID uint) (*models.AppointmentService, error) {
			return nil, httperr.ErrBusiness("not_found")
		},
	}
	uc := NewUpsertResult(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), validInput())
	assert.True(t, httperr.IsBusiness(err, "appointment_service_not_found"))
}

func TestUpsertResult_DefaultsToFinalAndStampsIssuedAt(t *testing.T) {
	var savedLine *models.AppointmentService
	var savedResult *models.ExamResult

	repo := &mockRepository{
		SaveResultFunc: func(ctx context.Context, line *models.AppointmentService, result *models.ExamResult) error {
			savedLine = line
			savedResult = result
			return nil
		},
	}
	uc := NewUpsertResult(repo, testDispatcher())

	out, err := uc.Execute(context.Background(), validInput())
	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusFinal), out.Status)
	assert.NotNil(t, out.IssuedAt)

	// escrita dupla: cópia do join e linha canônica carregam o mesmo laudo
	assert.Equal(t, "12.5 g/dL", savedLine.ResultData)
	assert.Equal(t, "12.5 g/dL", savedResult.ResultData)
	assert.Equal(t, uint(1), savedResult.PatientID)
	assert.Equal(t, uint(5), *savedResult.CreatedByID)
}

func TestUpsertResult_PreliminaryDoesNotStampIssuedAt(t *testing.T) {
	uc := NewUpsertResult(&mockRepository{}, testDispatcher())

	in := validInput()
	in.Status = string(domain.StatusPreliminary)

	out, err := uc.Execute(context.Background(), in)
	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusPreliminary), out.Status)
	assert.Nil(t, out.IssuedAt)
}

func TestUpsertResult_SecondWriteWins(t *testing.T) {
	issued := time.Now().Add(-time.Hour)
	creator := uint(2)

	repo := &mockRepository{
		GetResultFunc: func(ctx context.Context, apID, svcID uint) (*models.ExamResult, error) {
			return &models.ExamResult{
				ID:            9,
				AppointmentID: apID,
				ServiceID:     svcID,
				PatientID:     1,
				ResultData:    "12.5 g/dL",
				Status:        string(domain.StatusFinal),
				IssuedAt:      &issued,
				CreatedByID:   &creator,
			}, nil
		},
	}
	uc := NewUpsertResult(repo, testDispatcher())

	in := validInput()
	in.ResultData = "13.1 g/dL"
	in.Status = string(domain.StatusCorrected)

	out, err := uc.Execute(context.Background(), in)
	assert.NoError(t, err)

	// mesma linha canônica, autor original preservado
	assert.Equal(t, uint(9), out.ID)
	assert.Equal(t, uint(2), *out.CreatedByID)
	assert.Equal(t, uint(5), *out.UpdatedByID)

	assert.Equal(t, "13.1 g/dL", out.ResultData)
	assert.Equal(t, string(domain.StatusCorrected), out.Status)

	// correção reemite o laudo
	assert.NotNil(t, out.IssuedAt)
	assert.True(t, out.IssuedAt.After(issued))
}

func TestUpsertResult_RejectsDowngradeFromFinal(t *testing.T) {
	repo := &mockRepository{
		GetResultFunc: func(ctx context.Context, apID, svcID uint) (*models.ExamResult, error) {
			return &models.ExamResult{ID: 9, Status: string(domain.StatusFinal)}, nil
		},
	}
	uc := NewUpsertResult(repo, testDispatcher())

	in := validInput()
	in.Status = string(domain.StatusPreliminary)

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_result_transition"))
}

func TestUpsertResult_Idempotent(t *testing.T) {
	// reenviar o mesmo laudo final é aceito (última escrita vence)
	saved := 0
	repo := &mockRepository{
		GetResultFunc: func(ctx context.Context, apID, svcID uint) (*models.ExamResult, error) {
			return &models.ExamResult{ID: 9, PatientID: 1, Status: string(domain.StatusFinal)}, nil
		},
		SaveResultFunc: func(ctx context.Context, line *models.AppointmentService, result *models.ExamResult) error {
			saved++
			return nil
		},
	}
	uc := NewUpsertResult(repo, testDispatcher())

	in := validInput()
	in.Status = string(domain.StatusFinal)

	_, err := uc.Execute(context.Background(), in)
	assert.NoError(t, err)

	_, err = uc.Execute(context.Background(), in)
	assert.NoError(t, err)
	assert.Equal(t, 2, saved)
}
