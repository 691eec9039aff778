package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/VidaPediatria/clinic-api/internal/httperr"
	"github.com/VidaPediatria/clinic-api/internal/models"
)

func TestNext_FollowsChain(t *testing.T) {
	chain := []Status{
		StatusScheduled,
		StatusAwaitingCollection,
		StatusInAnalysis,
		StatusAwaitingReport,
		StatusCompleted,
	}

	for i := 0; i < len(chain)-1; i++ {
		next, err := Next(chain[i])
		assert.NoError(t, err)
		assert.Equal(t, chain[i+1], next)
	}
}

func TestNext_TerminalStates(t *testing.T) {
	for _, s := range []Status{StatusCompleted, StatusCanceled, StatusNoShow} {
		_, err := Next(s)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"), string(s))
	}
}

func TestCanAdvanceTo_RejectsSkipsAndBackwards(t *testing.T) {
	// pular etapa
	err := CanAdvanceTo(StatusScheduled, StatusInAnalysis)
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))

	// voltar
	err = CanAdvanceTo(StatusInAnalysis, StatusAwaitingCollection)
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))

	// avanço literal de uma coluna
	assert.NoError(t, CanAdvanceTo(StatusAwaitingReport, StatusCompleted))
}

func TestCanCancel_OnlyScheduled(t *testing.T) {
	assert.NoError(t, CanCancel(StatusScheduled))

	for _, s := range []Status{
		StatusAwaitingCollection, StatusInAnalysis, StatusAwaitingReport,
		StatusCompleted, StatusCanceled, StatusNoShow,
	} {
		assert.Error(t, CanCancel(s), string(s))
	}
}

func TestCanMarkNoShow_OnlyScheduled(t *testing.T) {
	assert.NoError(t, CanMarkNoShow(StatusScheduled))
	assert.Error(t, CanMarkNoShow(StatusAwaitingCollection))
	assert.Error(t, CanMarkNoShow(StatusCompleted))
}

func TestCancel_StampsCanceledAt(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusScheduled)}
	now := time.Now()

	err := Cancel(ap, now)
	assert.NoError(t, err)
	assert.Equal(t, string(StatusCanceled), ap.Status)
	assert.NotNil(t, ap.CanceledAt)
	assert.Equal(t, now, *ap.CanceledAt)
}

func TestCancel_RejectedAfterCollection(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusInAnalysis)}

	err := Cancel(ap, time.Now())
	assert.Error(t, err)
	assert.Equal(t, string(StatusInAnalysis), ap.Status)
	assert.Nil(t, ap.CanceledAt)
}

func TestAdvance_StampsCompletedAtOnlyAtTheEnd(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusScheduled)}
	now := time.Now()

	for _, target := range []Status{
		StatusAwaitingCollection, StatusInAnalysis, StatusAwaitingReport,
	} {
		assert.NoError(t, Advance(ap, target, now))
		assert.Nil(t, ap.CompletedAt)
	}

	assert.NoError(t, Advance(ap, StatusCompleted, now))
	assert.NotNil(t, ap.CompletedAt)

	// terminal: nenhum avanço a partir de completed
	err := Advance(ap, StatusCompleted, now)
	assert.Error(t, err)
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(StatusScheduled))
	assert.True(t, IsValid(StatusNoShow))
	assert.False(t, IsValid(Status("whatever")))
	assert.False(t, IsValid(Status("")))
}
