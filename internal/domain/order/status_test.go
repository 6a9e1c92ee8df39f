package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SweetDelights01/bakery-storefront/internal/httperr"
	"github.com/SweetDelights01/bakery-storefront/internal/models"
)

func TestStatusTransitions(t *testing.T) {
	assert.NoError(t, CanConfirm(StatusPending))
	assert.Error(t, CanConfirm(StatusConfirmed))
	assert.Error(t, CanConfirm(StatusCancelled))

	assert.NoError(t, CanComplete(StatusConfirmed))
	assert.Error(t, CanComplete(StatusPending))
	assert.Error(t, CanComplete(StatusCompleted))

	assert.NoError(t, CanCancel(StatusPending))
	assert.NoError(t, CanCancel(StatusConfirmed))
	assert.Error(t, CanCancel(StatusCompleted))
	assert.Error(t, CanCancel(StatusCancelled))
}

func TestLifecycleActions(t *testing.T) {
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	o := &models.Order{Status: string(InitialStatus())}

	require.NoError(t, Confirm(o, now))
	assert.Equal(t, string(StatusConfirmed), o.Status)
	require.NotNil(t, o.ConfirmedAt)
	assert.Equal(t, now, *o.ConfirmedAt)

	require.NoError(t, Complete(o, now.Add(time.Hour)))
	assert.Equal(t, string(StatusCompleted), o.Status)
	require.NotNil(t, o.CompletedAt)

	err := Cancel(o, now)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Nil(t, o.CancelledAt)
}

func TestCancelFromConfirmed(t *testing.T) {
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	o := &models.Order{Status: string(StatusConfirmed)}

	require.NoError(t, Cancel(o, now))
	assert.Equal(t, string(StatusCancelled), o.Status)
	require.NotNil(t, o.CancelledAt)
}
