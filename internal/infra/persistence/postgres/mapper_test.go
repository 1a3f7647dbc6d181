package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimatedMinutes(t *testing.T) {
	createdAt := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("nil without an estimate", func(t *testing.T) {
		assert.Nil(t, estimatedMinutes(nil, createdAt))
	})

	t.Run("minutes between creation and estimate", func(t *testing.T) {
		estimate := createdAt.Add(90 * time.Minute)
		got := estimatedMinutes(&estimate, createdAt)
		require.NotNil(t, got)
		assert.Equal(t, 90, *got)
	})

	t.Run("negative when the estimate predates creation", func(t *testing.T) {
		estimate := createdAt.Add(-30 * time.Minute)
		got := estimatedMinutes(&estimate, createdAt)
		require.NotNil(t, got)
		assert.Equal(t, -30, *got)
	})
}

func TestDelayedFlag(t *testing.T) {
	estimate := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("nil without an estimate", func(t *testing.T) {
		assert.Nil(t, delayedFlag(nil, false, estimate))
	})

	t.Run("delayed when past the estimate and not terminal", func(t *testing.T) {
		got := delayedFlag(&estimate, false, estimate.Add(time.Minute))
		require.NotNil(t, got)
		assert.True(t, *got)
	})

	t.Run("nil before the estimate", func(t *testing.T) {
		assert.Nil(t, delayedFlag(&estimate, false, estimate.Add(-time.Hour)))
	})

	t.Run("nil exactly at the estimate", func(t *testing.T) {
		assert.Nil(t, delayedFlag(&estimate, false, estimate))
	})

	t.Run("nil for terminal rows even past the estimate", func(t *testing.T) {
		assert.Nil(t, delayedFlag(&estimate, true, estimate.Add(time.Hour)))
	})
}
