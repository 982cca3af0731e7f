package dbwait

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWaitRetriesUntilAvailable(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	calls := 0
	dial := func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	}

	err := Wait(context.Background(), dial, time.Millisecond, zap.New(core))
	require.NoError(t, err)

	assert.Equal(t, 3, calls)
	assert.Equal(t, 1, logs.FilterMessage("waiting for database").Len())
	assert.Equal(t, 2, logs.FilterMessage("database unavailable, waiting").Len())
	assert.Equal(t, 1, logs.FilterMessage("database available").Len())
}

func TestWaitStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	dial := func(context.Context) error {
		calls++
		cancel()
		return errors.New("connection refused")
	}

	err := Wait(ctx, dial, time.Hour, zap.NewNop())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestWaitHonoursInterval(t *testing.T) {
	var stamps []time.Time
	dial := func(context.Context) error {
		stamps = append(stamps, time.Now())
		if len(stamps) < 3 {
			return errors.New("not yet")
		}
		return nil
	}

	require.NoError(t, Wait(context.Background(), dial, 20*time.Millisecond, zap.NewNop()))
	require.Len(t, stamps, 3)
	assert.GreaterOrEqual(t, stamps[2].Sub(stamps[0]), 30*time.Millisecond)
}
