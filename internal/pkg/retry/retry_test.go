package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_SucceedsFirstTry(t *testing.T) {
	r := New(FixedDelayConfig(2, time.Millisecond))

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestExecute_SucceedsAfterRetry(t *testing.T) {
	r := New(FixedDelayConfig(2, time.Millisecond))

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 2 {
			return errors.New("transient")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestExecute_ExhaustsBudget(t *testing.T) {
	r := New(FixedDelayConfig(2, time.Millisecond))

	sentinel := errors.New("still failing")
	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return sentinel
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 3, calls) // first try + 2 retries
}

func TestExecute_ContextCancelled(t *testing.T) {
	r := New(FixedDelayConfig(5, 50*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := r.Execute(ctx, func(ctx context.Context) error {
		calls++
		return errors.New("transient")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestFixedDelayConfig(t *testing.T) {
	r := New(FixedDelayConfig(3, 2*time.Second))

	assert.Equal(t, 4, r.Attempts())
	assert.Equal(t, 2*time.Second, r.calculateDelay(0))
	assert.Equal(t, 2*time.Second, r.calculateDelay(2))
}
