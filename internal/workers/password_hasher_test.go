package workers

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

func newRunningHasher(t *testing.T, size int) *PasswordHasher {
	t.Helper()
	h := NewPasswordHasher(size, bcrypt.MinCost, logger.Nop())
	h.Run()
	t.Cleanup(h.Stop)
	return h
}

func TestPasswordHasher_HashAndCompare(t *testing.T) {
	h := newRunningHasher(t, 2)
	ctx := context.Background()

	hash, err := h.Hash(ctx, "s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	assert.NoError(t, h.Compare(ctx, hash, "s3cret!"))
	assert.ErrorIs(t, h.Compare(ctx, hash, "wrong"), ErrPasswordMismatch)
}

func TestPasswordHasher_UsesConfiguredCost(t *testing.T) {
	h := newRunningHasher(t, 1)

	hash, err := h.Hash(context.Background(), "pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestPasswordHasher_CompareMalformedHash(t *testing.T) {
	h := newRunningHasher(t, 1)

	err := h.Compare(context.Background(), "not-a-bcrypt-hash", "pw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPasswordMismatch)
}

func TestPasswordHasher_TooLongPassword(t *testing.T) {
	h := newRunningHasher(t, 1)

	_, err := h.Hash(context.Background(), strings.Repeat("a", 73))
	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
}

func TestPasswordHasher_Concurrent(t *testing.T) {
	h := newRunningHasher(t, 3)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hash, err := h.Hash(ctx, "pw")
			if err == nil {
				err = h.Compare(ctx, hash, "pw")
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestPasswordHasher_ContextCancelledBeforeRun(t *testing.T) {
	// not started: nobody receives the job
	h := NewPasswordHasher(1, bcrypt.MinCost, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := h.Hash(ctx, "pw")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPasswordHasher_Stopped(t *testing.T) {
	h := NewPasswordHasher(1, bcrypt.MinCost, logger.Nop())
	h.Run()
	h.Stop()
	h.Stop() // idempotent

	_, err := h.Hash(context.Background(), "pw")
	assert.ErrorIs(t, err, ErrHasherStopped)
	assert.ErrorIs(t, h.Compare(context.Background(), "h", "pw"), ErrHasherStopped)
}

func TestNewPasswordHasher_MinimumOneWorker(t *testing.T) {
	h := NewPasswordHasher(0, bcrypt.MinCost, logger.Nop())
	assert.Equal(t, 1, h.size)
}
