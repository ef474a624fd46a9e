package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "conference-ticketing/pkg/app_errors"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocker(t *testing.T) (*RedisPurchaseLockerImpl, redismock.ClientMock) {
	client, mock := redismock.NewClientMock()
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	return &RedisPurchaseLockerImpl{
		client:   client,
		ttl:      10 * time.Second,
		newToken: func() string { return "token-1" },
	}, mock
}

func TestRedisPurchaseLocker_Acquire(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		locker, mock := newTestLocker(t)

		mock.ExpectSetNX("purchase:lock:1:2", "token-1", 10*time.Second).SetVal(true)
		mock.ExpectEval(releaseScript, []string{"purchase:lock:1:2"}, "token-1").SetVal(int64(1))

		release, err := locker.Acquire(ctx, 1, 2)
		require.NoError(t, err)

		assert.NoError(t, release(ctx))
	})

	t.Run("Failed - Held", func(t *testing.T) {
		locker, mock := newTestLocker(t)

		mock.ExpectSetNX("purchase:lock:1:2", "token-1", 10*time.Second).SetVal(false)

		release, err := locker.Acquire(ctx, 1, 2)

		assert.Nil(t, release)
		assert.ErrorIs(t, err, apperrors.ErrPurchaseInProgress)
	})

	t.Run("Failed - RedisError", func(t *testing.T) {
		locker, mock := newTestLocker(t)

		mock.ExpectSetNX("purchase:lock:1:2", "token-1", 10*time.Second).SetErr(errors.New("connection refused"))

		_, err := locker.Acquire(ctx, 1, 2)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("Release - Expired", func(t *testing.T) {
		locker, mock := newTestLocker(t)

		mock.ExpectSetNX("purchase:lock:3:4", "token-1", 10*time.Second).SetVal(true)
		mock.ExpectEval(releaseScript, []string{"purchase:lock:3:4"}, "token-1").SetVal(int64(0))

		release, err := locker.Acquire(ctx, 3, 4)
		require.NoError(t, err)

		assert.NoError(t, release(ctx))
	})
}

func TestNoopPurchaseLocker(t *testing.T) {
	release, err := NoopPurchaseLocker{}.Acquire(context.Background(), 1, 2)

	require.NoError(t, err)
	assert.NoError(t, release(context.Background()))
}
