package cache

import (
	"context"
	"fmt"
	"time"

	apperrors "conference-ticketing/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// PurchaseLocker 以 Redis 鎖住同一使用者對同一會議的購票批次
type PurchaseLocker interface {
	// Acquire 取得鎖，回傳 release 函式；已被佔用時回傳 ErrPurchaseInProgress
	Acquire(ctx context.Context, conferenceID int, userID int) (func(context.Context) error, error)
}

type RedisPurchaseLockerImpl struct {
	client   *redis.Client
	ttl      time.Duration
	newToken func() string
}

func NewRedisPurchaseLocker(client *redis.Client, ttl time.Duration) PurchaseLocker {
	return &RedisPurchaseLockerImpl{
		client:   client,
		ttl:      ttl,
		newToken: func() string { return uuid.New().String() },
	}
}

// 鎖 key
func (l *RedisPurchaseLockerImpl) getLockKey(conferenceID int, userID int) string {
	return fmt.Sprintf("purchase:lock:%d:%d", conferenceID, userID)
}

// 只刪除自己持有的鎖 (使用Lua腳本確保原子性)
const releaseScript = `
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`

func (l *RedisPurchaseLockerImpl) Acquire(ctx context.Context, conferenceID int, userID int) (func(context.Context) error, error) {
	key := l.getLockKey(conferenceID, userID)
	token := l.newToken()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire purchase lock: %w", err)
	}
	if !ok {
		return nil, apperrors.ErrPurchaseInProgress
	}

	release := func(ctx context.Context) error {
		// 鎖已過期被他人取得時不會誤刪
		if err := l.client.Eval(ctx, releaseScript, []string{key}, token).Err(); err != nil && err != redis.Nil {
			return fmt.Errorf("release purchase lock: %w", err)
		}
		return nil
	}

	return release, nil
}

// NoopPurchaseLocker 用於未配置 Redis 的環境
type NoopPurchaseLocker struct{}

func (NoopPurchaseLocker) Acquire(ctx context.Context, conferenceID int, userID int) (func(context.Context) error, error) {
	return func(context.Context) error { return nil }, nil
}
