package queue

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"conference-ticketing/internal/model"
	"conference-ticketing/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	StreamKey           = "payments:stream"
	DeadLetterStreamKey = "payments:dead"
	ConsumerGroupName   = "payment-workers"
	ConsumerNamePrefix  = "worker"

	// 已確認的付款事件不需長期保留
	streamMaxLen = 100_000
	batchSize    = 10
)

// stream entry fields
const (
	fieldConferenceID = "conference_id"
	fieldUserID       = "user_id"
	fieldPaymentID    = "payment_id"
	fieldCompletedAt  = "completed_at"
)

// RedisStreamPaymentQueueConfig 可注入的逾時與重試設定；nil 或零值時使用預設。
type RedisStreamPaymentQueueConfig struct {
	ClaimMinIdleTime   time.Duration // 未 ack 的付款事件閒置多久後重新領取
	MaxRetryCount      int           // 超過此次數移到 dead-letter stream
	ReadGroupBlockTime time.Duration
}

func defaultRedisStreamConfig() RedisStreamPaymentQueueConfig {
	return RedisStreamPaymentQueueConfig{
		ClaimMinIdleTime:   5 * time.Second,
		MaxRetryCount:      5,
		ReadGroupBlockTime: 2 * time.Second,
	}
}

func (c *RedisStreamPaymentQueueConfig) merge(base RedisStreamPaymentQueueConfig) RedisStreamPaymentQueueConfig {
	if c == nil {
		return base
	}
	if c.ClaimMinIdleTime > 0 {
		base.ClaimMinIdleTime = c.ClaimMinIdleTime
	}
	if c.MaxRetryCount > 0 {
		base.MaxRetryCount = c.MaxRetryCount
	}
	if c.ReadGroupBlockTime > 0 {
		base.ReadGroupBlockTime = c.ReadGroupBlockTime
	}
	return base
}

// RedisStreamPaymentQueueImpl delivers PaymentCompleted events through a
// consumer group. Events that cannot be applied end up in DeadLetterStreamKey
// for manual reconciliation instead of being dropped.
type RedisStreamPaymentQueueImpl struct {
	client       *redis.Client
	streamKey    string
	deadKey      string
	groupName    string
	consumerName string
	cfg          RedisStreamPaymentQueueConfig
	log          *zap.Logger
}

// NewRedisStreamPaymentQueue 建立 Redis Stream 版 PaymentQueue。config 可為 nil。
func NewRedisStreamPaymentQueue(ctx context.Context, client *redis.Client, consumerID string, config *RedisStreamPaymentQueueConfig) (PaymentQueue, error) {
	if consumerID == "" {
		consumerID = uuid.New().String()
	}
	q := newRedisStreamPaymentQueue(client, fmt.Sprintf("%s:%s", ConsumerNamePrefix, consumerID), config.merge(defaultRedisStreamConfig()))
	if err := q.ensureConsumerGroup(ctx); err != nil {
		return nil, fmt.Errorf("ensure consumer group: %w", err)
	}
	return q, nil
}

func newRedisStreamPaymentQueue(client *redis.Client, consumerName string, cfg RedisStreamPaymentQueueConfig) *RedisStreamPaymentQueueImpl {
	return &RedisStreamPaymentQueueImpl{
		client:       client,
		streamKey:    StreamKey,
		deadKey:      DeadLetterStreamKey,
		groupName:    ConsumerGroupName,
		consumerName: consumerName,
		cfg:          cfg,
		log:          logger.WithComponent("payment-stream").With(zap.String("consumer", consumerName)),
	}
}

func (q *RedisStreamPaymentQueueImpl) ensureConsumerGroup(ctx context.Context) error {
	err := q.client.XGroupCreateMkStream(ctx, q.streamKey, q.groupName, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}

// encodePayment 以平面欄位寫入 stream，方便 XRANGE 直接查帳
func encodePayment(event *model.PaymentCompleted) []interface{} {
	return []interface{}{
		fieldConferenceID, strconv.Itoa(event.ConferenceID),
		fieldUserID, strconv.Itoa(event.UserID),
		fieldPaymentID, strconv.Itoa(event.PaymentID),
		fieldCompletedAt, event.CompletedAt.UTC().Format(time.RFC3339Nano),
	}
}

func decodePayment(values map[string]interface{}) (*model.PaymentCompleted, error) {
	id := func(name string) (int, error) {
		raw, ok := values[name].(string)
		if !ok {
			return 0, fmt.Errorf("missing %s", name)
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("invalid %s %q", name, raw)
		}
		return n, nil
	}

	var event model.PaymentCompleted
	var err error
	if event.ConferenceID, err = id(fieldConferenceID); err != nil {
		return nil, err
	}
	if event.UserID, err = id(fieldUserID); err != nil {
		return nil, err
	}
	if event.PaymentID, err = id(fieldPaymentID); err != nil {
		return nil, err
	}
	if raw, ok := values[fieldCompletedAt].(string); ok && raw != "" {
		if event.CompletedAt, err = time.Parse(time.RFC3339Nano, raw); err != nil {
			return nil, fmt.Errorf("invalid %s %q", fieldCompletedAt, raw)
		}
	}
	return &event, nil
}

func (q *RedisStreamPaymentQueueImpl) PublishPaymentCompleted(ctx context.Context, event *model.PaymentCompleted) error {
	err := q.client.XAdd(ctx, &redis.XAddArgs{
		Stream: q.streamKey,
		MaxLen: streamMaxLen,
		Approx: true,
		ID:     "*",
		Values: encodePayment(event),
	}).Err()
	if err != nil {
		return fmt.Errorf("publish payment %d: %w", event.PaymentID, err)
	}
	return nil
}

func (q *RedisStreamPaymentQueueImpl) SubscribePayments(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)
	go func() {
		defer close(out)
		q.consume(ctx, out)
	}()
	return out, nil
}

// consume 交替處理逾時未 ack 的事件與新事件，直到 ctx 結束
func (q *RedisStreamPaymentQueueImpl) consume(ctx context.Context, out chan<- Delivery) {
	claimFrom := "0-0"
	var lastClaim time.Time

	for ctx.Err() == nil {
		if time.Since(lastClaim) >= q.cfg.ClaimMinIdleTime {
			var ok bool
			claimFrom, ok = q.reclaim(ctx, out, claimFrom)
			if !ok {
				return
			}
			lastClaim = time.Now()
		}

		if !q.readNew(ctx, out) {
			return
		}
	}
}

func (q *RedisStreamPaymentQueueImpl) readNew(ctx context.Context, out chan<- Delivery) bool {
	streams, err := q.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    q.groupName,
		Consumer: q.consumerName,
		Streams:  []string{q.streamKey, ">"},
		Count:    batchSize,
		Block:    q.cfg.ReadGroupBlockTime,
	}).Result()
	if errors.Is(err, redis.Nil) {
		return true
	}
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		q.log.Error("read payments failed", zap.Error(err))
		return sleep(ctx, time.Second)
	}

	for _, stream := range streams {
		for _, msg := range stream.Messages {
			if !q.deliver(ctx, out, msg) {
				return false
			}
		}
	}
	return true
}

// reclaim 領回閒置過久的事件；重試次數用盡者移到 dead-letter stream
func (q *RedisStreamPaymentQueueImpl) reclaim(ctx context.Context, out chan<- Delivery, start string) (string, bool) {
	claimed, next, err := q.client.XAutoClaim(ctx, &redis.XAutoClaimArgs{
		Stream:   q.streamKey,
		Group:    q.groupName,
		Consumer: q.consumerName,
		MinIdle:  q.cfg.ClaimMinIdleTime,
		Count:    batchSize,
		Start:    start,
	}).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		if ctx.Err() != nil {
			return start, false
		}
		q.log.Error("reclaim payments failed", zap.Error(err))
		return start, true
	}
	if next == "" {
		next = "0-0"
	}

	for _, msg := range claimed {
		if q.retriesExhausted(ctx, msg) {
			continue
		}
		if !q.deliver(ctx, out, msg) {
			return next, false
		}
	}
	return next, true
}

func (q *RedisStreamPaymentQueueImpl) retriesExhausted(ctx context.Context, msg redis.XMessage) bool {
	pending, err := q.client.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream: q.streamKey,
		Group:  q.groupName,
		Start:  msg.ID,
		End:    msg.ID,
		Count:  1,
	}).Result()
	if err != nil || len(pending) == 0 {
		if err != nil && !errors.Is(err, redis.Nil) {
			q.log.Warn("read delivery count failed", zap.String("message_id", msg.ID), zap.Error(err))
		}
		return false
	}

	retries := int(pending[0].RetryCount)
	if retries < q.cfg.MaxRetryCount {
		return false
	}
	q.deadLetter(ctx, msg, fmt.Sprintf("delivered %d times", retries))
	return true
}

// deadLetter 保留原始欄位供人工對帳，再從 consumer group ack 掉
func (q *RedisStreamPaymentQueueImpl) deadLetter(ctx context.Context, msg redis.XMessage, reason string) {
	log := q.log.With(zap.String("message_id", msg.ID), zap.String("reason", reason))

	err := q.client.XAdd(ctx, &redis.XAddArgs{
		Stream: q.deadKey,
		ID:     "*",
		Values: deadLetterValues(msg, reason),
	}).Err()
	if err != nil {
		// 留在 PEL，下次 reclaim 再試
		log.Error("dead-letter payment failed", zap.Error(err))
		return
	}

	if err := q.client.XAck(ctx, q.streamKey, q.groupName, msg.ID).Err(); err != nil {
		log.Error("ack dead-lettered payment failed", zap.Error(err))
		return
	}
	log.Warn("payment moved to dead-letter stream")
}

func deadLetterValues(msg redis.XMessage, reason string) []interface{} {
	keys := make([]string, 0, len(msg.Values))
	for k := range msg.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := []interface{}{"source_id", msg.ID, "reason", reason}
	for _, k := range keys {
		values = append(values, k, msg.Values[k])
	}
	return values
}

func (q *RedisStreamPaymentQueueImpl) deliver(ctx context.Context, out chan<- Delivery, msg redis.XMessage) bool {
	d, ok := q.newDelivery(ctx, msg)
	if !ok {
		return true
	}
	select {
	case out <- d:
		return true
	case <-ctx.Done():
		return false
	}
}

// newDelivery 無法解析的事件直接送到 dead-letter，回傳 false
func (q *RedisStreamPaymentQueueImpl) newDelivery(ctx context.Context, msg redis.XMessage) (Delivery, bool) {
	event, err := decodePayment(msg.Values)
	if err != nil {
		q.deadLetter(ctx, msg, err.Error())
		return Delivery{}, false
	}

	msgID := msg.ID
	log := q.log.With(zap.String("message_id", msgID), zap.Int("payment_id", event.PaymentID))
	return Delivery{
		Data: event,
		Ack: func() {
			if err := q.client.XAck(ctx, q.streamKey, q.groupName, msgID).Err(); err != nil {
				log.Error("ack payment failed", zap.Error(err))
			}
		},
		Nack: func(requeue bool) {
			if requeue {
				// 留在 PEL，閒置 ClaimMinIdleTime 後由 reclaim 重送
				log.Info("payment will be retried", zap.Duration("after", q.cfg.ClaimMinIdleTime))
				return
			}
			q.deadLetter(ctx, msg, "rejected by consumer")
		},
	}, true
}

func sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-time.After(d):
		return true
	case <-ctx.Done():
		return false
	}
}
