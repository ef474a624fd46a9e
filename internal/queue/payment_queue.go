package queue

import (
	"context"

	"conference-ticketing/internal/model"
)

type Delivery struct {
	Data *model.PaymentCompleted
	Ack  func()
	Nack func(requeue bool)
}

type PaymentQueue interface {
	// 發送付款完成事件到隊列
	PublishPaymentCompleted(ctx context.Context, event *model.PaymentCompleted) error
	// 訂閱付款完成事件
	SubscribePayments(ctx context.Context) (<-chan Delivery, error)
}

type PaymentQueueImpl struct {
	// 使用 Go channel 來模擬 MQ 隊列
	ch chan *model.PaymentCompleted
}

func NewPaymentQueue(bufferSize int) PaymentQueue {
	return &PaymentQueueImpl{
		ch: make(chan *model.PaymentCompleted, bufferSize),
	}
}

func (q *PaymentQueueImpl) PublishPaymentCompleted(ctx context.Context, event *model.PaymentCompleted) error {
	select {
	case q.ch <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *PaymentQueueImpl) SubscribePayments(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-q.ch:
				if !ok {
					return
				}

				d := Delivery{
					Data: event,
					Ack:  func() { /* 記憶體版不用做特別動作 */ },
					Nack: func(requeue bool) {
						if requeue {
							// 另起 goroutine 避免 buffer 滿時卡住 worker
							go func() {
								select {
								case q.ch <- event:
								case <-ctx.Done():
								}
							}()
						}
					},
				}

				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
