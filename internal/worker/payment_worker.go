package worker

import (
	"context"

	"conference-ticketing/internal/model"
	"conference-ticketing/internal/queue"
	"conference-ticketing/internal/service"
	"conference-ticketing/pkg/logger"

	"go.uber.org/zap"
)

type PaymentWorker interface {
	// 訂閱付款完成事件，結束時機由 ctx 控制
	Start(ctx context.Context) error
	// Done 在訂閱 channel 關閉、最後一筆處理完後關閉
	Done() <-chan struct{}
}

type PaymentWorkerImpl struct {
	service service.PurchaseService
	queue   queue.PaymentQueue
	done    chan struct{}
}

func NewPaymentWorker(service service.PurchaseService, queue queue.PaymentQueue) PaymentWorker {
	return &PaymentWorkerImpl{
		service: service,
		queue:   queue,
		done:    make(chan struct{}),
	}
}

func (w *PaymentWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.SubscribePayments(ctx)
	if err != nil {
		close(w.done)
		return err
	}

	go func() {
		defer close(w.done)
		for msg := range msgs {
			w.handle(ctx, msg)
		}
	}()
	return nil
}

func (w *PaymentWorkerImpl) Done() <-chan struct{} {
	return w.done
}

func (w *PaymentWorkerImpl) handle(ctx context.Context, msg queue.Delivery) {
	event := msg.Data
	log := logger.WithComponent("worker").With(
		zap.Int("conference_id", event.ConferenceID),
		zap.Int("user_id", event.UserID),
		zap.Int("payment_id", event.PaymentID),
	)

	results, err := w.service.MarkPaid(ctx, event.ConferenceID, event.UserID, event.PaymentID)
	if err != nil {
		// 資料庫暫時連不上，重回隊列稍後重試
		log.Error("mark paid failed, requeue", zap.Error(err))
		msg.Nack(true)
		return
	}

	// 單筆失敗已由 service 記錄，不重試整批
	if failed := model.Failed(results); failed > 0 {
		log.Warn("payment applied with failures", zap.Int("failed", failed), zap.Int("total", len(results)))
	}
	msg.Ack()
}
