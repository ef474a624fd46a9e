package handler

import (
	"net/http"
	"time"

	"conference-ticketing/internal/helper"
	"conference-ticketing/internal/model"
	"conference-ticketing/internal/queue"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	queue queue.PaymentQueue
	now   func() time.Time
}

func NewPaymentHandler(queue queue.PaymentQueue) *PaymentHandler {
	return &PaymentHandler{queue: queue, now: time.Now}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("conferences/:id/payments", h.Complete)
		router.GET("payments/options", h.Options)
	}
}

// CompletePaymentRequest 外部付款流程完成通知
type CompletePaymentRequest struct {
	UserID    int `json:"user_id" binding:"required,gt=0"`
	PaymentID int `json:"payment_id" binding:"required,gt=0"`
}

// Complete 發送付款完成事件，由 PaymentWorker 非同步標記付款
func (h *PaymentHandler) Complete(c *gin.Context) {
	conferenceID, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var req CompletePaymentRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	event := &model.PaymentCompleted{
		ConferenceID: conferenceID,
		UserID:       req.UserID,
		PaymentID:    req.PaymentID,
		CompletedAt:  h.now().UTC(),
	}
	if err := h.queue.PublishPaymentCompleted(c, event); err != nil {
		handleError(c, err, "Complete")
		return
	}
	c.JSON(http.StatusAccepted, event)
}

// Options 信用卡到期月份與年份選項
func (h *PaymentHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"months": helper.Months(),
		"years":  helper.Years(h.now()),
	})
}
