package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"conference-ticketing/internal/cache"
	"conference-ticketing/internal/database"
	"conference-ticketing/internal/metrics"
	"conference-ticketing/internal/model"
	"conference-ticketing/internal/repository"
	apperrors "conference-ticketing/pkg/app_errors"
	"conference-ticketing/pkg/logger"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PurchaseService interface {
	// Purchase 依票券 id → 數量建立或更新未付款紀錄，回傳以 ". " 串接的驗證訊息
	Purchase(ctx context.Context, conferenceID int, userID int, requested map[string]string) (string, error)
	// MarkPaid 將使用者在會議的未付款紀錄標記為已付款
	MarkPaid(ctx context.Context, conferenceID int, userID int, paymentID int) ([]model.MarkPaidResult, error)
	ListByUser(ctx context.Context, conferenceID int, userID int) ([]*model.TicketPurchase, error)
}

type PurchaseServiceImpl struct {
	db             database.DB
	repository     repository.TicketPurchaseRepository
	ticketRepo     repository.TicketRepository
	conferenceRepo repository.ConferenceRepository
	userRepo       repository.UserRepository
	locker         cache.PurchaseLocker
}

func NewPurchaseService(
	db database.DB,
	purchaseRepository repository.TicketPurchaseRepository,
	ticketRepository repository.TicketRepository,
	conferenceRepository repository.ConferenceRepository,
	userRepository repository.UserRepository,
	locker cache.PurchaseLocker,
) PurchaseService {
	return &PurchaseServiceImpl{
		db:             db,
		repository:     purchaseRepository,
		ticketRepo:     ticketRepository,
		conferenceRepo: conferenceRepository,
		userRepo:       userRepository,
		locker:         locker,
	}
}

func (s *PurchaseServiceImpl) Purchase(ctx context.Context, conferenceID int, userID int, requested map[string]string) (string, error) {
	// 1. 同一使用者同一會議一次只處理一個批次
	release, err := s.locker.Acquire(ctx, conferenceID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPurchaseInProgress) {
			metrics.PurchaseLockContention.Inc()
		}
		return "", err
	}
	defer func() {
		// 請求取消時仍要釋放鎖
		if err := release(context.Background()); err != nil {
			logger.WithComponent("service").Warn("failed to release purchase lock",
				zap.Int("conference_id", conferenceID),
				zap.Int("user_id", userID),
				zap.Error(err),
			)
		}
	}()

	if _, err := s.conferenceRepo.FindByID(ctx, conferenceID); err != nil {
		return "", err
	}
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return "", err
	}

	tickets, err := s.ticketRepo.ListByConferenceID(ctx, conferenceID)
	if err != nil {
		return "", err
	}

	// 2. 所有寫入在同一個 transaction
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return "", err
	}
	defer tx.Rollback(ctx)

	var messages []string
	outcomes := make([]model.PurchaseOutcome, 0, len(tickets))
	for _, ticket := range tickets {
		quantity, err := model.ParseQuantity(requested[strconv.Itoa(ticket.ID)])
		if err != nil {
			messages = append(messages, fmt.Sprintf("Quantity for ticket %d %s", ticket.ID, err))
			outcomes = append(outcomes, model.PurchaseInvalid)
			continue
		}

		// 0 不建立新紀錄，也不改動既有未付款紀錄
		if quantity == 0 {
			continue
		}

		purchase := &model.TicketPurchase{
			TicketID:     ticket.ID,
			UserID:       userID,
			ConferenceID: conferenceID,
			Quantity:     quantity,
		}
		if errs := purchase.Validate(); len(errs) > 0 {
			messages = append(messages, errs.FullMessages()...)
			outcomes = append(outcomes, model.PurchaseInvalid)
			continue
		}

		_, outcome, err := s.repository.UpsertUnpaid(ctx, tx, purchase)
		if err != nil {
			return "", err
		}
		outcomes = append(outcomes, outcome)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", err
	}

	for _, outcome := range outcomes {
		metrics.PurchaseRecords.WithLabelValues(string(outcome)).Inc()
	}

	return strings.Join(messages, ". "), nil
}

func (s *PurchaseServiceImpl) MarkPaid(ctx context.Context, conferenceID int, userID int, paymentID int) ([]model.MarkPaidResult, error) {
	purchases, err := s.repository.ListUnpaid(ctx, conferenceID, userID)
	if err != nil {
		return nil, err
	}

	log := logger.WithComponent("service").With(
		zap.Int("conference_id", conferenceID),
		zap.Int("user_id", userID),
		zap.Int("payment_id", paymentID),
	)

	// 每筆獨立更新，單筆失敗不影響其他紀錄
	results := make([]model.MarkPaidResult, 0, len(purchases))
	for _, p := range purchases {
		err := s.repository.MarkPaid(ctx, p.ID, paymentID)
		if err != nil {
			log.Error("failed to mark purchase paid", zap.Int("purchase_id", p.ID), zap.Error(err))
			metrics.PaymentRecords.WithLabelValues("failed").Inc()
		} else {
			metrics.PaymentRecords.WithLabelValues("paid").Inc()
		}
		results = append(results, model.MarkPaidResult{PurchaseID: p.ID, Err: err})
	}

	log.Info("purchases marked paid",
		zap.Int("total", len(results)),
		zap.Int("failed", model.Failed(results)),
	)

	return results, nil
}

func (s *PurchaseServiceImpl) ListByUser(ctx context.Context, conferenceID int, userID int) ([]*model.TicketPurchase, error) {
	if _, err := s.conferenceRepo.FindByID(ctx, conferenceID); err != nil {
		return nil, err
	}
	return s.repository.ListByConferenceAndUser(ctx, conferenceID, userID)
}
