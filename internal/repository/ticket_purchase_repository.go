package repository

import (
	"context"
	"fmt"

	"conference-ticketing/internal/database"
	"conference-ticketing/internal/model"
	apperrors "conference-ticketing/pkg/app_errors"

	"github.com/jackc/pgx/v5"
)

const purchaseColumns = `id, ticket_id, user_id, conference_id, quantity, paid, payment_id, created_at, updated_at`

type TicketPurchaseRepository interface {
	// IsBuyer 使用者是否買過此票券（不論是否付款）
	IsBuyer(ctx context.Context, ticketID int, userID int) (bool, error)
	HasPurchase(ctx context.Context, ticketID int, userID int, paid bool) (bool, error)
	SumQuantity(ctx context.Context, ticketID int, userID int, paid bool) (int, error)
	SumQuantityByTicket(ctx context.Context, ticketID int) (int, error)
	ListBuyers(ctx context.Context, ticketID int) ([]int, error)
	ListByConferenceAndUser(ctx context.Context, conferenceID int, userID int) ([]*model.TicketPurchase, error)
	ListUnpaid(ctx context.Context, conferenceID int, userID int) ([]*model.TicketPurchase, error)
	MarkPaid(ctx context.Context, id int, paymentID int) error

	// Transaction methods
	UpsertUnpaid(ctx context.Context, tx pgx.Tx, purchase *model.TicketPurchase) (*model.TicketPurchase, model.PurchaseOutcome, error)
}

type TicketPurchaseRepositoryImpl struct {
	db database.DB
}

func NewTicketPurchaseRepository(db database.DB) TicketPurchaseRepository {
	return &TicketPurchaseRepositoryImpl{
		db: db,
	}
}

func scanPurchase(row pgx.Row, p *model.TicketPurchase, extra ...any) error {
	dest := []any{
		&p.ID,
		&p.TicketID,
		&p.UserID,
		&p.ConferenceID,
		&p.Quantity,
		&p.Paid,
		&p.PaymentID,
		&p.CreatedAt,
		&p.UpdatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

func (r *TicketPurchaseRepositoryImpl) IsBuyer(ctx context.Context, ticketID int, userID int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM ticket_purchases
			WHERE ticket_id = $1 AND user_id = $2
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, ticketID, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *TicketPurchaseRepositoryImpl) HasPurchase(ctx context.Context, ticketID int, userID int, paid bool) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM ticket_purchases
			WHERE ticket_id = $1 AND user_id = $2 AND paid = $3
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, ticketID, userID, paid).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *TicketPurchaseRepositoryImpl) SumQuantity(ctx context.Context, ticketID int, userID int, paid bool) (int, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0)
		FROM ticket_purchases
		WHERE ticket_id = $1
		  AND user_id = $2
		  AND paid = $3
	`

	var totalQuantity int
	if err := r.db.QueryRow(ctx, query, ticketID, userID, paid).Scan(&totalQuantity); err != nil {
		return 0, err
	}

	return totalQuantity, nil
}

func (r *TicketPurchaseRepositoryImpl) SumQuantityByTicket(ctx context.Context, ticketID int) (int, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0)
		FROM ticket_purchases
		WHERE ticket_id = $1
	`

	var totalQuantity int
	if err := r.db.QueryRow(ctx, query, ticketID).Scan(&totalQuantity); err != nil {
		return 0, err
	}

	return totalQuantity, nil
}

func (r *TicketPurchaseRepositoryImpl) ListBuyers(ctx context.Context, ticketID int) ([]int, error) {
	query := `
		SELECT DISTINCT user_id
		FROM ticket_purchases
		WHERE ticket_id = $1
		ORDER BY user_id
	`

	rows, err := r.db.Query(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	buyers := make([]int, 0)
	for rows.Next() {
		var userID int
		if err := rows.Scan(&userID); err != nil {
			return nil, err
		}
		buyers = append(buyers, userID)
	}

	return buyers, rows.Err()
}

func (r *TicketPurchaseRepositoryImpl) ListByConferenceAndUser(ctx context.Context, conferenceID int, userID int) ([]*model.TicketPurchase, error) {
	query := `
		SELECT p.id, p.ticket_id, p.user_id, p.conference_id, p.quantity, p.paid, p.payment_id,
		       p.created_at, p.updated_at,
		       t.title, t.description, t.price_cents, t.price_currency
		FROM ticket_purchases p
		JOIN tickets t ON t.id = p.ticket_id
		WHERE p.conference_id = $1 AND p.user_id = $2
		ORDER BY p.id
	`

	rows, err := r.db.Query(ctx, query, conferenceID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	purchases := make([]*model.TicketPurchase, 0)
	for rows.Next() {
		var p model.TicketPurchase
		var t model.Ticket
		err := scanPurchase(rows, &p,
			&t.Title,
			&t.Description,
			&t.PriceCents,
			&t.PriceCurrency,
		)
		if err != nil {
			return nil, err
		}
		t.ID = p.TicketID
		t.ConferenceID = p.ConferenceID
		p.Ticket = &t
		purchases = append(purchases, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return purchases, nil
}

func (r *TicketPurchaseRepositoryImpl) ListUnpaid(ctx context.Context, conferenceID int, userID int) ([]*model.TicketPurchase, error) {
	query := `
		SELECT ` + purchaseColumns + `
		FROM ticket_purchases
		WHERE conference_id = $1 AND user_id = $2 AND paid = FALSE
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, conferenceID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	purchases := make([]*model.TicketPurchase, 0)
	for rows.Next() {
		var p model.TicketPurchase
		if err := scanPurchase(rows, &p); err != nil {
			return nil, err
		}
		purchases = append(purchases, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return purchases, nil
}

func (r *TicketPurchaseRepositoryImpl) MarkPaid(ctx context.Context, id int, paymentID int) error {
	query := `
		UPDATE ticket_purchases
		SET paid = TRUE, payment_id = $1, updated_at = NOW()
		WHERE id = $2 AND paid = FALSE
	`

	result, err := r.db.Exec(ctx, query, paymentID, id)
	if err != nil {
		return fmt.Errorf("failed to mark purchase %d paid: %w", id, err)
	}

	// 已被其他請求標記付款或刪除
	if result.RowsAffected() == 0 {
		return apperrors.ErrPurchaseNotFound
	}

	return nil
}

// UpsertUnpaid inserts the unpaid purchase or, when the user already holds
// one for the ticket, overwrites its quantity.
func (r *TicketPurchaseRepositoryImpl) UpsertUnpaid(ctx context.Context, tx pgx.Tx, purchase *model.TicketPurchase) (*model.TicketPurchase, model.PurchaseOutcome, error) {
	query := `
		INSERT INTO ticket_purchases (ticket_id, user_id, conference_id, quantity, paid)
		VALUES ($1, $2, $3, $4, FALSE)
		ON CONFLICT (ticket_id, user_id, conference_id) WHERE paid = FALSE
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = NOW()
		RETURNING ` + purchaseColumns + `, (xmax = 0) AS inserted
	`

	var saved model.TicketPurchase
	var inserted bool
	err := scanPurchase(tx.QueryRow(ctx, query,
		purchase.TicketID, purchase.UserID, purchase.ConferenceID, purchase.Quantity,
	), &saved, &inserted)
	if err != nil {
		return nil, "", fmt.Errorf("failed to upsert ticket purchase: %w", err)
	}

	if inserted {
		return &saved, model.PurchaseCreated, nil
	}
	return &saved, model.PurchaseUpdated, nil
}
