package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"conference-ticketing/internal/database"
	"conference-ticketing/internal/model"
	apperrors "conference-ticketing/pkg/app_errors"

	"github.com/jackc/pgx/v5"
)

const ticketColumns = `id, conference_id, title, description, price_cents, price_currency, created_at, updated_at`

type TicketRepository interface {
	Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error)
	ListByConferenceID(ctx context.Context, conferenceID int) ([]*model.Ticket, error)
	FindByID(ctx context.Context, id int) (*model.Ticket, error)
	Update(ctx context.Context, id int, params model.UpdateTicketParams) (*model.Ticket, error)
	// Delete 刪除票券，購買紀錄隨 FK cascade 一併刪除
	Delete(ctx context.Context, id int) error
	// CurrenciesByConferenceID 回傳同一會議其他票券使用的幣別
	CurrenciesByConferenceID(ctx context.Context, conferenceID int, excludeID int) ([]string, error)
}

type TicketRepositoryImpl struct {
	db database.DB
}

func NewTicketRepository(db database.DB) TicketRepository {
	return &TicketRepositoryImpl{
		db: db,
	}
}

func scanTicket(row pgx.Row, ticket *model.Ticket) error {
	return row.Scan(
		&ticket.ID,
		&ticket.ConferenceID,
		&ticket.Title,
		&ticket.Description,
		&ticket.PriceCents,
		&ticket.PriceCurrency,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)
}

func (r *TicketRepositoryImpl) Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	query := `
		INSERT INTO tickets (conference_id, title, description, price_cents, price_currency)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + ticketColumns

	err := scanTicket(r.db.QueryRow(ctx, query,
		ticket.ConferenceID, ticket.Title, ticket.Description,
		ticket.PriceCents, ticket.PriceCurrency,
	), ticket)
	if err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	return ticket, nil
}

func (r *TicketRepositoryImpl) ListByConferenceID(ctx context.Context, conferenceID int) ([]*model.Ticket, error) {
	query := `
		SELECT ` + ticketColumns + `
		FROM tickets
		WHERE conference_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, conferenceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]*model.Ticket, 0)
	for rows.Next() {
		var ticket model.Ticket
		if err := scanTicket(rows, &ticket); err != nil {
			return nil, err
		}
		tickets = append(tickets, &ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}

func (r *TicketRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Ticket, error) {
	query := `
		SELECT ` + ticketColumns + `
		FROM tickets
		WHERE id = $1
	`

	var ticket model.Ticket
	err := scanTicket(r.db.QueryRow(ctx, query, id), &ticket)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}

	return &ticket, nil
}

func (r *TicketRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateTicketParams) (*model.Ticket, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Title != nil {
		sets = append(sets, fmt.Sprintf("title = $%d", argPos))
		args = append(args, *params.Title)
		argPos++
	}

	if params.Description != nil {
		sets = append(sets, fmt.Sprintf("description = $%d", argPos))
		args = append(args, *params.Description)
		argPos++
	}

	if params.PriceCents != nil {
		sets = append(sets, fmt.Sprintf("price_cents = $%d", argPos))
		args = append(args, *params.PriceCents)
		argPos++
	}

	if params.PriceCurrency != nil {
		sets = append(sets, fmt.Sprintf("price_currency = $%d", argPos))
		args = append(args, strings.ToUpper(*params.PriceCurrency))
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	// add updated_at
	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	// add id
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE tickets
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, ticketColumns)

	var ticket model.Ticket
	err := scanTicket(r.db.QueryRow(ctx, query, args...), &ticket)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}

	return &ticket, nil
}

func (r *TicketRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.db.Exec(ctx, `DELETE FROM tickets WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrTicketNotFound
	}

	return nil
}

func (r *TicketRepositoryImpl) CurrenciesByConferenceID(ctx context.Context, conferenceID int, excludeID int) ([]string, error) {
	query := `
		SELECT DISTINCT price_currency
		FROM tickets
		WHERE conference_id = $1 AND id <> $2
	`

	rows, err := r.db.Query(ctx, query, conferenceID, excludeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	currencies := make([]string, 0)
	for rows.Next() {
		var currency string
		if err := rows.Scan(&currency); err != nil {
			return nil, err
		}
		currencies = append(currencies, currency)
	}

	return currencies, rows.Err()
}
