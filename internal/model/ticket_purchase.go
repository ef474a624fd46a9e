package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TicketPurchase 使用者對某票券的購買紀錄
type TicketPurchase struct {
	ID           int       `json:"id" db:"id"`
	TicketID     int       `json:"ticket_id" db:"ticket_id" validate:"required"`
	UserID       int       `json:"user_id" db:"user_id" validate:"required"`
	ConferenceID int       `json:"conference_id" db:"conference_id" validate:"required"`
	Quantity     int       `json:"quantity" db:"quantity" validate:"gt=0"`
	Paid         bool      `json:"paid" db:"paid"`
	PaymentID    *int      `json:"payment_id,omitempty" db:"payment_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`

	// Loaded through the ticket join.
	Ticket *Ticket `json:"ticket,omitempty" db:"-" validate:"-"`
}

func (p *TicketPurchase) Validate() ValidationErrors {
	return validateStruct(p)
}

// Title, Description and Price come from the ticket.
func (p *TicketPurchase) Title() string {
	if p.Ticket == nil {
		return ""
	}
	return p.Ticket.Title
}

func (p *TicketPurchase) Description() *string {
	if p.Ticket == nil {
		return nil
	}
	return p.Ticket.Description
}

// ParseQuantity parses a requested quantity. Blank means 0; anything that is
// not a non-negative integer is rejected.
func ParseQuantity(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("is not a number")
	}
	if n < 0 {
		return 0, fmt.Errorf("must be greater than or equal to 0")
	}
	return n, nil
}

// PurchaseOutcome 單一票券的寫入結果
type PurchaseOutcome string

const (
	PurchaseCreated PurchaseOutcome = "created"
	PurchaseUpdated PurchaseOutcome = "updated"
	PurchaseInvalid PurchaseOutcome = "invalid"
)

// TicketPurchaseResponse 購買紀錄響應
type TicketPurchaseResponse struct {
	ID          int     `json:"id"`
	TicketID    int     `json:"ticket_id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Price       *Money  `json:"price,omitempty"`
	Quantity    int     `json:"quantity"`
	Paid        bool    `json:"paid"`
	PaymentID   *int    `json:"payment_id,omitempty"`
}

func NewTicketPurchaseResponse(p *TicketPurchase) TicketPurchaseResponse {
	resp := TicketPurchaseResponse{
		ID:          p.ID,
		TicketID:    p.TicketID,
		Title:       p.Title(),
		Description: p.Description(),
		Quantity:    p.Quantity,
		Paid:        p.Paid,
		PaymentID:   p.PaymentID,
	}
	if p.Ticket != nil {
		price := NewMoney(p.Ticket.Price())
		resp.Price = &price
	}
	return resp
}
