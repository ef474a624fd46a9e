package model

import (
	"strings"
	"time"

	"github.com/Rhymond/go-money"
)

// Ticket 票券模型，價格以最小貨幣單位儲存
type Ticket struct {
	ID            int       `json:"id" db:"id"`
	ConferenceID  int       `json:"conference_id" db:"conference_id" validate:"required"`
	Title         string    `json:"title" db:"title" validate:"required"`
	Description   *string   `json:"description,omitempty" db:"description"`
	PriceCents    int64     `json:"price_cents" db:"price_cents" validate:"gt=0"`
	PriceCurrency string    `json:"price_currency" db:"price_currency" validate:"required"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

type UpdateTicketParams struct {
	Title         *string
	Description   *string
	PriceCents    *int64
	PriceCurrency *string
}

// IsEmpty reports whether no field is set.
func (p UpdateTicketParams) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.PriceCents == nil && p.PriceCurrency == nil
}

// Apply copies the set fields onto t.
func (p UpdateTicketParams) Apply(t *Ticket) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = p.Description
	}
	if p.PriceCents != nil {
		t.PriceCents = *p.PriceCents
	}
	if p.PriceCurrency != nil {
		t.PriceCurrency = strings.ToUpper(*p.PriceCurrency)
	}
}

// Price 單價
func (t *Ticket) Price() *money.Money {
	return money.New(t.PriceCents, t.PriceCurrency)
}

// Validate checks the record on its own. The same-currency rule needs the
// sibling tickets and is checked by the service.
func (t *Ticket) Validate() ValidationErrors {
	errs := validateStruct(t)
	if t.PriceCurrency != "" && money.GetCurrency(strings.ToUpper(t.PriceCurrency)) == nil {
		errs.Add("price_currency", "is not a known currency")
	}
	return errs
}

// TicketResponse 票券響應
type TicketResponse struct {
	ID           int     `json:"id"`
	ConferenceID int     `json:"conference_id"`
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
	Price        Money   `json:"price"`
	CreatedAt    string  `json:"created_at"`
}

func NewTicketResponse(t *Ticket) TicketResponse {
	return TicketResponse{
		ID:           t.ID,
		ConferenceID: t.ConferenceID,
		Title:        t.Title,
		Description:  t.Description,
		Price:        NewMoney(t.Price()),
		CreatedAt:    t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// TicketStats 銷售統計
type TicketStats struct {
	TicketID        int   `json:"ticket_id"`
	TicketsSold     int   `json:"tickets_sold"`
	TicketsTurnover Money `json:"tickets_turnover"`
}

// UserTicketStatus 使用者對單一票券的購買狀態
type UserTicketStatus struct {
	TicketID       int   `json:"ticket_id"`
	UserID         int   `json:"user_id"`
	Bought         bool  `json:"bought"`
	Paid           bool  `json:"paid"`
	Unpaid         bool  `json:"unpaid"`
	PaidQuantity   int   `json:"paid_quantity"`
	UnpaidQuantity int   `json:"unpaid_quantity"`
	PaidTotal      Money `json:"paid_total"`
	UnpaidTotal    Money `json:"unpaid_total"`
}
