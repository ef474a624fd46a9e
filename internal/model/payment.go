package model

import "time"

// PaymentCompleted is published once the external payment flow settles a
// user's purchases in one conference.
type PaymentCompleted struct {
	ConferenceID int       `json:"conference_id" binding:"required"`
	UserID       int       `json:"user_id" binding:"required"`
	PaymentID    int       `json:"payment_id" binding:"required"`
	CompletedAt  time.Time `json:"completed_at"`
}

// MarkPaidResult 每筆購買紀錄標記付款的結果
type MarkPaidResult struct {
	PurchaseID int   `json:"purchase_id"`
	Err        error `json:"-"`
}

// Failed counts results carrying an error.
func Failed(results []MarkPaidResult) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
