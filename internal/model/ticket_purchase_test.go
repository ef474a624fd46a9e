package model

import (
	"testing"

	"github.com/Rhymond/go-money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketPurchase_Validate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		p := &TicketPurchase{TicketID: 1, UserID: 2, ConferenceID: 3, Quantity: 1}
		assert.NoError(t, p.Validate().OrNil())
	})

	t.Run("Failed - QuantityNotPositive", func(t *testing.T) {
		p := &TicketPurchase{TicketID: 1, UserID: 2, ConferenceID: 3, Quantity: 0}

		errs := p.Validate()

		require.Len(t, errs, 1)
		assert.Equal(t, "Quantity must be greater than 0", errs[0].FullMessage())
	})

	t.Run("Failed - MissingReferences", func(t *testing.T) {
		p := &TicketPurchase{Quantity: 2}

		errs := p.Validate()

		assert.ElementsMatch(t, []string{
			"Ticket can't be blank",
			"User can't be blank",
			"Conference can't be blank",
		}, errs.FullMessages())
		assert.Error(t, errs.OrNil())
	})
}

func TestTicketPurchase_DelegatesToTicket(t *testing.T) {
	desc := "Includes lunch"
	p := &TicketPurchase{ID: 9, TicketID: 1, Quantity: 2, Ticket: &Ticket{ID: 1, Title: "Day Pass", Description: &desc, PriceCents: 1999, PriceCurrency: "USD"}}

	resp := NewTicketPurchaseResponse(p)

	assert.Equal(t, "Day Pass", resp.Title)
	assert.Equal(t, &desc, resp.Description)
	require.NotNil(t, resp.Price)
	assert.Equal(t, "19.99", resp.Price.Amount)

	bare := NewTicketPurchaseResponse(&TicketPurchase{ID: 10})
	assert.Empty(t, bare.Title)
	assert.Nil(t, bare.Price)
}

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"3", 3, false},
		{" 12 ", 12, false},
		{"", 0, false},
		{"0", 0, false},
		{"abc", 0, true},
		{"2.5", 0, true},
		{"-1", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseQuantity(tc.raw)
		if tc.wantErr {
			assert.Error(t, err, tc.raw)
			continue
		}
		assert.NoError(t, err, tc.raw)
		assert.Equal(t, tc.want, got, tc.raw)
	}
}

func TestNewMoney(t *testing.T) {
	assert.Equal(t, Money{Cents: 1250, Currency: "EUR", Amount: "12.50"}, NewMoney(money.New(1250, "EUR")))
	assert.Equal(t, "500", NewMoney(money.New(500, "JPY")).Amount)

	sentinel := NewTotalMoney(money.New(ConversionFailedCents, "USD"))
	assert.True(t, sentinel.ConversionFailed)
	assert.Equal(t, "-0.01", sentinel.Amount)

	assert.False(t, NewTotalMoney(money.New(0, "USD")).ConversionFailed)
}

func TestFailed(t *testing.T) {
	results := []MarkPaidResult{{PurchaseID: 1}, {PurchaseID: 2, Err: assert.AnError}}
	assert.Equal(t, 1, Failed(results))
}
