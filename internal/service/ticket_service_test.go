package service_test

import (
	"context"
	"errors"
	"testing"

	"conference-ticketing/internal/model"
	repoMocks "conference-ticketing/internal/repository/mocks"
	"conference-ticketing/internal/service"
	apperrors "conference-ticketing/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ticketMocks struct {
	tickets     *repoMocks.MockTicketRepository
	purchases   *repoMocks.MockTicketPurchaseRepository
	conferences *repoMocks.MockConferenceRepository
}

func setupTicketService(t *testing.T) (service.TicketService, ticketMocks) {
	m := ticketMocks{
		tickets:     repoMocks.NewMockTicketRepository(t),
		purchases:   repoMocks.NewMockTicketPurchaseRepository(t),
		conferences: repoMocks.NewMockConferenceRepository(t),
	}
	return service.NewTicketService(m.tickets, m.purchases, m.conferences, "USD"), m
}

func eur(id int, cents int64) *model.Ticket {
	return &model.Ticket{ID: id, ConferenceID: 1, Title: "Ticket", PriceCents: cents, PriceCurrency: "EUR"}
}

func TestTicketService_Create(t *testing.T) {
	ctx := context.Background()
	conference := &model.Conference{ID: 1, Name: "GopherCon"}

	t.Run("Success", func(t *testing.T) {
		svc, m := setupTicketService(t)
		ticket := &model.Ticket{ConferenceID: 1, Title: "Early Bird", PriceCents: 5000, PriceCurrency: "eur"}

		m.conferences.EXPECT().FindByID(ctx, 1).Return(conference, nil).Once()
		m.tickets.EXPECT().CurrenciesByConferenceID(ctx, 1, 0).Return([]string{"EUR"}, nil).Once()
		m.tickets.EXPECT().Create(ctx, ticket).Return(ticket, nil).Once()

		// 執行
		created, err := svc.Create(ctx, ticket)

		// 驗證結果
		require.NoError(t, err)
		assert.Equal(t, "EUR", created.PriceCurrency)
	})

	t.Run("Failed - CurrencyDiffersFromSiblings", func(t *testing.T) {
		svc, m := setupTicketService(t)
		ticket := &model.Ticket{ConferenceID: 1, Title: "Early Bird", PriceCents: 5000, PriceCurrency: "USD"}

		m.conferences.EXPECT().FindByID(ctx, 1).Return(conference, nil).Once()
		m.tickets.EXPECT().CurrenciesByConferenceID(ctx, 1, 0).Return([]string{"EUR"}, nil).Once()

		_, err := svc.Create(ctx, ticket)

		var verrs model.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, []string{"Price currency is different from the existing tickets of this conference."}, verrs.FullMessages())
		m.tickets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Failed - InvalidFields", func(t *testing.T) {
		svc, m := setupTicketService(t)
		ticket := &model.Ticket{ConferenceID: 1, PriceCents: 0, PriceCurrency: "EUR"}

		m.conferences.EXPECT().FindByID(ctx, 1).Return(conference, nil).Once()
		m.tickets.EXPECT().CurrenciesByConferenceID(ctx, 1, 0).Return([]string{}, nil).Once()

		_, err := svc.Create(ctx, ticket)

		var verrs model.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.FullMessages(), "Title can't be blank")
		assert.Contains(t, verrs.FullMessages(), "Price cents must be greater than 0")
	})

	t.Run("Failed - ConferenceNotFound", func(t *testing.T) {
		svc, m := setupTicketService(t)

		m.conferences.EXPECT().FindByID(ctx, 99).Return(nil, apperrors.ErrConferenceNotFound).Once()

		_, err := svc.Create(ctx, &model.Ticket{ConferenceID: 99})

		assert.ErrorIs(t, err, apperrors.ErrConferenceNotFound)
	})
}

func TestTicketService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, m := setupTicketService(t)
		title := "Late Bird"
		params := model.UpdateTicketParams{Title: &title}
		updated := eur(7, 5000)
		updated.Title = title

		m.tickets.EXPECT().FindByID(ctx, 7).Return(eur(7, 5000), nil).Once()
		m.tickets.EXPECT().CurrenciesByConferenceID(ctx, 1, 7).Return([]string{"EUR"}, nil).Once()
		m.tickets.EXPECT().Update(ctx, 7, params).Return(updated, nil).Once()

		ticket, err := svc.Update(ctx, 7, params)

		require.NoError(t, err)
		assert.Equal(t, "Late Bird", ticket.Title)
	})

	t.Run("Failed - CurrencyDiffersFromSiblings", func(t *testing.T) {
		svc, m := setupTicketService(t)
		currency := "USD"
		params := model.UpdateTicketParams{PriceCurrency: &currency}

		m.tickets.EXPECT().FindByID(ctx, 7).Return(eur(7, 5000), nil).Once()
		m.tickets.EXPECT().CurrenciesByConferenceID(ctx, 1, 7).Return([]string{"EUR"}, nil).Once()

		_, err := svc.Update(ctx, 7, params)

		var verrs model.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, "price_currency", verrs[0].Field)
	})

	t.Run("Failed - EmptyParams", func(t *testing.T) {
		svc, _ := setupTicketService(t)

		_, err := svc.Update(ctx, 7, model.UpdateTicketParams{})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Failed - NotFound", func(t *testing.T) {
		svc, m := setupTicketService(t)
		title := "Late Bird"

		m.tickets.EXPECT().FindByID(ctx, 7).Return(nil, apperrors.ErrTicketNotFound).Once()

		_, err := svc.Update(ctx, 7, model.UpdateTicketParams{Title: &title})

		assert.ErrorIs(t, err, apperrors.ErrTicketNotFound)
	})
}

func TestTicketService_PurchaseFlags(t *testing.T) {
	ctx := context.Background()
	svc, m := setupTicketService(t)

	m.purchases.EXPECT().IsBuyer(ctx, 1, 2).Return(true, nil).Once()
	m.purchases.EXPECT().HasPurchase(ctx, 1, 2, true).Return(false, nil).Once()
	m.purchases.EXPECT().HasPurchase(ctx, 1, 2, false).Return(true, nil).Once()
	m.purchases.EXPECT().SumQuantity(ctx, 1, 2, false).Return(3, nil).Once()

	bought, err := svc.BoughtBy(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, bought)

	paid, err := svc.PaidBy(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, paid)

	unpaid, err := svc.UnpaidBy(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, unpaid)

	quantity, err := svc.QuantityPurchasedBy(ctx, 1, 2, false)
	require.NoError(t, err)
	assert.Equal(t, 3, quantity)
}

func TestTicketService_TotalPrice(t *testing.T) {
	ctx := context.Background()
	svc, m := setupTicketService(t)

	m.purchases.EXPECT().SumQuantity(ctx, 1, 2, true).Return(3, nil).Once()

	total, err := svc.TotalPrice(ctx, eur(1, 5000), 2, true)

	require.NoError(t, err)
	assert.Equal(t, int64(15000), total.Amount())
	assert.Equal(t, "EUR", total.Currency().Code)
}

func TestTicketService_TotalPriceAcrossTickets(t *testing.T) {
	ctx := context.Background()

	t.Run("Sum", func(t *testing.T) {
		svc, m := setupTicketService(t)

		m.tickets.EXPECT().ListByConferenceID(ctx, 1).Return([]*model.Ticket{eur(1, 5000), eur(2, 2500)}, nil).Once()
		m.purchases.EXPECT().SumQuantity(ctx, 1, 5, false).Return(2, nil).Once()
		m.purchases.EXPECT().SumQuantity(ctx, 2, 5, false).Return(1, nil).Once()

		total, err := svc.TotalPriceAcrossTickets(ctx, 1, 5, false)

		require.NoError(t, err)
		assert.Equal(t, int64(12500), total.Amount())
		assert.Equal(t, "EUR", total.Currency().Code)
	})

	t.Run("NoTickets", func(t *testing.T) {
		svc, m := setupTicketService(t)

		m.tickets.EXPECT().ListByConferenceID(ctx, 1).Return([]*model.Ticket{}, nil).Once()

		total, err := svc.TotalPriceAcrossTickets(ctx, 1, 5, false)

		require.NoError(t, err)
		assert.Equal(t, int64(0), total.Amount())
		assert.Equal(t, "USD", total.Currency().Code)
	})

	t.Run("ZeroContributionSkipped", func(t *testing.T) {
		svc, m := setupTicketService(t)
		usd := &model.Ticket{ID: 2, ConferenceID: 1, Title: "Legacy", PriceCents: 1000, PriceCurrency: "USD"}

		m.tickets.EXPECT().ListByConferenceID(ctx, 1).Return([]*model.Ticket{eur(1, 5000), usd}, nil).Once()
		m.purchases.EXPECT().SumQuantity(ctx, 1, 5, true).Return(1, nil).Once()
		m.purchases.EXPECT().SumQuantity(ctx, 2, 5, true).Return(0, nil).Once()

		total, err := svc.TotalPriceAcrossTickets(ctx, 1, 5, true)

		require.NoError(t, err)
		assert.Equal(t, int64(5000), total.Amount())
		assert.Equal(t, "EUR", total.Currency().Code)
	})

	t.Run("CurrencyMismatch", func(t *testing.T) {
		svc, m := setupTicketService(t)
		usd := &model.Ticket{ID: 2, ConferenceID: 1, Title: "Legacy", PriceCents: 1000, PriceCurrency: "USD"}

		m.tickets.EXPECT().ListByConferenceID(ctx, 1).Return([]*model.Ticket{eur(1, 5000), usd}, nil).Once()
		m.purchases.EXPECT().SumQuantity(ctx, 1, 5, true).Return(1, nil).Once()
		m.purchases.EXPECT().SumQuantity(ctx, 2, 5, true).Return(2, nil).Once()

		total, err := svc.TotalPriceAcrossTickets(ctx, 1, 5, true)

		require.NoError(t, err)
		assert.Equal(t, int64(model.ConversionFailedCents), total.Amount())
		assert.Equal(t, "USD", total.Currency().Code)
	})

	t.Run("Failed - DBError", func(t *testing.T) {
		svc, m := setupTicketService(t)

		m.tickets.EXPECT().ListByConferenceID(ctx, 1).Return([]*model.Ticket{eur(1, 5000)}, nil).Once()
		m.purchases.EXPECT().SumQuantity(ctx, 1, 5, true).Return(0, errors.New("connection reset")).Once()

		_, err := svc.TotalPriceAcrossTickets(ctx, 1, 5, true)

		assert.Error(t, err)
	})
}

func TestTicketService_SoldAndTurnover(t *testing.T) {
	ctx := context.Background()
	svc, m := setupTicketService(t)

	m.purchases.EXPECT().SumQuantityByTicket(ctx, 1).Return(4, nil).Twice()

	sold, err := svc.TicketsSold(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, sold)

	turnover, err := svc.TicketsTurnover(ctx, eur(1, 5000))
	require.NoError(t, err)
	assert.Equal(t, int64(20000), turnover.Amount())
}

func TestTicketService_Stats(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, m := setupTicketService(t)

		m.tickets.EXPECT().FindByID(ctx, 1).Return(eur(1, 1250), nil).Once()
		m.purchases.EXPECT().SumQuantityByTicket(ctx, 1).Return(2, nil).Once()

		stats, err := svc.Stats(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, 2, stats.TicketsSold)
		assert.Equal(t, "25.00", stats.TicketsTurnover.Amount)
	})

	t.Run("NoPurchases", func(t *testing.T) {
		svc, m := setupTicketService(t)

		m.tickets.EXPECT().FindByID(ctx, 1).Return(eur(1, 1250), nil).Once()
		m.purchases.EXPECT().SumQuantityByTicket(ctx, 1).Return(0, nil).Once()

		stats, err := svc.Stats(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, int64(0), stats.TicketsTurnover.Cents)
	})
}

func TestTicketService_UserStatus(t *testing.T) {
	ctx := context.Background()
	svc, m := setupTicketService(t)

	m.tickets.EXPECT().FindByID(ctx, 1).Return(eur(1, 5000), nil).Once()
	m.purchases.EXPECT().IsBuyer(ctx, 1, 2).Return(true, nil).Once()
	m.purchases.EXPECT().SumQuantity(ctx, 1, 2, true).Return(1, nil).Once()
	m.purchases.EXPECT().SumQuantity(ctx, 1, 2, false).Return(0, nil).Once()

	status, err := svc.UserStatus(ctx, 1, 2)

	require.NoError(t, err)
	assert.True(t, status.Bought)
	assert.True(t, status.Paid)
	assert.False(t, status.Unpaid)
	assert.Equal(t, int64(5000), status.PaidTotal.Cents)
	assert.Equal(t, int64(0), status.UnpaidTotal.Cents)
}

func TestTicketService_Buyers(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, m := setupTicketService(t)

		m.tickets.EXPECT().FindByID(ctx, 1).Return(eur(1, 5000), nil).Once()
		m.purchases.EXPECT().ListBuyers(ctx, 1).Return([]int{2, 3}, nil).Once()

		buyers, err := svc.Buyers(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, []int{2, 3}, buyers)
	})

	t.Run("Failed - NotFound", func(t *testing.T) {
		svc, m := setupTicketService(t)

		m.tickets.EXPECT().FindByID(ctx, 1).Return(nil, apperrors.ErrTicketNotFound).Once()

		_, err := svc.Buyers(ctx, 1)

		assert.ErrorIs(t, err, apperrors.ErrTicketNotFound)
	})
}

func TestTicketService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, m := setupTicketService(t)

	m.tickets.EXPECT().Delete(ctx, 1).Return(nil).Once()

	assert.NoError(t, svc.Delete(ctx, 1))
}
