package repository_test

import (
	"context"
	"errors"
	"testing"

	"conference-ticketing/internal/model"
	"conference-ticketing/internal/repository"
	apperrors "conference-ticketing/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketPurchaseRepository_SumQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repository.NewTicketPurchaseRepository(mock)

		mock.ExpectQuery("SELECT COALESCE").
			WithArgs(1, 2, true).
			WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(5))

		quantity, err := repo.SumQuantity(ctx, 1, 2, true)

		require.NoError(t, err)
		assert.Equal(t, 5, quantity)
	})

	t.Run("NoPurchases", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repository.NewTicketPurchaseRepository(mock)

		mock.ExpectQuery("SELECT COALESCE").
			WithArgs(1, 2, false).
			WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(0))

		quantity, err := repo.SumQuantity(ctx, 1, 2, false)

		require.NoError(t, err)
		assert.Equal(t, 0, quantity)
	})
}

func TestTicketPurchaseRepository_SumQuantityByTicket(t *testing.T) {
	mock := newMockPool(t)
	repo := repository.NewTicketPurchaseRepository(mock)

	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(12))

	sold, err := repo.SumQuantityByTicket(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 12, sold)
}

func TestTicketPurchaseRepository_Exists(t *testing.T) {
	ctx := context.Background()
	mock := newMockPool(t)
	repo := repository.NewTicketPurchaseRepository(mock)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(1, 2).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(1, 2, true).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	bought, err := repo.IsBuyer(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, bought)

	paid, err := repo.HasPurchase(ctx, 1, 2, true)
	require.NoError(t, err)
	assert.False(t, paid)
}

func TestTicketPurchaseRepository_ListBuyers(t *testing.T) {
	mock := newMockPool(t)
	repo := repository.NewTicketPurchaseRepository(mock)

	mock.ExpectQuery("SELECT DISTINCT user_id").
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"user_id"}).AddRow(2).AddRow(5))

	buyers, err := repo.ListBuyers(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, []int{2, 5}, buyers)
}

func TestTicketPurchaseRepository_ListByConferenceAndUser(t *testing.T) {
	mock := newMockPool(t)
	repo := repository.NewTicketPurchaseRepository(mock)

	paymentID := 44
	cols := append(append([]string{}, purchaseCols...), "title", "description", "price_cents", "price_currency")
	mock.ExpectQuery("JOIN tickets t").
		WithArgs(3, 2).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(10, 1, 2, 3, 2, true, &paymentID, fixedTime, fixedTime, "Early Bird", (*string)(nil), int64(5000), "EUR").
			AddRow(11, 4, 2, 3, 1, false, (*int)(nil), fixedTime, fixedTime, "Workshop", strPtr("Hands-on"), int64(2500), "EUR"))

	purchases, err := repo.ListByConferenceAndUser(context.Background(), 3, 2)

	require.NoError(t, err)
	require.Len(t, purchases, 2)
	assert.Equal(t, "Early Bird", purchases[0].Title())
	assert.Equal(t, 44, *purchases[0].PaymentID)
	assert.Equal(t, 4, purchases[1].Ticket.ID)
	assert.Equal(t, "Hands-on", *purchases[1].Description())
	assert.Nil(t, purchases[1].PaymentID)
}

func TestTicketPurchaseRepository_ListUnpaid(t *testing.T) {
	mock := newMockPool(t)
	repo := repository.NewTicketPurchaseRepository(mock)

	mock.ExpectQuery("paid = FALSE").
		WithArgs(3, 2).
		WillReturnRows(pgxmock.NewRows(purchaseCols).
			AddRow(10, 1, 2, 3, 2, false, (*int)(nil), fixedTime, fixedTime))

	purchases, err := repo.ListUnpaid(context.Background(), 3, 2)

	require.NoError(t, err)
	require.Len(t, purchases, 1)
	assert.False(t, purchases[0].Paid)
}

func TestTicketPurchaseRepository_MarkPaid(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repository.NewTicketPurchaseRepository(mock)

		mock.ExpectExec("UPDATE ticket_purchases").
			WithArgs(44, 10).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.MarkPaid(ctx, 10, 44))
	})

	t.Run("AlreadyPaid", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repository.NewTicketPurchaseRepository(mock)

		mock.ExpectExec("UPDATE ticket_purchases").
			WithArgs(44, 10).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.ErrorIs(t, repo.MarkPaid(ctx, 10, 44), apperrors.ErrPurchaseNotFound)
	})

	t.Run("Failed - DBError", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repository.NewTicketPurchaseRepository(mock)

		mock.ExpectExec("UPDATE ticket_purchases").
			WithArgs(44, 10).
			WillReturnError(errors.New("deadlock detected"))

		err := repo.MarkPaid(ctx, 10, 44)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "deadlock detected")
	})
}

func TestTicketPurchaseRepository_UpsertUnpaid(t *testing.T) {
	ctx := context.Background()
	upsertCols := append(append([]string{}, purchaseCols...), "inserted")

	t.Run("Created", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repository.NewTicketPurchaseRepository(mock)

		mock.ExpectBegin()
		mock.ExpectQuery("ON CONFLICT \\(ticket_id, user_id, conference_id\\) WHERE paid = FALSE").
			WithArgs(1, 2, 3, 3).
			WillReturnRows(pgxmock.NewRows(upsertCols).
				AddRow(10, 1, 2, 3, 3, false, (*int)(nil), fixedTime, fixedTime, true))

		tx, err := mock.BeginTx(ctx, pgx.TxOptions{})
		require.NoError(t, err)

		saved, outcome, err := repo.UpsertUnpaid(ctx, tx, &model.TicketPurchase{TicketID: 1, UserID: 2, ConferenceID: 3, Quantity: 3})

		require.NoError(t, err)
		assert.Equal(t, model.PurchaseCreated, outcome)
		assert.Equal(t, 10, saved.ID)
		assert.Equal(t, 3, saved.Quantity)
	})

	t.Run("Updated", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repository.NewTicketPurchaseRepository(mock)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO ticket_purchases").
			WithArgs(1, 2, 3, 5).
			WillReturnRows(pgxmock.NewRows(upsertCols).
				AddRow(10, 1, 2, 3, 5, false, (*int)(nil), fixedTime, fixedTime, false))

		tx, err := mock.BeginTx(ctx, pgx.TxOptions{})
		require.NoError(t, err)

		saved, outcome, err := repo.UpsertUnpaid(ctx, tx, &model.TicketPurchase{TicketID: 1, UserID: 2, ConferenceID: 3, Quantity: 5})

		require.NoError(t, err)
		assert.Equal(t, model.PurchaseUpdated, outcome)
		assert.Equal(t, 5, saved.Quantity)
	})
}
