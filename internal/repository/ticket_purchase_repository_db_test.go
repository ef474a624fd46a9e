package repository_test

import (
	"context"
	"testing"

	"conference-ticketing/internal/model"
	"conference-ticketing/internal/repository"
	"conference-ticketing/internal/testutil"
	apperrors "conference-ticketing/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upsertInTx(t *testing.T, db *pgxpool.Pool, repo repository.TicketPurchaseRepository, p *model.TicketPurchase) (*model.TicketPurchase, model.PurchaseOutcome) {
	t.Helper()
	ctx := context.Background()

	tx, err := db.BeginTx(ctx, pgx.TxOptions{})
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	saved, outcome, err := repo.UpsertUnpaid(ctx, tx, p)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))
	return saved, outcome
}

func TestTicketPurchaseRepository_DB(t *testing.T) {
	db := testutil.SetupDB(t)
	ctx := context.Background()
	repo := repository.NewTicketPurchaseRepository(db)

	t.Run("UpsertUpdatesExistingUnpaid", func(t *testing.T) {
		fx := testutil.NewFixture(t, db, 1)
		user := fx.Users[0]
		purchase := func(qty int) *model.TicketPurchase {
			return &model.TicketPurchase{TicketID: fx.Ticket.ID, UserID: user.ID, ConferenceID: fx.Conference.ID, Quantity: qty}
		}

		first, outcome := upsertInTx(t, db, repo, purchase(2))
		assert.Equal(t, model.PurchaseCreated, outcome)

		second, outcome := upsertInTx(t, db, repo, purchase(5))
		assert.Equal(t, model.PurchaseUpdated, outcome)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 5, second.Quantity)

		assert.Equal(t, 1, testutil.CountPurchases(t, db, fx.Ticket.ID, user.ID, false))
		qty, err := repo.SumQuantity(ctx, fx.Ticket.ID, user.ID, false)
		require.NoError(t, err)
		assert.Equal(t, 5, qty)
	})

	t.Run("NewUnpaidAfterPaid", func(t *testing.T) {
		fx := testutil.NewFixture(t, db, 1)
		user := fx.Users[0]

		paid, _ := upsertInTx(t, db, repo, &model.TicketPurchase{
			TicketID: fx.Ticket.ID, UserID: user.ID, ConferenceID: fx.Conference.ID, Quantity: 2,
		})
		require.NoError(t, repo.MarkPaid(ctx, paid.ID, 900))

		fresh, outcome := upsertInTx(t, db, repo, &model.TicketPurchase{
			TicketID: fx.Ticket.ID, UserID: user.ID, ConferenceID: fx.Conference.ID, Quantity: 3,
		})
		assert.Equal(t, model.PurchaseCreated, outcome)
		assert.NotEqual(t, paid.ID, fresh.ID)

		assert.Equal(t, 1, testutil.CountPurchases(t, db, fx.Ticket.ID, user.ID, true))
		assert.Equal(t, 1, testutil.CountPurchases(t, db, fx.Ticket.ID, user.ID, false))

		paidQty, err := repo.SumQuantity(ctx, fx.Ticket.ID, user.ID, true)
		require.NoError(t, err)
		assert.Equal(t, 2, paidQty)

		// 已付款紀錄不能再被標記
		assert.ErrorIs(t, repo.MarkPaid(ctx, paid.ID, 901), apperrors.ErrPurchaseNotFound)
	})

	t.Run("MarkPaidLeavesOtherUsers", func(t *testing.T) {
		fx := testutil.NewFixture(t, db, 2)
		buyer, other := fx.Users[0], fx.Users[1]

		for _, u := range fx.Users {
			upsertInTx(t, db, repo, &model.TicketPurchase{
				TicketID: fx.Ticket.ID, UserID: u.ID, ConferenceID: fx.Conference.ID, Quantity: 1,
			})
		}

		unpaid, err := repo.ListUnpaid(ctx, fx.Conference.ID, buyer.ID)
		require.NoError(t, err)
		require.Len(t, unpaid, 1)
		require.NoError(t, repo.MarkPaid(ctx, unpaid[0].ID, 77))

		paid, err := repo.HasPurchase(ctx, fx.Ticket.ID, buyer.ID, true)
		require.NoError(t, err)
		assert.True(t, paid)

		otherUnpaid, err := repo.ListUnpaid(ctx, fx.Conference.ID, other.ID)
		require.NoError(t, err)
		require.Len(t, otherUnpaid, 1)
		assert.False(t, otherUnpaid[0].Paid)
		assert.Nil(t, otherUnpaid[0].PaymentID)
	})
}
