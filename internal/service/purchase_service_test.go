package service_test

import (
	"context"
	"errors"
	"testing"

	cacheMocks "conference-ticketing/internal/cache/mocks"
	"conference-ticketing/internal/model"
	repoMocks "conference-ticketing/internal/repository/mocks"
	"conference-ticketing/internal/service"
	apperrors "conference-ticketing/pkg/app_errors"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type purchaseMocks struct {
	db          pgxmock.PgxPoolIface
	purchases   *repoMocks.MockTicketPurchaseRepository
	tickets     *repoMocks.MockTicketRepository
	conferences *repoMocks.MockConferenceRepository
	users       *repoMocks.MockUserRepository
	locker      *cacheMocks.MockPurchaseLocker
	released    *bool
}

func setupPurchaseService(t *testing.T) (service.PurchaseService, purchaseMocks) {
	db, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, db.ExpectationsWereMet())
		db.Close()
	})

	m := purchaseMocks{
		db:          db,
		purchases:   repoMocks.NewMockTicketPurchaseRepository(t),
		tickets:     repoMocks.NewMockTicketRepository(t),
		conferences: repoMocks.NewMockConferenceRepository(t),
		users:       repoMocks.NewMockUserRepository(t),
		locker:      cacheMocks.NewMockPurchaseLocker(t),
		released:    new(bool),
	}
	svc := service.NewPurchaseService(m.db, m.purchases, m.tickets, m.conferences, m.users, m.locker)
	return svc, m
}

// expectLock 取得鎖並記錄是否有釋放
func (m purchaseMocks) expectLock(conferenceID, userID int) {
	release := func(context.Context) error {
		*m.released = true
		return nil
	}
	m.locker.EXPECT().Acquire(mock.Anything, conferenceID, userID).Return(release, nil).Once()
}

func (m purchaseMocks) expectLookups(ctx context.Context, tickets ...*model.Ticket) {
	m.conferences.EXPECT().FindByID(ctx, 1).Return(&model.Conference{ID: 1, Name: "GopherCon"}, nil).Once()
	m.users.EXPECT().FindByID(ctx, 2).Return(&model.User{ID: 2, Name: "Ada"}, nil).Once()
	m.tickets.EXPECT().ListByConferenceID(ctx, 1).Return(tickets, nil).Once()
}

func upsertOf(ticketID, quantity int) interface{} {
	return mock.MatchedBy(func(p *model.TicketPurchase) bool {
		return p.TicketID == ticketID && p.Quantity == quantity && p.UserID == 2 && p.ConferenceID == 1 && !p.Paid
	})
}

func TestPurchaseService_Purchase(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, m := setupPurchaseService(t)
		m.expectLock(1, 2)
		m.expectLookups(ctx, eur(1, 5000), eur(2, 2500), eur(3, 1000))

		m.db.ExpectBegin()
		m.purchases.EXPECT().UpsertUnpaid(ctx, mock.Anything, upsertOf(1, 2)).
			Return(&model.TicketPurchase{ID: 10, TicketID: 1, Quantity: 2}, model.PurchaseCreated, nil).Once()
		m.purchases.EXPECT().UpsertUnpaid(ctx, mock.Anything, upsertOf(3, 4)).
			Return(&model.TicketPurchase{ID: 11, TicketID: 3, Quantity: 4}, model.PurchaseUpdated, nil).Once()
		m.db.ExpectCommit()

		// 執行：ticket 2 數量 0 不寫入
		messages, err := svc.Purchase(ctx, 1, 2, map[string]string{"1": "2", "2": "0", "3": " 4 "})

		// 驗證結果
		require.NoError(t, err)
		assert.Empty(t, messages)
		assert.True(t, *m.released)
	})

	t.Run("AbsentAndUnknownKeysIgnored", func(t *testing.T) {
		svc, m := setupPurchaseService(t)
		m.expectLock(1, 2)
		m.expectLookups(ctx, eur(1, 5000))

		m.db.ExpectBegin()
		m.db.ExpectCommit()

		messages, err := svc.Purchase(ctx, 1, 2, map[string]string{"99": "3"})

		require.NoError(t, err)
		assert.Empty(t, messages)
		m.purchases.AssertNotCalled(t, "UpsertUnpaid", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("MalformedQuantities", func(t *testing.T) {
		svc, m := setupPurchaseService(t)
		m.expectLock(1, 2)
		m.expectLookups(ctx, eur(1, 5000), eur(2, 2500), eur(3, 1000))

		m.db.ExpectBegin()
		m.purchases.EXPECT().UpsertUnpaid(ctx, mock.Anything, upsertOf(3, 1)).
			Return(&model.TicketPurchase{ID: 12}, model.PurchaseCreated, nil).Once()
		m.db.ExpectCommit()

		messages, err := svc.Purchase(ctx, 1, 2, map[string]string{"1": "abc", "2": "-1", "3": "1"})

		require.NoError(t, err)
		assert.Equal(t,
			"Quantity for ticket 1 is not a number. Quantity for ticket 2 must be greater than or equal to 0",
			messages,
		)
	})

	t.Run("Failed - StorageFaultRollsBack", func(t *testing.T) {
		svc, m := setupPurchaseService(t)
		m.expectLock(1, 2)
		m.expectLookups(ctx, eur(1, 5000), eur(2, 2500))

		m.db.ExpectBegin()
		m.purchases.EXPECT().UpsertUnpaid(ctx, mock.Anything, upsertOf(1, 1)).
			Return(&model.TicketPurchase{ID: 10}, model.PurchaseCreated, nil).Once()
		m.purchases.EXPECT().UpsertUnpaid(ctx, mock.Anything, upsertOf(2, 1)).
			Return(nil, model.PurchaseOutcome(""), errors.New("connection reset")).Once()
		m.db.ExpectRollback()

		_, err := svc.Purchase(ctx, 1, 2, map[string]string{"1": "1", "2": "1"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
		assert.True(t, *m.released)
	})

	t.Run("Failed - PurchaseInProgress", func(t *testing.T) {
		svc, m := setupPurchaseService(t)

		m.locker.EXPECT().Acquire(mock.Anything, 1, 2).Return(nil, apperrors.ErrPurchaseInProgress).Once()

		_, err := svc.Purchase(ctx, 1, 2, map[string]string{"1": "1"})

		assert.ErrorIs(t, err, apperrors.ErrPurchaseInProgress)
	})

	t.Run("Failed - ConferenceNotFound", func(t *testing.T) {
		svc, m := setupPurchaseService(t)
		m.expectLock(1, 2)

		m.conferences.EXPECT().FindByID(ctx, 1).Return(nil, apperrors.ErrConferenceNotFound).Once()

		_, err := svc.Purchase(ctx, 1, 2, map[string]string{"1": "1"})

		assert.ErrorIs(t, err, apperrors.ErrConferenceNotFound)
		assert.True(t, *m.released)
	})

	t.Run("Failed - UserNotFound", func(t *testing.T) {
		svc, m := setupPurchaseService(t)
		m.expectLock(1, 2)

		m.conferences.EXPECT().FindByID(ctx, 1).Return(&model.Conference{ID: 1}, nil).Once()
		m.users.EXPECT().FindByID(ctx, 2).Return(nil, apperrors.ErrUserNotFound).Once()

		_, err := svc.Purchase(ctx, 1, 2, map[string]string{"1": "1"})

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestPurchaseService_MarkPaid(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, m := setupPurchaseService(t)

		m.purchases.EXPECT().ListUnpaid(ctx, 1, 2).Return([]*model.TicketPurchase{{ID: 10}, {ID: 11}}, nil).Once()
		m.purchases.EXPECT().MarkPaid(ctx, 10, 44).Return(nil).Once()
		m.purchases.EXPECT().MarkPaid(ctx, 11, 44).Return(nil).Once()

		results, err := svc.MarkPaid(ctx, 1, 2, 44)

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, 0, model.Failed(results))
	})

	t.Run("RecordFailureReported", func(t *testing.T) {
		svc, m := setupPurchaseService(t)

		m.purchases.EXPECT().ListUnpaid(ctx, 1, 2).Return([]*model.TicketPurchase{{ID: 10}, {ID: 11}}, nil).Once()
		m.purchases.EXPECT().MarkPaid(ctx, 10, 44).Return(apperrors.ErrPurchaseNotFound).Once()
		m.purchases.EXPECT().MarkPaid(ctx, 11, 44).Return(nil).Once()

		results, err := svc.MarkPaid(ctx, 1, 2, 44)

		require.NoError(t, err)
		assert.Equal(t, 1, model.Failed(results))
		assert.ErrorIs(t, results[0].Err, apperrors.ErrPurchaseNotFound)
		assert.Equal(t, 11, results[1].PurchaseID)
		assert.NoError(t, results[1].Err)
	})

	t.Run("NothingUnpaid", func(t *testing.T) {
		svc, m := setupPurchaseService(t)

		m.purchases.EXPECT().ListUnpaid(ctx, 1, 2).Return([]*model.TicketPurchase{}, nil).Once()

		results, err := svc.MarkPaid(ctx, 1, 2, 44)

		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("Failed - ListError", func(t *testing.T) {
		svc, m := setupPurchaseService(t)

		m.purchases.EXPECT().ListUnpaid(ctx, 1, 2).Return(nil, errors.New("connection reset")).Once()

		_, err := svc.MarkPaid(ctx, 1, 2, 44)

		assert.Error(t, err)
	})
}

func TestPurchaseService_ListByUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, m := setupPurchaseService(t)

		m.conferences.EXPECT().FindByID(ctx, 1).Return(&model.Conference{ID: 1}, nil).Once()
		m.purchases.EXPECT().ListByConferenceAndUser(ctx, 1, 2).
			Return([]*model.TicketPurchase{{ID: 10, Ticket: eur(1, 5000)}}, nil).Once()

		purchases, err := svc.ListByUser(ctx, 1, 2)

		require.NoError(t, err)
		require.Len(t, purchases, 1)
		assert.Equal(t, "Ticket", purchases[0].Title())
	})

	t.Run("Failed - ConferenceNotFound", func(t *testing.T) {
		svc, m := setupPurchaseService(t)

		m.conferences.EXPECT().FindByID(ctx, 1).Return(nil, apperrors.ErrConferenceNotFound).Once()

		_, err := svc.ListByUser(ctx, 1, 2)

		assert.ErrorIs(t, err, apperrors.ErrConferenceNotFound)
	})
}
