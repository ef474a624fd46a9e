package repository_test

import (
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

var (
	ticketCols   = []string{"id", "conference_id", "title", "description", "price_cents", "price_currency", "created_at", "updated_at"}
	purchaseCols = []string{"id", "ticket_id", "user_id", "conference_id", "quantity", "paid", "payment_id", "created_at", "updated_at"}
	fixedTime    = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
)

// newMockPool 建立 pgxmock 連接池，測試結束時檢查所有預期都被觸發
func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func strPtr(s string) *string { return &s }
