package testutil

import (
	"context"
	"fmt"
	"testing"

	"conference-ticketing/config"
	"conference-ticketing/internal/database"
	"conference-ticketing/internal/model"
	"conference-ticketing/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// SetupDB 連線測試 DB 並套用 migration，無法連線時略過測試
func SetupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	cfg := config.LoadTestConfig()
	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}
	t.Cleanup(pool.Close)

	require.NoError(t, database.Migrate(context.Background(), pool))
	return pool
}

// Fixture 每個測試自己的會議、使用者與票券，不與其他套件的資料衝突
type Fixture struct {
	Conference *model.Conference
	Users      []*model.User
	Ticket     *model.Ticket
}

// NewFixture 建立一個會議、n 位使用者與一張 EUR 票券
func NewFixture(t *testing.T, db *pgxpool.Pool, users int) *Fixture {
	t.Helper()
	ctx := context.Background()

	conference, err := repository.NewConferenceRepository(db).
		Create(ctx, &model.Conference{Name: "Conf " + uuid.NewString()})
	require.NoError(t, err)

	fx := &Fixture{Conference: conference}
	userRepo := repository.NewUserRepository(db)
	for i := 0; i < users; i++ {
		user, err := userRepo.Create(ctx, &model.User{
			Name:  fmt.Sprintf("Attendee %d", i+1),
			Email: uuid.NewString() + "@example.com",
		})
		require.NoError(t, err)
		fx.Users = append(fx.Users, user)
	}

	fx.Ticket, err = repository.NewTicketRepository(db).Create(ctx, &model.Ticket{
		ConferenceID:  conference.ID,
		Title:         "Early Bird",
		PriceCents:    5000,
		PriceCurrency: "EUR",
	})
	require.NoError(t, err)

	return fx
}

// CountPurchases 回傳使用者對票券的紀錄筆數
func CountPurchases(t *testing.T, db *pgxpool.Pool, ticketID, userID int, paid bool) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM ticket_purchases WHERE ticket_id = $1 AND user_id = $2 AND paid = $3`,
		ticketID, userID, paid,
	).Scan(&n)
	require.NoError(t, err)
	return n
}
