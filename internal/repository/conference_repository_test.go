package repository_test

import (
	"context"
	"testing"

	"conference-ticketing/internal/model"
	"conference-ticketing/internal/repository"
	apperrors "conference-ticketing/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConferenceRepository(t *testing.T) {
	ctx := context.Background()
	cols := []string{"id", "name", "created_at", "updated_at"}

	t.Run("Create", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repository.NewConferenceRepository(mock)

		mock.ExpectQuery("INSERT INTO conferences").
			WithArgs("GopherCon").
			WillReturnRows(pgxmock.NewRows(cols).AddRow(1, "GopherCon", fixedTime, fixedTime))

		conf, err := repo.Create(ctx, &model.Conference{Name: "GopherCon"})

		require.NoError(t, err)
		assert.Equal(t, 1, conf.ID)
	})

	t.Run("List", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repository.NewConferenceRepository(mock)

		mock.ExpectQuery("FROM conferences").
			WillReturnRows(pgxmock.NewRows(cols).
				AddRow(2, "RubyConf", fixedTime, fixedTime).
				AddRow(1, "GopherCon", fixedTime, fixedTime))

		conferences, err := repo.List(ctx)

		require.NoError(t, err)
		assert.Len(t, conferences, 2)
	})

	t.Run("FindByID - NotFound", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repository.NewConferenceRepository(mock)

		mock.ExpectQuery("FROM conferences").
			WithArgs(99999).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.FindByID(ctx, 99999)

		assert.Equal(t, apperrors.ErrConferenceNotFound, err)
	})
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	cols := []string{"id", "name", "email", "created_at", "updated_at"}

	t.Run("Create", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repository.NewUserRepository(mock)

		mock.ExpectQuery("INSERT INTO users").
			WithArgs("Ada", "ada@example.com").
			WillReturnRows(pgxmock.NewRows(cols).AddRow(2, "Ada", "ada@example.com", fixedTime, fixedTime))

		user, err := repo.Create(ctx, &model.User{Name: "Ada", Email: "ada@example.com"})

		require.NoError(t, err)
		assert.Equal(t, 2, user.ID)
	})

	t.Run("FindByID - NotFound", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repository.NewUserRepository(mock)

		mock.ExpectQuery("FROM users").
			WithArgs(99999).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.FindByID(ctx, 99999)

		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}
