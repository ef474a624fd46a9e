package repository

import (
	"context"
	"errors"

	"conference-ticketing/internal/database"
	"conference-ticketing/internal/model"
	apperrors "conference-ticketing/pkg/app_errors"

	"github.com/jackc/pgx/v5"
)

type ConferenceRepository interface {
	Create(ctx context.Context, conference *model.Conference) (*model.Conference, error)
	List(ctx context.Context) ([]*model.Conference, error)
	FindByID(ctx context.Context, id int) (*model.Conference, error)
}

type ConferenceRepositoryImpl struct {
	db database.DB
}

func NewConferenceRepository(db database.DB) ConferenceRepository {
	return &ConferenceRepositoryImpl{
		db: db,
	}
}

func (r *ConferenceRepositoryImpl) Create(ctx context.Context, conference *model.Conference) (*model.Conference, error) {
	query := `
		INSERT INTO conferences (name)
		VALUES ($1)
		RETURNING id, name, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, conference.Name).Scan(
		&conference.ID,
		&conference.Name,
		&conference.CreatedAt,
		&conference.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return conference, nil
}

func (r *ConferenceRepositoryImpl) List(ctx context.Context) ([]*model.Conference, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM conferences
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	conferences := make([]*model.Conference, 0)
	for rows.Next() {
		var conference model.Conference
		err := rows.Scan(
			&conference.ID,
			&conference.Name,
			&conference.CreatedAt,
			&conference.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		conferences = append(conferences, &conference)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return conferences, nil
}

func (r *ConferenceRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Conference, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM conferences
		WHERE id = $1
	`

	var conference model.Conference
	err := r.db.QueryRow(ctx, query, id).Scan(
		&conference.ID,
		&conference.Name,
		&conference.CreatedAt,
		&conference.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrConferenceNotFound
		}
		return nil, err
	}

	return &conference, nil
}
