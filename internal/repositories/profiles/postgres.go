package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nightowlapp/nightowl/internal/common"
	"github.com/nightowlapp/nightowl/internal/dbx"
	"github.com/nightowlapp/nightowl/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const profileColumns = `id, email, full_name, nickname, bio, age, location, profile_image_url, created_at, updated_at`

func scanProfile(row *sql.Row) (*models.Profile, error) {
	p := &models.Profile{}
	err := row.Scan(&p.ID, &p.Email, &p.FullName, &p.Nickname,
		&p.Bio, &p.Age, &p.Location, &p.ProfileImageURL,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	return scanProfile(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE lower(email) = lower($1)`
	return scanProfile(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) List(ctx context.Context, limit int) ([]models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at ASC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Profile
	for rows.Next() {
		var p models.Profile
		err := rows.Scan(&p.ID, &p.Email, &p.FullName, &p.Nickname,
			&p.Bio, &p.Age, &p.Location, &p.ProfileImageURL,
			&p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	query :=
		`INSERT INTO profiles (id, email, full_name, nickname, bio, age, location, profile_image_url, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (id) DO UPDATE SET
		   email = EXCLUDED.email,
		   full_name = EXCLUDED.full_name,
		   nickname = EXCLUDED.nickname,
		   bio = EXCLUDED.bio,
		   age = EXCLUDED.age,
		   location = EXCLUDED.location,
		   profile_image_url = EXCLUDED.profile_image_url,
		   updated_at = EXCLUDED.updated_at
		 `

	_, err := r.db.ExecContext(ctx, query,
		profile.ID, profile.Email, profile.FullName, profile.Nickname,
		profile.Bio, profile.Age, profile.Location, profile.ProfileImageURL,
		profile.CreatedAt, profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
