package postgres

import (
	"context"
	"errors"

	"go-jobswipe-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type userRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates the durable profile store
func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepository{db: db}
}

// Upsert replaces the whole profile row atomically. Concurrent upserts for
// the same user race last-write-wins; different users never block each other.
func (r *userRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO users (telegram_id, skills, experience, salary, work_format, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (telegram_id) DO UPDATE SET
			skills = EXCLUDED.skills,
			experience = EXCLUDED.experience,
			salary = EXCLUDED.salary,
			work_format = EXCLUDED.work_format,
			updated_at = NOW()`

	_, err := r.db.Exec(ctx, query,
		profile.TelegramID,
		pq.Array(profile.Skills),
		profile.Experience,
		profile.Salary,
		profile.Format,
	)
	return err
}

func (r *userRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.Profile, error) {
	query := `
		SELECT telegram_id, skills, experience, salary, work_format, updated_at
		FROM users WHERE telegram_id = $1`

	var p domain.Profile
	var skills []string

	err := r.db.QueryRow(ctx, query, telegramID).Scan(
		&p.TelegramID, pq.Array(&skills), &p.Experience, &p.Salary, &p.Format, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	p.Skills = skills
	return &p, nil
}
