package postgres

import (
	"context"
	"time"

	"go-jobswipe-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type responseRepository struct {
	db *pgxpool.Pool
}

// NewResponseRepository creates the append-only swipe audit log
func NewResponseRepository(db *pgxpool.Pool) domain.ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) Append(ctx context.Context, response *domain.VacancyResponse) error {
	query := `
		INSERT INTO responses (id, user_id, vacancy_id, action, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	if response.CreatedAt.IsZero() {
		response.CreatedAt = time.Now()
	}

	_, err := r.db.Exec(ctx, query,
		response.ID,
		response.UserID,
		response.VacancyID,
		response.Action,
		response.CreatedAt,
	)
	return err
}

func (r *responseRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.VacancyResponse, error) {
	query := `
		SELECT id, user_id, vacancy_id, action, created_at
		FROM responses WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var responses []domain.VacancyResponse
	for rows.Next() {
		var resp domain.VacancyResponse
		if err := rows.Scan(&resp.ID, &resp.UserID, &resp.VacancyID, &resp.Action, &resp.CreatedAt); err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, rows.Err()
}
