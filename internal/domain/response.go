package domain

import (
	"context"
	"time"
)

type Decision string

const (
	DecisionAccepted Decision = "accepted"
	DecisionRejected Decision = "rejected"
)

// VacancyResponse is an append-only audit record of a swipe decision.
type VacancyResponse struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	VacancyID string    `json:"vacancy_id"`
	Action    Decision  `json:"action"`
	CreatedAt time.Time `json:"created_at"`
}

// ResponseRepository appends decision records. No uniqueness constraint: a
// user may decide on the same vacancy more than once.
type ResponseRepository interface {
	Append(ctx context.Context, response *VacancyResponse) error
	GetByUserID(ctx context.Context, userID int64) ([]VacancyResponse, error)
}
