package usecase

import (
	"context"
)

// Pinger is the slice of a connection pool the health check needs.
// *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthUsecase interface {
	// Check reports per-dependency status and whether everything is up.
	Check(ctx context.Context) (map[string]string, bool)
}

type healthUsecase struct {
	db      Pinger
	session func(ctx context.Context) error // nil when sessions are in-memory
}

func NewHealthUsecase(db Pinger, session func(ctx context.Context) error) HealthUsecase {
	return &healthUsecase{db: db, session: session}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	status := map[string]string{"database": "ok"}
	healthy := true

	if err := u.db.Ping(ctx); err != nil {
		status["database"] = err.Error()
		healthy = false
	}
	if u.session != nil {
		status["sessions"] = "ok"
		if err := u.session(ctx); err != nil {
			status["sessions"] = err.Error()
			healthy = false
		}
	}
	return status, healthy
}
