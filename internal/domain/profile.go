package domain

import (
	"context"
	"time"
)

type ExperienceLevel string

const (
	ExperienceJunior ExperienceLevel = "junior"
	ExperienceMiddle ExperienceLevel = "middle"
	ExperienceSenior ExperienceLevel = "senior"
)

type WorkFormat string

const (
	FormatOffice WorkFormat = "office"
	FormatRemote WorkFormat = "remote"
	FormatHybrid WorkFormat = "hybrid"
)

// Profile is the durable job-search profile, one row per telegram user.
type Profile struct {
	TelegramID int64           `json:"telegram_id" validate:"required"`
	Skills     []string        `json:"skills" validate:"required,min=2,dive,valid_skill"`
	Experience ExperienceLevel `json:"experience" validate:"required,oneof=junior middle senior"`
	Salary     int             `json:"salary" validate:"required,gt=0"`
	Format     WorkFormat      `json:"work_format" validate:"required,oneof=office remote hybrid"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// UserRepository is the profile store. Upsert replaces all fields atomically;
// GetByTelegramID returns (nil, nil) when no profile exists.
type UserRepository interface {
	Upsert(ctx context.Context, profile *Profile) error
	GetByTelegramID(ctx context.Context, telegramID int64) (*Profile, error)
}
