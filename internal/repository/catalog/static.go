// Package catalog holds vacancy sources. The static catalog serves one fixed
// listing; a matching engine replaces it behind the same interface.
package catalog

import (
	"context"

	"go-jobswipe-backend/internal/domain"
)

type staticCatalog struct {
	vacancy domain.Vacancy
}

func NewStaticCatalog() domain.VacancyCatalog {
	return &staticCatalog{
		vacancy: domain.Vacancy{
			ID:       "vac-001",
			Title:    "Go Backend Developer",
			Company:  "TechCorp",
			Salary:   180000,
			Location: "Moscow",
			Skills:   []string{"go", "postgresql", "docker"},
			ApplyURL: "https://techcorp.example.com/careers/go-backend",
		},
	}
}

func (c *staticCatalog) Next(_ context.Context, _ *domain.Profile) (*domain.Vacancy, error) {
	v := c.vacancy
	return &v, nil
}
