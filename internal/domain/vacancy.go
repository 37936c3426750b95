package domain

import "context"

// Vacancy is a single offerable job listing presented for a swipe decision.
type Vacancy struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Company  string   `json:"company"`
	Salary   int      `json:"salary"`
	Location string   `json:"location"`
	Skills   []string `json:"skills"`
	ApplyURL string   `json:"apply_url"`
}

// VacancyCatalog produces the next vacancy to show a user. The current
// implementation is a fixed listing; a real matching source plugs in here.
type VacancyCatalog interface {
	Next(ctx context.Context, profile *Profile) (*Vacancy, error)
}
