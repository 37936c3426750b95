// Package flow contains the pure per-step input validators of the profile
// collection state machine. No side effects, no I/O.
package flow

import (
	"strconv"
	"strings"

	"go-jobswipe-backend/internal/domain"
)

// Skills splits raw text on commas, trims, lowercases and drops empties.
// Duplicates collapse; first-seen order is kept. At least two distinct
// skills are required.
func Skills(raw string) ([]string, error) {
	seen := make(map[string]struct{})
	var skills []string
	for _, part := range strings.Split(raw, ",") {
		skill := strings.ToLower(strings.TrimSpace(part))
		if skill == "" {
			continue
		}
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		skills = append(skills, skill)
	}

	if len(skills) < 2 {
		return nil, &domain.ValidationError{Reason: domain.RejectTooFewSkills}
	}
	return skills, nil
}

// Experience maps a discrete choice token to the experience enum. Unknown
// tokens are rejected, not silently defaulted.
func Experience(token string) (domain.ExperienceLevel, error) {
	switch domain.ExperienceLevel(token) {
	case domain.ExperienceJunior, domain.ExperienceMiddle, domain.ExperienceSenior:
		return domain.ExperienceLevel(token), nil
	}
	return "", &domain.ValidationError{Reason: domain.RejectUnknownChoice}
}

// Salary strips whitespace and a currency symbol, parses the remainder as an
// integer and checks it against the configured floor.
func Salary(raw string, floor int) (int, error) {
	cleaned := strings.NewReplacer(" ", "", " ", "", "₽", "", "$", "").Replace(strings.TrimSpace(raw))

	salary, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, &domain.ValidationError{Reason: domain.RejectNotANumber}
	}
	if salary < floor {
		return 0, &domain.ValidationError{Reason: domain.RejectBelowMinimum, Floor: floor}
	}
	return salary, nil
}

// Format maps a discrete choice token to the work-format enum. Unknown
// tokens are rejected, not silently defaulted.
func Format(token string) (domain.WorkFormat, error) {
	switch domain.WorkFormat(token) {
	case domain.FormatOffice, domain.FormatRemote, domain.FormatHybrid:
		return domain.WorkFormat(token), nil
	}
	return "", &domain.ValidationError{Reason: domain.RejectUnknownChoice}
}
