package journal

import (
	"context"
	"fmt"

	"github.com/heartmarshall/nutritrack-backend/internal/domain"
	"github.com/heartmarshall/nutritrack-backend/internal/nutrition"
)

// List returns the entries of day in the order they were added.
func (s *Service) List(ctx context.Context, day string) ([]domain.LoggedEntry, error) {
	if err := validateDay(day); err != nil {
		return nil, err
	}

	entries, err := s.store.ListDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("list journal %s: %w", day, err)
	}
	if entries == nil {
		entries = []domain.LoggedEntry{}
	}
	return entries, nil
}

// Summary returns the entries of day together with their nutrient totals.
func (s *Service) Summary(ctx context.Context, day string) (*domain.DailyLog, error) {
	entries, err := s.List(ctx, day)
	if err != nil {
		return nil, err
	}

	profiles := make([]domain.NutrientProfile, len(entries))
	for i, e := range entries {
		profiles[i] = e.Nutrients
	}

	return &domain.DailyLog{
		Day:     day,
		Entries: entries,
		Totals:  nutrition.Sum(profiles...),
	}, nil
}
