package food

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/nutritrack-backend/internal/domain"
	"github.com/heartmarshall/nutritrack-backend/internal/provider"
)

// Search finds foods matching the query in the selected source (FoodData
// Central by default). An empty query returns an empty result.
func (s *Service) Search(ctx context.Context, input SearchInput) ([]domain.FoodSummary, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	query := domain.NormalizeQuery(input.Query)
	if query == "" {
		return []domain.FoodSummary{}, nil
	}

	source := input.Source
	search := s.usda.Search
	if source == SourceOpenFoodFacts {
		search = s.registry.Search
	} else {
		source = SourceUSDA
	}

	foods, err := provider.Retry(ctx, s.retrier, source+".search", func(ctx context.Context) ([]domain.FoodSummary, error) {
		return search(ctx, query)
	})
	if err != nil {
		return nil, fmt.Errorf("search foods: %w", err)
	}

	s.log.DebugContext(ctx, "foods searched",
		slog.String("source", source),
		slog.String("query", query),
		slog.Int("results", len(foods)),
	)

	return foods, nil
}
