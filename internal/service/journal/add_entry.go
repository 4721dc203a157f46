package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/nutritrack-backend/internal/domain"
	"github.com/heartmarshall/nutritrack-backend/internal/nutrition"
)

// Add logs a consumed quantity of a food. Nutrients are scaled from the
// food's serving size; the entry gets a new id and the current time.
func (s *Service) Add(ctx context.Context, input AddEntryInput) (*domain.LoggedEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	food := input.Food
	if food.ServingSize == 0 {
		food.ServingSize = domain.DefaultServingSize
	}
	if food.ServingSizeUnit == "" {
		food.ServingSizeUnit = domain.DefaultServingSizeUnit
	}

	scaled, err := nutrition.Scale(food.Nutrients, input.Quantity, food.ServingSize)
	if err != nil {
		return nil, err
	}

	now := s.now()
	day := input.Day
	if day == "" {
		day = domain.DayKey(now, s.loc)
	}

	entry := domain.LoggedEntry{
		ID:         uuid.New(),
		Day:        day,
		Food:       food,
		Quantity:   input.Quantity,
		ConsumedAt: now.UTC(),
		Nutrients:  scaled,
	}

	unlock := s.locks.lock(day)
	defer unlock()

	if err := s.store.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("add journal entry: %w", err)
	}

	s.log.InfoContext(ctx, "journal entry added",
		slog.String("day", day),
		slog.String("entry_id", entry.ID.String()),
		slog.String("food_id", food.ID),
		slog.Float64("quantity", input.Quantity),
	)

	return &entry, nil
}
