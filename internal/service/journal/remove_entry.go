package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Remove deletes one entry of day. The remaining entries keep their order.
// Returns domain.ErrNotFound if day has no such entry.
func (s *Service) Remove(ctx context.Context, day string, id uuid.UUID) error {
	if err := validateDay(day); err != nil {
		return err
	}

	unlock := s.locks.lock(day)
	defer unlock()

	if err := s.store.Delete(ctx, day, id); err != nil {
		return fmt.Errorf("remove journal entry %s: %w", id, err)
	}

	s.log.InfoContext(ctx, "journal entry removed",
		slog.String("day", day),
		slog.String("entry_id", id.String()),
	)
	return nil
}

// Clear deletes every entry of day and returns how many were removed.
func (s *Service) Clear(ctx context.Context, day string) (int, error) {
	if err := validateDay(day); err != nil {
		return 0, err
	}

	unlock := s.locks.lock(day)
	defer unlock()

	n, err := s.store.ClearDay(ctx, day)
	if err != nil {
		return 0, fmt.Errorf("clear journal %s: %w", day, err)
	}

	s.log.InfoContext(ctx, "journal day cleared",
		slog.String("day", day),
		slog.Int("removed", n),
	)
	return n, nil
}
