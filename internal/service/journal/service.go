package journal

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/nutritrack-backend/internal/domain"
)

type store interface {
	ListDay(ctx context.Context, day string) ([]domain.LoggedEntry, error)
	Append(ctx context.Context, entry domain.LoggedEntry) error
	Delete(ctx context.Context, day string, id uuid.UUID) error
	ClearDay(ctx context.Context, day string) (int, error)
}

// Service implements the per-day food journal.
type Service struct {
	log   *slog.Logger
	store store
	loc   *time.Location
	now   func() time.Time
	locks *dayLocks
}

// NewService creates a new Journal service. Day keys are calendar dates in loc.
func NewService(logger *slog.Logger, store store, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		log:   logger.With("service", "journal"),
		store: store,
		loc:   loc,
		now:   time.Now,
		locks: newDayLocks(),
	}
}

// Today returns the day key of the current date.
func (s *Service) Today() string {
	return domain.DayKey(s.now(), s.loc)
}
