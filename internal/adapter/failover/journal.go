// Package failover combines a primary and a secondary journal store.
// Every operation goes to the primary first; infrastructure failures fall
// back to the secondary. Successful primary writes are mirrored to the
// secondary, and reads merge in entries that only the secondary holds, so
// entries accepted during a primary outage stay visible after it recovers.
package failover

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/nutritrack-backend/internal/domain"
)

// Store is a journal store that can stand in for another one.
type Store interface {
	ListDay(ctx context.Context, day string) ([]domain.LoggedEntry, error)
	Append(ctx context.Context, entry domain.LoggedEntry) error
	Delete(ctx context.Context, day string, id uuid.UUID) error
	ClearDay(ctx context.Context, day string) (int, error)
	Ping(ctx context.Context) error
}

// Journal routes journal operations to a primary store with a secondary
// store behind it.
type Journal struct {
	primary   Store
	secondary Store
	log       *slog.Logger
}

// NewJournal creates a failover journal.
func NewJournal(primary, secondary Store, logger *slog.Logger) *Journal {
	return &Journal{
		primary:   primary,
		secondary: secondary,
		log:       logger.With("adapter", "failover_journal"),
	}
}

// ListDay reads from the primary store and adds the entries only the
// secondary holds, ordered by consumption time. When the primary is
// unavailable the secondary answers alone.
func (j *Journal) ListDay(ctx context.Context, day string) ([]domain.LoggedEntry, error) {
	entries, err := j.primary.ListDay(ctx, day)
	if err != nil && !shouldFallBack(err) {
		return nil, err
	}
	if err != nil {
		j.fellBack(ctx, "list", day, err)

		entries, secErr := j.secondary.ListDay(ctx, day)
		if secErr != nil {
			return nil, bothFailed("list", err, secErr)
		}
		return entries, nil
	}

	extra, secErr := j.secondary.ListDay(ctx, day)
	if secErr != nil {
		j.secondaryFailed(ctx, "list", day, secErr)
		return entries, nil
	}
	return merge(entries, extra), nil
}

// Append writes to the primary store and mirrors the entry to the secondary
// one. When the primary is unavailable the secondary alone takes the entry.
func (j *Journal) Append(ctx context.Context, entry domain.LoggedEntry) error {
	err := j.primary.Append(ctx, entry)
	if err == nil {
		if secErr := j.secondary.Append(ctx, entry); secErr != nil {
			j.secondaryFailed(ctx, "append", entry.Day, secErr)
		}
		return nil
	}
	if !shouldFallBack(err) {
		return err
	}

	j.fellBack(ctx, "append", entry.Day, err)

	if secErr := j.secondary.Append(ctx, entry); secErr != nil {
		return bothFailed("append", err, secErr)
	}
	return nil
}

// Delete removes an entry from both stores. An entry the primary does not
// know may have been written to the secondary store during an outage.
func (j *Journal) Delete(ctx context.Context, day string, id uuid.UUID) error {
	err := j.primary.Delete(ctx, day, id)
	if err == nil {
		// The mirrored copy must go too, or the next ListDay would merge it back.
		if secErr := j.secondary.Delete(ctx, day, id); secErr != nil && !errors.Is(secErr, domain.ErrNotFound) {
			j.secondaryFailed(ctx, "delete", day, secErr)
		}
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) && !shouldFallBack(err) {
		return err
	}
	if !errors.Is(err, domain.ErrNotFound) {
		j.fellBack(ctx, "delete", day, err)
	}

	secErr := j.secondary.Delete(ctx, day, id)
	if secErr == nil {
		return nil
	}

	if errors.Is(err, domain.ErrNotFound) {
		if !errors.Is(secErr, domain.ErrNotFound) {
			j.secondaryFailed(ctx, "delete", day, secErr)
		}
		return err
	}

	// The primary is down, so the secondary's "not found" is not a definite answer.
	if errors.Is(secErr, domain.ErrNotFound) {
		return fmt.Errorf("journal delete: %w", err)
	}
	return bothFailed("delete", err, secErr)
}

// ClearDay clears the day in both stores. It fails only when neither store
// could be cleared.
func (j *Journal) ClearDay(ctx context.Context, day string) (int, error) {
	n, err := j.primary.ClearDay(ctx, day)
	if err != nil && !shouldFallBack(err) {
		return 0, err
	}
	if err != nil {
		j.fellBack(ctx, "clear", day, err)
	}

	m, secErr := j.secondary.ClearDay(ctx, day)
	switch {
	case err != nil && secErr != nil:
		return 0, bothFailed("clear", err, secErr)
	case secErr != nil:
		j.secondaryFailed(ctx, "clear", day, secErr)
		return n, nil
	case err != nil:
		return m, nil
	}
	// Mirrored entries live in both stores; report the larger side.
	return max(n, m), nil
}

// Ping reports an error only when both stores are unreachable.
func (j *Journal) Ping(ctx context.Context) error {
	err := j.primary.Ping(ctx)
	if err == nil {
		return nil
	}
	if secErr := j.secondary.Ping(ctx); secErr != nil {
		return bothFailed("ping", err, secErr)
	}
	return nil
}

func (j *Journal) fellBack(ctx context.Context, op, day string, err error) {
	j.log.WarnContext(ctx, "primary journal store failed, using secondary",
		slog.String("op", op),
		slog.String("day", day),
		slog.String("error", err.Error()),
	)
}

func (j *Journal) secondaryFailed(ctx context.Context, op, day string, err error) {
	j.log.WarnContext(ctx, "secondary journal store failed",
		slog.String("op", op),
		slog.String("day", day),
		slog.String("error", err.Error()),
	)
}

// merge appends the secondary entries missing from primary and orders the
// result by consumption time. Entries with equal times keep primary order.
func merge(primary, secondary []domain.LoggedEntry) []domain.LoggedEntry {
	seen := make(map[uuid.UUID]struct{}, len(primary))
	for _, e := range primary {
		seen[e.ID] = struct{}{}
	}

	out := primary
	added := false
	for _, e := range secondary {
		if _, ok := seen[e.ID]; !ok {
			out = append(out, e)
			added = true
		}
	}
	if added {
		slices.SortStableFunc(out, func(a, b domain.LoggedEntry) int {
			return a.ConsumedAt.Compare(b.ConsumedAt)
		})
	}
	return out
}

// shouldFallBack reports whether err means the store itself is unusable,
// as opposed to a definite answer about the data or a cancelled caller.
func shouldFallBack(err error) bool {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, context.Canceled):
		return false
	}
	return true
}

func bothFailed(op string, primary, secondary error) error {
	return fmt.Errorf("journal %s: %w", op, errors.Join(
		fmt.Errorf("primary: %w", primary),
		fmt.Errorf("secondary: %w", secondary),
	))
}
