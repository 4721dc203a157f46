package failover

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/nutritrack-backend/internal/domain"
)

var errDown = errors.New("connection refused")

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func entry(day string) domain.LoggedEntry {
	return domain.LoggedEntry{ID: uuid.New(), Day: day, Quantity: 100}
}

func TestJournal_Append_PrimaryOK(t *testing.T) {
	t.Parallel()

	primary := &storeMock{AppendFunc: func(ctx context.Context, e domain.LoggedEntry) error { return nil }}
	secondary := &storeMock{AppendFunc: func(ctx context.Context, e domain.LoggedEntry) error { return nil }}

	j := NewJournal(primary, secondary, newTestLogger())
	e := entry("2024-01-01")
	if err := j.Append(context.Background(), e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(primary.AppendCalls()) != 1 {
		t.Errorf("primary calls = %d, want 1", len(primary.AppendCalls()))
	}
	if calls := secondary.AppendCalls(); len(calls) != 1 || calls[0].Entry.ID != e.ID {
		t.Errorf("secondary calls = %+v, want the entry mirrored once", calls)
	}
}

func TestJournal_Append_MirrorFailureIgnored(t *testing.T) {
	t.Parallel()

	primary := &storeMock{AppendFunc: func(ctx context.Context, e domain.LoggedEntry) error { return nil }}
	secondary := &storeMock{AppendFunc: func(ctx context.Context, e domain.LoggedEntry) error { return errors.New("disk full") }}

	if err := NewJournal(primary, secondary, newTestLogger()).Append(context.Background(), entry("2024-01-01")); err != nil {
		t.Fatalf("primary accepted the entry, got error: %v", err)
	}
}

func TestJournal_Append_FallsBack(t *testing.T) {
	t.Parallel()

	primary := &storeMock{AppendFunc: func(ctx context.Context, e domain.LoggedEntry) error { return errDown }}
	secondary := &storeMock{AppendFunc: func(ctx context.Context, e domain.LoggedEntry) error { return nil }}

	j := NewJournal(primary, secondary, newTestLogger())
	e := entry("2024-01-01")
	if err := j.Append(context.Background(), e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := secondary.AppendCalls()
	if len(calls) != 1 || calls[0].Entry.ID != e.ID {
		t.Fatalf("secondary calls = %+v, want the same entry once", calls)
	}
}

func TestJournal_Append_BothFail(t *testing.T) {
	t.Parallel()

	secErr := errors.New("disk full")
	primary := &storeMock{AppendFunc: func(ctx context.Context, e domain.LoggedEntry) error { return errDown }}
	secondary := &storeMock{AppendFunc: func(ctx context.Context, e domain.LoggedEntry) error { return secErr }}

	err := NewJournal(primary, secondary, newTestLogger()).Append(context.Background(), entry("2024-01-01"))
	if err == nil {
		t.Fatal("expected error when both stores fail")
	}
	if !errors.Is(err, errDown) || !errors.Is(err, secErr) {
		t.Errorf("err = %v, want both causes", err)
	}
}

func TestJournal_Append_DefiniteErrorsDoNotFallBack(t *testing.T) {
	t.Parallel()

	for _, cause := range []error{domain.ErrConflict, domain.ErrValidation, context.Canceled} {
		t.Run(cause.Error(), func(t *testing.T) {
			t.Parallel()

			primary := &storeMock{AppendFunc: func(ctx context.Context, e domain.LoggedEntry) error {
				return fmt.Errorf("journal_entry x: %w", cause)
			}}
			secondary := &storeMock{}

			err := NewJournal(primary, secondary, newTestLogger()).Append(context.Background(), entry("2024-01-01"))
			if !errors.Is(err, cause) {
				t.Fatalf("err = %v, want %v", err, cause)
			}
			if len(secondary.AppendCalls()) != 0 {
				t.Error("secondary must not be called")
			}
		})
	}
}

func TestJournal_ListDay(t *testing.T) {
	t.Parallel()

	want := []domain.LoggedEntry{entry("2024-01-01")}

	t.Run("primary", func(t *testing.T) {
		t.Parallel()
		primary := &storeMock{ListDayFunc: func(ctx context.Context, day string) ([]domain.LoggedEntry, error) { return want, nil }}
		secondary := &storeMock{ListDayFunc: func(ctx context.Context, day string) ([]domain.LoggedEntry, error) { return want, nil }}
		got, err := NewJournal(primary, secondary, newTestLogger()).ListDay(context.Background(), "2024-01-01")
		if err != nil || len(got) != 1 {
			t.Fatalf("got %v, %v", got, err)
		}
	})

	t.Run("secondary down while primary answers", func(t *testing.T) {
		t.Parallel()
		primary := &storeMock{ListDayFunc: func(ctx context.Context, day string) ([]domain.LoggedEntry, error) { return want, nil }}
		secondary := &storeMock{ListDayFunc: func(ctx context.Context, day string) ([]domain.LoggedEntry, error) { return nil, errDown }}
		got, err := NewJournal(primary, secondary, newTestLogger()).ListDay(context.Background(), "2024-01-01")
		if err != nil || len(got) != 1 || got[0].ID != want[0].ID {
			t.Fatalf("got %v, %v", got, err)
		}
	})

	t.Run("merges secondary-only entries by time", func(t *testing.T) {
		t.Parallel()
		base := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
		a, b, c := entry("2024-01-01"), entry("2024-01-01"), entry("2024-01-01")
		a.ConsumedAt, b.ConsumedAt, c.ConsumedAt = base, base.Add(time.Hour), base.Add(2*time.Hour)

		primary := &storeMock{ListDayFunc: func(ctx context.Context, day string) ([]domain.LoggedEntry, error) {
			return []domain.LoggedEntry{a, c}, nil
		}}
		secondary := &storeMock{ListDayFunc: func(ctx context.Context, day string) ([]domain.LoggedEntry, error) {
			return []domain.LoggedEntry{a, b}, nil
		}}
		got, err := NewJournal(primary, secondary, newTestLogger()).ListDay(context.Background(), "2024-01-01")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ids := []uuid.UUID{}
		for _, e := range got {
			ids = append(ids, e.ID)
		}
		if !slices.Equal(ids, []uuid.UUID{a.ID, b.ID, c.ID}) {
			t.Fatalf("ids = %v, want a, b, c", ids)
		}
	})

	t.Run("fallback", func(t *testing.T) {
		t.Parallel()
		primary := &storeMock{ListDayFunc: func(ctx context.Context, day string) ([]domain.LoggedEntry, error) { return nil, errDown }}
		secondary := &storeMock{ListDayFunc: func(ctx context.Context, day string) ([]domain.LoggedEntry, error) { return want, nil }}
		got, err := NewJournal(primary, secondary, newTestLogger()).ListDay(context.Background(), "2024-01-01")
		if err != nil || len(got) != 1 || got[0].ID != want[0].ID {
			t.Fatalf("got %v, %v", got, err)
		}
	})

	t.Run("both fail", func(t *testing.T) {
		t.Parallel()
		fail := func(ctx context.Context, day string) ([]domain.LoggedEntry, error) { return nil, errDown }
		_, err := NewJournal(&storeMock{ListDayFunc: fail}, &storeMock{ListDayFunc: fail}, newTestLogger()).
			ListDay(context.Background(), "2024-01-01")
		if !errors.Is(err, errDown) {
			t.Fatalf("err = %v, want errDown", err)
		}
	})
}

func TestJournal_Delete(t *testing.T) {
	t.Parallel()

	notFound := fmt.Errorf("journal_entry x: %w", domain.ErrNotFound)

	tests := []struct {
		name         string
		primaryErr   error
		secondaryErr error
		wantErr      error
		wantNotFound bool
		wantSecCalls int
	}{
		{name: "primary deletes, mirror removed", primaryErr: nil, wantSecCalls: 1},
		{name: "primary deletes, mirror missing", primaryErr: nil, secondaryErr: notFound, wantSecCalls: 1},
		{name: "primary deletes, secondary down", primaryErr: nil, secondaryErr: errDown, wantSecCalls: 1},
		{name: "found only in secondary", primaryErr: notFound, secondaryErr: nil, wantSecCalls: 1},
		{name: "found nowhere", primaryErr: notFound, secondaryErr: notFound, wantNotFound: true, wantSecCalls: 1},
		{name: "primary down, secondary deletes", primaryErr: errDown, secondaryErr: nil, wantSecCalls: 1},
		{name: "primary down, secondary not found", primaryErr: errDown, secondaryErr: notFound, wantErr: errDown, wantSecCalls: 1},
		{name: "primary not found, secondary down", primaryErr: notFound, secondaryErr: errDown, wantNotFound: true, wantSecCalls: 1},
		{name: "primary conflict", primaryErr: domain.ErrConflict, wantErr: domain.ErrConflict, wantSecCalls: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			primary := &storeMock{DeleteFunc: func(ctx context.Context, day string, id uuid.UUID) error { return tt.primaryErr }}
			secondary := &storeMock{DeleteFunc: func(ctx context.Context, day string, id uuid.UUID) error { return tt.secondaryErr }}

			err := NewJournal(primary, secondary, newTestLogger()).Delete(context.Background(), "2024-01-01", uuid.New())

			switch {
			case tt.wantNotFound:
				if !errors.Is(err, domain.ErrNotFound) {
					t.Errorf("err = %v, want ErrNotFound", err)
				}
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("err = %v, want %v", err, tt.wantErr)
				}
				if errors.Is(err, domain.ErrNotFound) {
					t.Errorf("err = %v, must not be ErrNotFound", err)
				}
			default:
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
			if got := len(secondary.DeleteCalls()); got != tt.wantSecCalls {
				t.Errorf("secondary calls = %d, want %d", got, tt.wantSecCalls)
			}
		})
	}
}

func TestJournal_ClearDay(t *testing.T) {
	t.Parallel()

	clearFn := func(n int, err error) func(ctx context.Context, day string) (int, error) {
		return func(ctx context.Context, day string) (int, error) { return n, err }
	}

	tests := []struct {
		name      string
		primary   func(ctx context.Context, day string) (int, error)
		secondary func(ctx context.Context, day string) (int, error)
		want      int
		wantErr   bool
	}{
		{"both cleared", clearFn(2, nil), clearFn(3, nil), 3, false},
		{"primary down", clearFn(0, errDown), clearFn(1, nil), 1, false},
		{"secondary down", clearFn(2, nil), clearFn(0, errDown), 2, false},
		{"both down", clearFn(0, errDown), clearFn(0, errDown), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			j := NewJournal(&storeMock{ClearDayFunc: tt.primary}, &storeMock{ClearDayFunc: tt.secondary}, newTestLogger())
			n, err := j.ClearDay(context.Background(), "2024-01-01")
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if n != tt.want {
				t.Errorf("n = %d, want %d", n, tt.want)
			}
		})
	}
}

func TestJournal_Ping(t *testing.T) {
	t.Parallel()

	ok := func(ctx context.Context) error { return nil }
	down := func(ctx context.Context) error { return errDown }

	if err := NewJournal(&storeMock{PingFunc: down}, &storeMock{PingFunc: ok}, newTestLogger()).Ping(context.Background()); err != nil {
		t.Errorf("one store up: unexpected error: %v", err)
	}
	if err := NewJournal(&storeMock{PingFunc: down}, &storeMock{PingFunc: down}, newTestLogger()).Ping(context.Background()); err == nil {
		t.Error("both stores down: expected error")
	}
}

// memStore is an in-memory Store whose availability can be switched off.
type memStore struct {
	mu      sync.Mutex
	down    bool
	entries map[string][]domain.LoggedEntry
}

func newMemStore() *memStore {
	return &memStore{entries: make(map[string][]domain.LoggedEntry)}
}

func (s *memStore) setDown(down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.down = down
}

func (s *memStore) ListDay(ctx context.Context, day string) ([]domain.LoggedEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.down {
		return nil, errDown
	}
	return slices.Clone(s.entries[day]), nil
}

func (s *memStore) Append(ctx context.Context, e domain.LoggedEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.down {
		return errDown
	}
	for _, x := range s.entries[e.Day] {
		if x.ID == e.ID {
			return fmt.Errorf("journal_entry %s: %w", e.ID, domain.ErrConflict)
		}
	}
	s.entries[e.Day] = append(s.entries[e.Day], e)
	return nil
}

func (s *memStore) Delete(ctx context.Context, day string, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.down {
		return errDown
	}
	for i, x := range s.entries[day] {
		if x.ID == id {
			s.entries[day] = slices.Delete(s.entries[day], i, i+1)
			return nil
		}
	}
	return fmt.Errorf("journal_entry %s: %w", id, domain.ErrNotFound)
}

func (s *memStore) ClearDay(ctx context.Context, day string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.down {
		return 0, errDown
	}
	n := len(s.entries[day])
	delete(s.entries, day)
	return n, nil
}

func (s *memStore) Ping(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.down {
		return errDown
	}
	return nil
}

func TestJournal_EntriesSurvivePrimaryOutage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	const day = "2024-01-01"
	primary, secondary := newMemStore(), newMemStore()
	j := NewJournal(primary, secondary, newTestLogger())

	base := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	before, during := entry(day), entry(day)
	before.ConsumedAt, during.ConsumedAt = base, base.Add(time.Hour)

	ids := func(t *testing.T) []uuid.UUID {
		t.Helper()
		got, err := j.ListDay(ctx, day)
		if err != nil {
			t.Fatalf("ListDay: %v", err)
		}
		var out []uuid.UUID
		for _, e := range got {
			out = append(out, e.ID)
		}
		return out
	}

	if err := j.Append(ctx, before); err != nil {
		t.Fatalf("append before outage: %v", err)
	}

	primary.setDown(true)
	if err := j.Append(ctx, during); err != nil {
		t.Fatalf("append during outage: %v", err)
	}
	if got := ids(t); !slices.Equal(got, []uuid.UUID{before.ID, during.ID}) {
		t.Fatalf("during outage: ids = %v, want both entries", got)
	}

	primary.setDown(false)
	if got := ids(t); !slices.Equal(got, []uuid.UUID{before.ID, during.ID}) {
		t.Fatalf("after recovery: ids = %v, want both entries", got)
	}

	if err := j.Delete(ctx, day, before.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := ids(t); !slices.Equal(got, []uuid.UUID{during.ID}) {
		t.Fatalf("after delete: ids = %v, want only the outage entry", got)
	}
}
