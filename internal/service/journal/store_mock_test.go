package journal

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/nutritrack-backend/internal/domain"
	"sync"
)

var _ store = &storeMock{}

type storeMock struct {
	ListDayFunc func(ctx context.Context, day string) ([]domain.LoggedEntry, error)

	AppendFunc func(ctx context.Context, entry domain.LoggedEntry) error

	DeleteFunc func(ctx context.Context, day string, id uuid.UUID) error

	ClearDayFunc func(ctx context.Context, day string) (int, error)

	calls struct {
		ListDay []struct {
			Ctx context.Context
			Day string
		}
		Append []struct {
			Ctx   context.Context
			Entry domain.LoggedEntry
		}
		Delete []struct {
			Ctx context.Context
			Day string
			ID  uuid.UUID
		}
		ClearDay []struct {
			Ctx context.Context
			Day string
		}
	}
	lockListDay  sync.RWMutex
	lockAppend   sync.RWMutex
	lockDelete   sync.RWMutex
	lockClearDay sync.RWMutex
}

func (mock *storeMock) ListDay(ctx context.Context, day string) ([]domain.LoggedEntry, error) {
	if mock.ListDayFunc == nil {
		panic("storeMock.ListDayFunc: method is nil but store.ListDay was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Day string
	}{Ctx: ctx, Day: day}
	mock.lockListDay.Lock()
	mock.calls.ListDay = append(mock.calls.ListDay, callInfo)
	mock.lockListDay.Unlock()
	return mock.ListDayFunc(ctx, day)
}

func (mock *storeMock) ListDayCalls() []struct {
	Ctx context.Context
	Day string
} {
	mock.lockListDay.RLock()
	calls := mock.calls.ListDay
	mock.lockListDay.RUnlock()
	return calls
}

func (mock *storeMock) Append(ctx context.Context, entry domain.LoggedEntry) error {
	if mock.AppendFunc == nil {
		panic("storeMock.AppendFunc: method is nil but store.Append was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry domain.LoggedEntry
	}{Ctx: ctx, Entry: entry}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, entry)
}

func (mock *storeMock) AppendCalls() []struct {
	Ctx   context.Context
	Entry domain.LoggedEntry
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *storeMock) Delete(ctx context.Context, day string, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("storeMock.DeleteFunc: method is nil but store.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Day string
		ID  uuid.UUID
	}{Ctx: ctx, Day: day, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, day, id)
}

func (mock *storeMock) DeleteCalls() []struct {
	Ctx context.Context
	Day string
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *storeMock) ClearDay(ctx context.Context, day string) (int, error) {
	if mock.ClearDayFunc == nil {
		panic("storeMock.ClearDayFunc: method is nil but store.ClearDay was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Day string
	}{Ctx: ctx, Day: day}
	mock.lockClearDay.Lock()
	mock.calls.ClearDay = append(mock.calls.ClearDay, callInfo)
	mock.lockClearDay.Unlock()
	return mock.ClearDayFunc(ctx, day)
}

func (mock *storeMock) ClearDayCalls() []struct {
	Ctx context.Context
	Day string
} {
	mock.lockClearDay.RLock()
	calls := mock.calls.ClearDay
	mock.lockClearDay.RUnlock()
	return calls
}
