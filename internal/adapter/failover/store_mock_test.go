package failover

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/nutritrack-backend/internal/domain"
	"sync"
)

var _ Store = &storeMock{}

type storeMock struct {
	ListDayFunc func(ctx context.Context, day string) ([]domain.LoggedEntry, error)

	AppendFunc func(ctx context.Context, entry domain.LoggedEntry) error

	DeleteFunc func(ctx context.Context, day string, id uuid.UUID) error

	ClearDayFunc func(ctx context.Context, day string) (int, error)

	PingFunc func(ctx context.Context) error

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
		Ping []struct {
			Ctx context.Context
		}
	}
	lockListDay  sync.RWMutex
	lockAppend   sync.RWMutex
	lockDelete   sync.RWMutex
	lockClearDay sync.RWMutex
	lockPing     sync.RWMutex
}

func (mock *storeMock) ListDay(ctx context.Context, day string) ([]domain.LoggedEntry, error) {
	if mock.ListDayFunc == nil {
		panic("storeMock.ListDayFunc: method is nil but Store.ListDay was just called")
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
		panic("storeMock.AppendFunc: method is nil but Store.Append was just called")
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
		panic("storeMock.DeleteFunc: method is nil but Store.Delete was just called")
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
		panic("storeMock.ClearDayFunc: method is nil but Store.ClearDay was just called")
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

func (mock *storeMock) Ping(ctx context.Context) error {
	if mock.PingFunc == nil {
		panic("storeMock.PingFunc: method is nil but Store.Ping was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockPing.Lock()
	mock.calls.Ping = append(mock.calls.Ping, callInfo)
	mock.lockPing.Unlock()
	return mock.PingFunc(ctx)
}

func (mock *storeMock) PingCalls() []struct {
	Ctx context.Context
} {
	mock.lockPing.RLock()
	calls := mock.calls.Ping
	mock.lockPing.RUnlock()
	return calls
}
