package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/nutritrack-backend/internal/domain"
	"github.com/heartmarshall/nutritrack-backend/internal/service/journal"
	"sync"
)

var _ journalService = &journalServiceMock{}

type journalServiceMock struct {
	SummaryFunc func(ctx context.Context, day string) (*domain.DailyLog, error)

	AddFunc func(ctx context.Context, input journal.AddEntryInput) (*domain.LoggedEntry, error)

	RemoveFunc func(ctx context.Context, day string, id uuid.UUID) error

	ClearFunc func(ctx context.Context, day string) (int, error)

	TodayFunc func() string

	calls struct {
		Summary []struct {
			Ctx context.Context
			Day string
		}
		Add []struct {
			Ctx   context.Context
			Input journal.AddEntryInput
		}
		Remove []struct {
			Ctx context.Context
			Day string
			ID  uuid.UUID
		}
		Clear []struct {
			Ctx context.Context
			Day string
		}
		Today []struct {
		}
	}
	lockSummary sync.RWMutex
	lockAdd     sync.RWMutex
	lockRemove  sync.RWMutex
	lockClear   sync.RWMutex
	lockToday   sync.RWMutex
}

func (mock *journalServiceMock) Summary(ctx context.Context, day string) (*domain.DailyLog, error) {
	if mock.SummaryFunc == nil {
		panic("journalServiceMock.SummaryFunc: method is nil but journalService.Summary was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Day string
	}{Ctx: ctx, Day: day}
	mock.lockSummary.Lock()
	mock.calls.Summary = append(mock.calls.Summary, callInfo)
	mock.lockSummary.Unlock()
	return mock.SummaryFunc(ctx, day)
}

func (mock *journalServiceMock) SummaryCalls() []struct {
	Ctx context.Context
	Day string
} {
	mock.lockSummary.RLock()
	calls := mock.calls.Summary
	mock.lockSummary.RUnlock()
	return calls
}

func (mock *journalServiceMock) Add(ctx context.Context, input journal.AddEntryInput) (*domain.LoggedEntry, error) {
	if mock.AddFunc == nil {
		panic("journalServiceMock.AddFunc: method is nil but journalService.Add was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input journal.AddEntryInput
	}{Ctx: ctx, Input: input}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, input)
}

func (mock *journalServiceMock) AddCalls() []struct {
	Ctx   context.Context
	Input journal.AddEntryInput
} {
	mock.lockAdd.RLock()
	calls := mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

func (mock *journalServiceMock) Remove(ctx context.Context, day string, id uuid.UUID) error {
	if mock.RemoveFunc == nil {
		panic("journalServiceMock.RemoveFunc: method is nil but journalService.Remove was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Day string
		ID  uuid.UUID
	}{Ctx: ctx, Day: day, ID: id}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, day, id)
}

func (mock *journalServiceMock) RemoveCalls() []struct {
	Ctx context.Context
	Day string
	ID  uuid.UUID
} {
	mock.lockRemove.RLock()
	calls := mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}

func (mock *journalServiceMock) Clear(ctx context.Context, day string) (int, error) {
	if mock.ClearFunc == nil {
		panic("journalServiceMock.ClearFunc: method is nil but journalService.Clear was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Day string
	}{Ctx: ctx, Day: day}
	mock.lockClear.Lock()
	mock.calls.Clear = append(mock.calls.Clear, callInfo)
	mock.lockClear.Unlock()
	return mock.ClearFunc(ctx, day)
}

func (mock *journalServiceMock) ClearCalls() []struct {
	Ctx context.Context
	Day string
} {
	mock.lockClear.RLock()
	calls := mock.calls.Clear
	mock.lockClear.RUnlock()
	return calls
}

func (mock *journalServiceMock) Today() string {
	if mock.TodayFunc == nil {
		panic("journalServiceMock.TodayFunc: method is nil but journalService.Today was just called")
	}
	callInfo := struct {
	}{}
	mock.lockToday.Lock()
	mock.calls.Today = append(mock.calls.Today, callInfo)
	mock.lockToday.Unlock()
	return mock.TodayFunc()
}

func (mock *journalServiceMock) TodayCalls() []struct {
} {
	mock.lockToday.RLock()
	calls := mock.calls.Today
	mock.lockToday.RUnlock()
	return calls
}
