package food

import (
	"context"
	"github.com/heartmarshall/nutritrack-backend/internal/domain"
	"sync"
)

var _ usdaClient = &usdaClientMock{}

type usdaClientMock struct {
	SearchFunc func(ctx context.Context, term string) ([]domain.FoodSummary, error)

	SearchBarcodeFunc func(ctx context.Context, code string) (*domain.FoodSummary, error)

	FetchDetailFunc func(ctx context.Context, fdcID string) (*domain.FoodDetail, error)

	calls struct {
		Search []struct {
			Ctx  context.Context
			Term string
		}
		SearchBarcode []struct {
			Ctx  context.Context
			Code string
		}
		FetchDetail []struct {
			Ctx   context.Context
			FdcID string
		}
	}
	lockSearch        sync.RWMutex
	lockSearchBarcode sync.RWMutex
	lockFetchDetail   sync.RWMutex
}

func (mock *usdaClientMock) Search(ctx context.Context, term string) ([]domain.FoodSummary, error) {
	if mock.SearchFunc == nil {
		panic("usdaClientMock.SearchFunc: method is nil but usdaClient.Search was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Term string
	}{Ctx: ctx, Term: term}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, term)
}

func (mock *usdaClientMock) SearchCalls() []struct {
	Ctx  context.Context
	Term string
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

func (mock *usdaClientMock) SearchBarcode(ctx context.Context, code string) (*domain.FoodSummary, error) {
	if mock.SearchBarcodeFunc == nil {
		panic("usdaClientMock.SearchBarcodeFunc: method is nil but usdaClient.SearchBarcode was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Code string
	}{Ctx: ctx, Code: code}
	mock.lockSearchBarcode.Lock()
	mock.calls.SearchBarcode = append(mock.calls.SearchBarcode, callInfo)
	mock.lockSearchBarcode.Unlock()
	return mock.SearchBarcodeFunc(ctx, code)
}

func (mock *usdaClientMock) SearchBarcodeCalls() []struct {
	Ctx  context.Context
	Code string
} {
	mock.lockSearchBarcode.RLock()
	calls := mock.calls.SearchBarcode
	mock.lockSearchBarcode.RUnlock()
	return calls
}

func (mock *usdaClientMock) FetchDetail(ctx context.Context, fdcID string) (*domain.FoodDetail, error) {
	if mock.FetchDetailFunc == nil {
		panic("usdaClientMock.FetchDetailFunc: method is nil but usdaClient.FetchDetail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		FdcID string
	}{Ctx: ctx, FdcID: fdcID}
	mock.lockFetchDetail.Lock()
	mock.calls.FetchDetail = append(mock.calls.FetchDetail, callInfo)
	mock.lockFetchDetail.Unlock()
	return mock.FetchDetailFunc(ctx, fdcID)
}

func (mock *usdaClientMock) FetchDetailCalls() []struct {
	Ctx   context.Context
	FdcID string
} {
	mock.lockFetchDetail.RLock()
	calls := mock.calls.FetchDetail
	mock.lockFetchDetail.RUnlock()
	return calls
}
