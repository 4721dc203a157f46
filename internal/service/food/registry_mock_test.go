package food

import (
	"context"
	"github.com/heartmarshall/nutritrack-backend/internal/domain"
	"sync"
)

var _ registryClient = &registryClientMock{}

type registryClientMock struct {
	SearchFunc func(ctx context.Context, term string) ([]domain.FoodSummary, error)

	FetchProductFunc func(ctx context.Context, barcode string) (*domain.FoodSummary, error)

	FetchDetailFunc func(ctx context.Context, barcode string) (*domain.FoodDetail, error)

	calls struct {
		Search []struct {
			Ctx  context.Context
			Term string
		}
		FetchProduct []struct {
			Ctx     context.Context
			Barcode string
		}
		FetchDetail []struct {
			Ctx     context.Context
			Barcode string
		}
	}
	lockSearch       sync.RWMutex
	lockFetchProduct sync.RWMutex
	lockFetchDetail  sync.RWMutex
}

func (mock *registryClientMock) Search(ctx context.Context, term string) ([]domain.FoodSummary, error) {
	if mock.SearchFunc == nil {
		panic("registryClientMock.SearchFunc: method is nil but registryClient.Search was just called")
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

func (mock *registryClientMock) SearchCalls() []struct {
	Ctx  context.Context
	Term string
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

func (mock *registryClientMock) FetchProduct(ctx context.Context, barcode string) (*domain.FoodSummary, error) {
	if mock.FetchProductFunc == nil {
		panic("registryClientMock.FetchProductFunc: method is nil but registryClient.FetchProduct was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Barcode string
	}{Ctx: ctx, Barcode: barcode}
	mock.lockFetchProduct.Lock()
	mock.calls.FetchProduct = append(mock.calls.FetchProduct, callInfo)
	mock.lockFetchProduct.Unlock()
	return mock.FetchProductFunc(ctx, barcode)
}

func (mock *registryClientMock) FetchProductCalls() []struct {
	Ctx     context.Context
	Barcode string
} {
	mock.lockFetchProduct.RLock()
	calls := mock.calls.FetchProduct
	mock.lockFetchProduct.RUnlock()
	return calls
}

func (mock *registryClientMock) FetchDetail(ctx context.Context, barcode string) (*domain.FoodDetail, error) {
	if mock.FetchDetailFunc == nil {
		panic("registryClientMock.FetchDetailFunc: method is nil but registryClient.FetchDetail was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Barcode string
	}{Ctx: ctx, Barcode: barcode}
	mock.lockFetchDetail.Lock()
	mock.calls.FetchDetail = append(mock.calls.FetchDetail, callInfo)
	mock.lockFetchDetail.Unlock()
	return mock.FetchDetailFunc(ctx, barcode)
}

func (mock *registryClientMock) FetchDetailCalls() []struct {
	Ctx     context.Context
	Barcode string
} {
	mock.lockFetchDetail.RLock()
	calls := mock.calls.FetchDetail
	mock.lockFetchDetail.RUnlock()
	return calls
}
