package rest

import (
	"context"
	"github.com/heartmarshall/nutritrack-backend/internal/domain"
	"github.com/heartmarshall/nutritrack-backend/internal/service/food"
	"sync"
)

var _ foodService = &foodServiceMock{}

type foodServiceMock struct {
	SearchFunc func(ctx context.Context, input food.SearchInput) ([]domain.FoodSummary, error)

	GetDetailFunc func(ctx context.Context, input food.GetDetailInput) (*domain.FoodDetail, error)

	LookupBarcodeFunc func(ctx context.Context, barcode string) (*domain.FoodSummary, error)

	ComputeFunc func(ctx context.Context, input food.ComputeInput) (domain.ScaledNutrition, error)

	calls struct {
		Search []struct {
			Ctx   context.Context
			Input food.SearchInput
		}
		GetDetail []struct {
			Ctx   context.Context
			Input food.GetDetailInput
		}
		LookupBarcode []struct {
			Ctx     context.Context
			Barcode string
		}
		Compute []struct {
			Ctx   context.Context
			Input food.ComputeInput
		}
	}
	lockSearch        sync.RWMutex
	lockGetDetail     sync.RWMutex
	lockLookupBarcode sync.RWMutex
	lockCompute       sync.RWMutex
}

func (mock *foodServiceMock) Search(ctx context.Context, input food.SearchInput) ([]domain.FoodSummary, error) {
	if mock.SearchFunc == nil {
		panic("foodServiceMock.SearchFunc: method is nil but foodService.Search was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input food.SearchInput
	}{Ctx: ctx, Input: input}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, input)
}

func (mock *foodServiceMock) SearchCalls() []struct {
	Ctx   context.Context
	Input food.SearchInput
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

func (mock *foodServiceMock) GetDetail(ctx context.Context, input food.GetDetailInput) (*domain.FoodDetail, error) {
	if mock.GetDetailFunc == nil {
		panic("foodServiceMock.GetDetailFunc: method is nil but foodService.GetDetail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input food.GetDetailInput
	}{Ctx: ctx, Input: input}
	mock.lockGetDetail.Lock()
	mock.calls.GetDetail = append(mock.calls.GetDetail, callInfo)
	mock.lockGetDetail.Unlock()
	return mock.GetDetailFunc(ctx, input)
}

func (mock *foodServiceMock) GetDetailCalls() []struct {
	Ctx   context.Context
	Input food.GetDetailInput
} {
	mock.lockGetDetail.RLock()
	calls := mock.calls.GetDetail
	mock.lockGetDetail.RUnlock()
	return calls
}

func (mock *foodServiceMock) LookupBarcode(ctx context.Context, barcode string) (*domain.FoodSummary, error) {
	if mock.LookupBarcodeFunc == nil {
		panic("foodServiceMock.LookupBarcodeFunc: method is nil but foodService.LookupBarcode was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Barcode string
	}{Ctx: ctx, Barcode: barcode}
	mock.lockLookupBarcode.Lock()
	mock.calls.LookupBarcode = append(mock.calls.LookupBarcode, callInfo)
	mock.lockLookupBarcode.Unlock()
	return mock.LookupBarcodeFunc(ctx, barcode)
}

func (mock *foodServiceMock) LookupBarcodeCalls() []struct {
	Ctx     context.Context
	Barcode string
} {
	mock.lockLookupBarcode.RLock()
	calls := mock.calls.LookupBarcode
	mock.lockLookupBarcode.RUnlock()
	return calls
}

func (mock *foodServiceMock) Compute(ctx context.Context, input food.ComputeInput) (domain.ScaledNutrition, error) {
	if mock.ComputeFunc == nil {
		panic("foodServiceMock.ComputeFunc: method is nil but foodService.Compute was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input food.ComputeInput
	}{Ctx: ctx, Input: input}
	mock.lockCompute.Lock()
	mock.calls.Compute = append(mock.calls.Compute, callInfo)
	mock.lockCompute.Unlock()
	return mock.ComputeFunc(ctx, input)
}

func (mock *foodServiceMock) ComputeCalls() []struct {
	Ctx   context.Context
	Input food.ComputeInput
} {
	mock.lockCompute.RLock()
	calls := mock.calls.Compute
	mock.lockCompute.RUnlock()
	return calls
}
