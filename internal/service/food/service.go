package food

import (
	"context"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/nutritrack-backend/internal/domain"
	"github.com/heartmarshall/nutritrack-backend/internal/provider"
)

type usdaClient interface {
	Search(ctx context.Context, term string) ([]domain.FoodSummary, error)
	SearchBarcode(ctx context.Context, code string) (*domain.FoodSummary, error)
	FetchDetail(ctx context.Context, fdcID string) (*domain.FoodDetail, error)
}

type registryClient interface {
	Search(ctx context.Context, term string) ([]domain.FoodSummary, error)
	FetchProduct(ctx context.Context, barcode string) (*domain.FoodSummary, error)
	FetchDetail(ctx context.Context, barcode string) (*domain.FoodDetail, error)
}

// Service implements food search, detail lookup, the barcode fallback chain
// and nutrition scaling.
type Service struct {
	log      *slog.Logger
	usda     usdaClient
	registry registryClient
	retrier  *provider.Retrier

	details singleflight.Group
}

// NewService creates a new Food service.
func NewService(
	logger *slog.Logger,
	usda usdaClient,
	registry registryClient,
	retrier *provider.Retrier,
) *Service {
	return &Service{
		log:      logger.With("service", "food"),
		usda:     usda,
		registry: registry,
		retrier:  retrier,
	}
}
