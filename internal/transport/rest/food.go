package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/heartmarshall/nutritrack-backend/internal/domain"
	"github.com/heartmarshall/nutritrack-backend/internal/service/food"
)

type foodService interface {
	Search(ctx context.Context, input food.SearchInput) ([]domain.FoodSummary, error)
	GetDetail(ctx context.Context, input food.GetDetailInput) (*domain.FoodDetail, error)
	LookupBarcode(ctx context.Context, barcode string) (*domain.FoodSummary, error)
	Compute(ctx context.Context, input food.ComputeInput) (domain.ScaledNutrition, error)
}

// FoodHandler serves food search, detail, barcode and scaling endpoints.
type FoodHandler struct {
	svc foodService
	log *slog.Logger
}

// NewFoodHandler creates a FoodHandler.
func NewFoodHandler(svc foodService, logger *slog.Logger) *FoodHandler {
	return &FoodHandler{svc: svc, log: logger.With("handler", "food")}
}

// Search handles GET /foods/search?q=apple&source=usda.
func (h *FoodHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	foods, err := h.svc.Search(r.Context(), food.SearchInput{
		Query:  q.Get("q"),
		Source: q.Get("source"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, foods)
}

// Detail handles GET /foods/{id}?dataType=FOUNDATION.
func (h *FoodHandler) Detail(w http.ResponseWriter, r *http.Request) {
	input := food.GetDetailInput{ID: mux.Vars(r)["id"]}
	if raw := r.URL.Query().Get("dataType"); raw != "" {
		dt, ok := domain.ParseDataType(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, domain.UserMessage(domain.NewValidationError("dataType", "unknown data type")))
			return
		}
		input.DataType = dt
	}

	detail, err := h.svc.GetDetail(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

// Barcode handles GET /foods/barcode/{code}.
func (h *FoodHandler) Barcode(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.LookupBarcode(r.Context(), mux.Vars(r)["code"])
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

type scaleRequest struct {
	Nutrients        domain.NutrientProfile `json:"nutrients"`
	Quantity         float64                `json:"quantity"`
	ReferenceServing float64                `json:"referenceServing"`
}

// Scale handles POST /nutrition/scale.
func (h *FoodHandler) Scale(w http.ResponseWriter, r *http.Request) {
	var req scaleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	scaled, err := h.svc.Compute(r.Context(), food.ComputeInput{
		Nutrients:        req.Nutrients,
		Quantity:         req.Quantity,
		ReferenceServing: req.ReferenceServing,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, scaled)
}
