package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/heartmarshall/nutritrack-backend/internal/domain"
	"github.com/heartmarshall/nutritrack-backend/internal/service/journal"
)

type journalService interface {
	Summary(ctx context.Context, day string) (*domain.DailyLog, error)
	Add(ctx context.Context, input journal.AddEntryInput) (*domain.LoggedEntry, error)
	Remove(ctx context.Context, day string, id uuid.UUID) error
	Clear(ctx context.Context, day string) (int, error)
	Today() string
}

// JournalHandler serves the per-day food journal.
type JournalHandler struct {
	svc journalService
	log *slog.Logger
}

// NewJournalHandler creates a JournalHandler.
func NewJournalHandler(svc journalService, logger *slog.Logger) *JournalHandler {
	return &JournalHandler{svc: svc, log: logger.With("handler", "journal")}
}

// day resolves the {day} path variable; "today" means the current day.
func (h *JournalHandler) day(r *http.Request) string {
	day := mux.Vars(r)["day"]
	if day == "today" {
		return h.svc.Today()
	}
	return day
}

// Day handles GET /journal/{day}.
func (h *JournalHandler) Day(w http.ResponseWriter, r *http.Request) {
	daily, err := h.svc.Summary(r.Context(), h.day(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, daily)
}

type addEntryRequest struct {
	Food     domain.FoodDetail `json:"food"`
	Quantity float64           `json:"quantity"`
	Day      string            `json:"day,omitempty"`
}

// Add handles POST /journal.
func (h *JournalHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	entry, err := h.svc.Add(r.Context(), journal.AddEntryInput{
		Food:     req.Food,
		Quantity: req.Quantity,
		Day:      req.Day,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// Remove handles DELETE /journal/{day}/entries/{id}.
func (h *JournalHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, domain.UserMessage(domain.NewValidationError("id", "must be a UUID")))
		return
	}

	if err := h.svc.Remove(r.Context(), h.day(r), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Clear handles DELETE /journal/{day}.
func (h *JournalHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if _, err := h.svc.Clear(r.Context(), h.day(r)); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
