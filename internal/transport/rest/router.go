package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/heartmarshall/nutritrack-backend/internal/transport/middleware"
)

// RouterDeps holds everything the HTTP router serves.
type RouterDeps struct {
	Food    *FoodHandler
	Journal *JournalHandler
	Health  *HealthHandler

	// FoodsLimit guards the provider-backed /foods routes. Nil disables it.
	FoodsLimit middleware.Middleware

	// Global middleware, outermost first.
	Middleware []middleware.Middleware
}

// NewRouter builds the HTTP handler of the API.
func NewRouter(d RouterDeps) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.HandleFunc("/live", d.Health.Live).Methods(http.MethodGet)
	r.HandleFunc("/ready", d.Health.Ready).Methods(http.MethodGet)
	r.HandleFunc("/health", d.Health.Health).Methods(http.MethodGet)

	foods := r.PathPrefix("/foods").Subrouter()
	if d.FoodsLimit != nil {
		foods.Use(mux.MiddlewareFunc(d.FoodsLimit))
	}
	foods.HandleFunc("/search", d.Food.Search).Methods(http.MethodGet)
	foods.HandleFunc("/barcode/{code}", d.Food.Barcode).Methods(http.MethodGet)
	foods.HandleFunc("/{id}", d.Food.Detail).Methods(http.MethodGet)

	r.HandleFunc("/nutrition/scale", d.Food.Scale).Methods(http.MethodPost)

	r.HandleFunc("/journal", d.Journal.Add).Methods(http.MethodPost)
	r.HandleFunc("/journal/{day}", d.Journal.Day).Methods(http.MethodGet)
	r.HandleFunc("/journal/{day}", d.Journal.Clear).Methods(http.MethodDelete)
	r.HandleFunc("/journal/{day}/entries/{id}", d.Journal.Remove).Methods(http.MethodDelete)

	return middleware.Chain(d.Middleware...)(r)
}
