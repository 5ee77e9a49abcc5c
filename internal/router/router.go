package router

import (
	"net/http"

	"flower-shop/internal/handler"
	"flower-shop/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// New creates the HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	logger zerolog.Logger,
) http.Handler {
	r := mux.NewRouter()

	// Health check endpoint
	r.HandleFunc("/api/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "OK", "message": "Flower Shop API is running"}`))
	}).Methods(http.MethodGet)

	// Product routes
	r.HandleFunc("/api/products", productHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/api/products", productHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/products/{id}", productHandler.GetByID).Methods(http.MethodGet)
	r.HandleFunc("/api/products/{id}", productHandler.Update).Methods(http.MethodPut)
	r.HandleFunc("/api/products/{id}", productHandler.Delete).Methods(http.MethodDelete)

	// Order routes
	r.HandleFunc("/api/orders", orderHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/api/orders", orderHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/orders/{id}", orderHandler.GetByID).Methods(http.MethodGet)
	r.HandleFunc("/api/orders/{id}/status", orderHandler.UpdateStatus).Methods(http.MethodPatch)
	r.HandleFunc("/api/orders/{id}", orderHandler.Delete).Methods(http.MethodDelete)

	// CORS preflight must reach the middleware for any route
	r.PathPrefix("/api/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, req *http.Request) {})

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = r
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
