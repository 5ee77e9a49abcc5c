package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"flower-shop/internal/model"
	"flower-shop/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products requests.
// Supported query parameters: category, featured, limit.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := model.ProductFilter{
		Category: query.Get("category"),
		Featured: query.Get("featured") == "true",
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid limit parameter", h.logger)
			return
		}
		filter.Limit = limit
	}

	products, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	if product == nil {
		writeError(w, http.StatusNotFound, model.ErrCodeProductNotFound, "Product not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Create handles POST /api/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input model.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	product, err := h.service.Create(r.Context(), &input)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// Update handles PUT /api/products/{id} requests.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var input model.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	product, err := h.service.Update(r.Context(), id, &input)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	if product == nil {
		writeError(w, http.StatusNotFound, model.ErrCodeProductNotFound, "Product not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /api/products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deleted, err := h.service.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	if !deleted {
		writeError(w, http.StatusNotFound, model.ErrCodeProductNotFound, "Product not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}
