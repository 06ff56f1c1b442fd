package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/obs"
	"github.com/rogerio-castellano/product-catalog/internal/product"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the catalog and returns its assigned ID
// @Tags products
// @Accept json
// @Produce json
// @Param product body ProductRequest true "Product to add"
// @Success 200 {integer} int
// @Failure 400 {array} ProductValidationError
// @Failure 500 {string} string "Internal error"
// @Router /api/products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	result, err := m.Send(r.Context(), product.CreateProductCommand{Name: req.Name, Price: req.Price})
	if err != nil {
		obs.Logger.Error("create product failed", "error", err, "request_id", obs.RequestIDFromContext(r.Context()))
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result.(int))
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /api/products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	result, err := m.Send(r.Context(), product.GetProductByIDQuery{ID: id})
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		obs.Logger.Error("get product failed", "error", err, "request_id", obs.RequestIDFromContext(r.Context()))
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	p := result.(models.Product)
	resp := ProductResponse{Id: p.ID, Name: p.Name, Price: p.Price}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// GetProductsHandler godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Success 200 {array} ProductResponse
// @Failure 500 {string} string "Internal error"
// @Router /api/products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	result, err := m.Send(r.Context(), product.ListProductsQuery{})
	if err != nil {
		obs.Logger.Error("list products failed", "error", err, "request_id", obs.RequestIDFromContext(r.Context()))
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	products := result.([]models.Product)
	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = ProductResponse{Id: p.ID, Name: p.Name, Price: p.Price}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// TestHandler godoc
// @Summary Health check
// @Tags health
// @Produce plain
// @Success 200 {string} string "API is up and running"
// @Router /test [get]
func TestHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("API is up and running"))
}
