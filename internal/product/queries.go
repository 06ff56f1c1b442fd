package product

import (
	"context"
	"fmt"

	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

// GetProductByIDQuery requests a single product by its ID.
type GetProductByIDQuery struct {
	ID int
}

// RequestName implements mediator.Request.
func (GetProductByIDQuery) RequestName() string { return "product.get_by_id" }

// GetProductByIDHandler is a pure read; it never mutates the store.
type GetProductByIDHandler struct {
	repo repo.ProductRepository
}

// NewGetProductByIDHandler creates a GetProductByIDHandler backed by the given repository.
func NewGetProductByIDHandler(r repo.ProductRepository) *GetProductByIDHandler {
	return &GetProductByIDHandler{repo: r}
}

// Handle returns the matching product or repo.ErrProductNotFound.
func (h *GetProductByIDHandler) Handle(_ context.Context, q GetProductByIDQuery) (any, error) {
	p, err := h.repo.GetByID(q.ID)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListProductsQuery requests all products in the catalog.
type ListProductsQuery struct{}

// RequestName implements mediator.Request.
func (ListProductsQuery) RequestName() string { return "product.list" }

// ListProductsHandler returns the full catalog.
type ListProductsHandler struct {
	repo repo.ProductRepository
}

// NewListProductsHandler creates a ListProductsHandler backed by the given repository.
func NewListProductsHandler(r repo.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: r}
}

func (h *ListProductsHandler) Handle(_ context.Context, _ ListProductsQuery) (any, error) {
	products, err := h.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}
