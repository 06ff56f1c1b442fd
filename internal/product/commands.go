// Package product contains the command and query handlers for the product
// catalog. Each request type is bound to exactly one handler on the mediator.
package product

import (
	"context"
	"fmt"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

// CreateProductCommand requests the creation of a new product.
// Inputs are expected to be validated before dispatch.
type CreateProductCommand struct {
	Name  string
	Price float64
}

// RequestName implements mediator.Request.
func (CreateProductCommand) RequestName() string { return "product.create" }

// CreateProductHandler persists new products and returns their assigned ID.
type CreateProductHandler struct {
	repo repo.ProductRepository
}

// NewCreateProductHandler creates a CreateProductHandler backed by the given repository.
func NewCreateProductHandler(r repo.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: r}
}

// Handle allocates a new product in the store and returns the new ID as an int.
func (h *CreateProductHandler) Handle(_ context.Context, cmd CreateProductCommand) (any, error) {
	created, err := h.repo.Create(models.Product{Name: cmd.Name, Price: cmd.Price})
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return created.ID, nil
}
