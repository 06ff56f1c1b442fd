package repo

import (
	"errors"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

// ErrProductNotFound is returned when a product with the given ID does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetByID(id int) (models.Product, error)
	GetAll() ([]models.Product, error)
}
