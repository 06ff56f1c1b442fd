package product

import (
	"github.com/rogerio-castellano/product-catalog/internal/mediator"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

// RegisterHandlers binds every product command and query to its handler.
// Called once at startup; the registry is immutable afterwards.
func RegisterHandlers(m *mediator.Mediator, r repo.ProductRepository) error {
	if err := mediator.Register(m, NewCreateProductHandler(r).Handle); err != nil {
		return err
	}
	if err := mediator.Register(m, NewGetProductByIDHandler(r).Handle); err != nil {
		return err
	}
	return mediator.Register(m, NewListProductsHandler(r).Handle)
}
