package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/product-catalog/docs"
	"github.com/rogerio-castellano/product-catalog/internal/http/handlers"
)

// NewRouter builds the service's route table with the standard middleware chain.
func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(WithRequestID)
	r.Use(WithLogging)
	r.Use(WithRateLimit)

	r.Route("/api/products", func(pr chi.Router) {
		pr.Post("/", handlers.CreateProductHandler)
		pr.Get("/", handlers.GetProductsHandler)
		pr.Get("/{id}", handlers.GetProductByIDHandler)
	})
	r.Get("/test", handlers.TestHandler)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}
