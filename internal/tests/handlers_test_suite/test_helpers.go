package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	handler "github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	rl "github.com/rogerio-castellano/product-catalog/internal/http/rate_limiter"
	"github.com/rogerio-castellano/product-catalog/internal/mediator"
	"github.com/rogerio-castellano/product-catalog/internal/product"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

var productRepo *repo.InMemoryProductRepository

func init() {
	// Keep the rate limiter out of the way for the whole suite.
	rl.Configure(10000, 10000)
}

// setupTestRepos wires a fresh repository and mediator, so IDs restart at 1.
func setupTestRepos() {
	productRepo = repo.NewInMemoryProductRepository()

	m := mediator.New()
	if err := product.RegisterHandlers(m, productRepo); err != nil {
		panic(err)
	}
	handler.SetMediator(m)
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(body))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getProduct(r http.Handler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/products/"+id, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
