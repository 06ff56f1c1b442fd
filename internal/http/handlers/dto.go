package handlers

// ProductRequest is the JSON body accepted by the create endpoint.
type ProductRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ProductResponse is the JSON representation of a product.
type ProductResponse struct {
	Id    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
