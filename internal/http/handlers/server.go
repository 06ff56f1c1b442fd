package handlers

import (
	"github.com/rogerio-castellano/product-catalog/internal/mediator"
)

var m *mediator.Mediator

// SetMediator wires the mediator the HTTP handlers dispatch through.
func SetMediator(med *mediator.Mediator) {
	m = med
}
