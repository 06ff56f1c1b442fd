package handlers

import (
	"strings"
	"unicode/utf8"
)

// ProductValidationError names a failing field and why it failed.
type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

const maxNameLength = 100

// validateProduct runs the declarative rule set applied before a create is dispatched.
func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name is required"})
	} else if utf8.RuneCountInString(p.Name) > maxNameLength {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name must be at most 100 characters"})
	}
	if p.Price <= 0 {
		errs = append(errs, ProductValidationError{Field: "Price", Description: "Price must be greater than zero"})
	}
	return errs
}
