package shopify

import (
	"errors"
	"fmt"

	"prodnames/internal/model"
)

// productsResponse keeps Products as a pointer so a body without the field
// can be told apart from an empty catalog.
type productsResponse struct {
	Products *[]model.Product `json:"products"`
}

// StatusError is returned when the admin API answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("shopify status %d: %s", e.StatusCode, e.Status)
}

var errMissingProducts = errors.New("response has no products field")
