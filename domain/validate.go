package domain

import (
	"errors"
	"strings"
)

var (
	ErrMissingSessionInfo = errors.New("table responsible, table number and seller are required")
	ErrEmptyCart          = errors.New("cart has no items")
	ErrUnknownItem        = errors.New("item is not in the catalog")
)

// Validate gates a cart before it may become an order. Checks run in order
// and the first failure wins, so the most actionable message surfaces first.
// All three session fields are required; whitespace-only values do not count.
func Validate(cart *Cart) error {
	if strings.TrimSpace(cart.TableResponsible) == "" ||
		strings.TrimSpace(cart.TableNumber) == "" ||
		strings.TrimSpace(cart.Seller) == "" {
		return ErrMissingSessionInfo
	}

	if len(cart.Lines) == 0 {
		return ErrEmptyCart
	}

	return nil
}
