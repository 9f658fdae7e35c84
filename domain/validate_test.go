package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCart() *Cart {
	cart := &Cart{
		TableNumber:      "5",
		TableResponsible: "Ana",
		Seller:           "João",
	}
	cart.AddOrIncrement(testItem("1", "Rodízio de Maminha", "14", Rodizio))
	return cart
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Cart)
		wantErr error
	}{
		{"complete cart", func(c *Cart) {}, nil},
		{"missing responsible", func(c *Cart) { c.TableResponsible = "" }, ErrMissingSessionInfo},
		{"whitespace responsible", func(c *Cart) { c.TableResponsible = "   " }, ErrMissingSessionInfo},
		{"missing table number", func(c *Cart) { c.TableNumber = "" }, ErrMissingSessionInfo},
		{"missing seller", func(c *Cart) { c.Seller = "\t" }, ErrMissingSessionInfo},
		{"empty cart", func(c *Cart) { c.Lines = nil }, ErrEmptyCart},
		{"missing info wins over empty cart", func(c *Cart) {
			c.Lines = nil
			c.Seller = ""
		}, ErrMissingSessionInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := validCart()
			tt.mutate(cart)

			err := Validate(cart)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateMissingInfoRegardlessOfCart(t *testing.T) {
	cart := &Cart{TableNumber: "5", Seller: "Ana"}
	cart.AddOrIncrement(testItem("1", "Rodízio de Maminha", "14", Rodizio))

	assert.ErrorIs(t, Validate(cart), ErrMissingSessionInfo)
}
