package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderSnapshotsCart(t *testing.T) {
	cart := &Cart{
		TableNumber:      "5",
		TableResponsible: "Ana",
		Seller:           "João",
	}
	item := testItem("1", "Rodízio de Maminha", "14", Rodizio)
	cart.AddOrIncrement(item)

	order := NewOrder(cart, "")

	// later cart mutations must not reach the snapshot
	cart.AddOrIncrement(item)
	cart.Clear()

	require.Len(t, order.Items, 1)
	assert.Equal(t, 1, order.Items[0].Quantity)
	assert.Equal(t, "5", order.TableNumber)
	assert.Equal(t, Pending, order.Status)
	assert.Equal(t, OrderSchemaVersion, order.SchemaVersion)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("14")))
	assert.NotEmpty(t, order.Id)
	assert.NotEmpty(t, order.Timestamp)
}

func TestNewOrderIdsFollowGenerationOrder(t *testing.T) {
	cart := validCart()

	first := NewOrder(cart, "")
	second := NewOrder(cart, "")

	assert.NotEqual(t, first.Id, second.Id)
	assert.Less(t, first.Id, second.Id, "UUIDv7 ids sort in generation order")
}
