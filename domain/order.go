package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const OrderSchemaVersion = 1

type Status string

const (
	Pending Status = "pending"
	Paid    Status = "paid"
)

// Order is a snapshot of a cart at submission time.
// Immutable after creation except the pending -> paid status transition.
type Order struct {
	Id               string          `json:"id"`
	Items            []OrderLine     `json:"items"`
	TableNumber      string          `json:"table_number"`
	TableResponsible string          `json:"table_responsible"`
	Seller           string          `json:"seller"`
	Employee         string          `json:"employee,omitempty"`
	Total            decimal.Decimal `json:"total"`
	Status           Status          `json:"status"`
	Timestamp        string          `json:"timestamp"`
	SchemaVersion    int             `json:"schema_version"`
}

// NewOrder snapshots the cart. UUIDv7 ids sort in generation order.
func NewOrder(cart *Cart, employee string) Order {
	items := make([]OrderLine, len(cart.Lines))
	copy(items, cart.Lines)

	return Order{
		Id:               uuid.Must(uuid.NewV7()).String(),
		Items:            items,
		TableNumber:      cart.TableNumber,
		TableResponsible: cart.TableResponsible,
		Seller:           cart.Seller,
		Employee:         employee,
		Total:            cart.Total(),
		Status:           Pending,
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
		SchemaVersion:    OrderSchemaVersion,
	}
}
