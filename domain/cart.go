package domain

import "github.com/shopspring/decimal"

type OrderLine struct {
	CatalogItem
	Quantity int `json:"quantity"`
}

// Cart holds the order being built for one table session.
// Lines keep their insertion order and there is at most one line per item id.
type Cart struct {
	Lines            []OrderLine `json:"items"`
	TableNumber      string      `json:"table_number"`
	TableResponsible string      `json:"table_responsible"`
	Seller           string      `json:"seller"`
}

func (c *Cart) AddOrIncrement(item CatalogItem) {
	for i := range c.Lines {
		if c.Lines[i].Id == item.Id {
			c.Lines[i].Quantity++
			return
		}
	}

	c.Lines = append(c.Lines, OrderLine{CatalogItem: item, Quantity: 1})
}

// ChangeQuantity adjusts the line for item by delta. A line dropping to zero
// or below is removed, never kept. A negative delta for a missing line is a no-op.
func (c *Cart) ChangeQuantity(item CatalogItem, delta int) {
	for i := range c.Lines {
		if c.Lines[i].Id == item.Id {
			c.Lines[i].Quantity += delta
			if c.Lines[i].Quantity <= 0 {
				c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			}
			return
		}
	}

	if delta > 0 {
		c.Lines = append(c.Lines, OrderLine{CatalogItem: item, Quantity: delta})
	}
}

func (c *Cart) RemoveLine(id string) (OrderLine, bool) {
	for i := range c.Lines {
		if c.Lines[i].Id == id {
			line := c.Lines[i]
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return line, true
		}
	}

	return OrderLine{}, false
}

// Total is recomputed on every call, the cart is small and mutated interactively.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	return total
}

func (c *Cart) Clear() {
	c.Lines = nil
	c.TableNumber = ""
	c.TableResponsible = ""
	c.Seller = ""
}
