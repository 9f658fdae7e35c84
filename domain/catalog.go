package domain

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
)

type Category string

const (
	Rodizio Category = "rodizio"
	Diaria  Category = "diaria"
	Bebida  Category = "bebida"
)

func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	switch Category(s) {
	case Rodizio, Diaria, Bebida:
		*c = Category(s)
		return nil
	}

	return fmt.Errorf("unknown category %q", s)
}

type CatalogItem struct {
	Id          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    Category        `json:"category"`
	Description string          `json:"description,omitempty"`
}

type Catalog struct {
	ItemsCount int
	Items      []CatalogItem `json:"items"`
}

func LoadCatalog(path string) (Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("opening catalog file: %w", err)
	}
	defer file.Close()

	byteValue, err := io.ReadAll(file)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading catalog file: %w", err)
	}

	var catalog Catalog
	if err := json.Unmarshal(byteValue, &catalog); err != nil {
		return Catalog{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	catalog.ItemsCount = len(catalog.Items)
	return catalog, nil
}

// MergeCatalogs joins the menu and drinks catalogs for display.
// Item ids must be unique across all of them.
func MergeCatalogs(catalogs ...Catalog) (Catalog, error) {
	var merged Catalog
	seen := make(map[string]string)

	for _, catalog := range catalogs {
		for _, item := range catalog.Items {
			if name, ok := seen[item.Id]; ok {
				return Catalog{}, fmt.Errorf("duplicate item id %s (%s and %s)", item.Id, name, item.Name)
			}
			seen[item.Id] = item.Name
			merged.Items = append(merged.Items, item)
		}
	}

	merged.ItemsCount = len(merged.Items)
	return merged, nil
}

func (c Catalog) Find(id string) (CatalogItem, bool) {
	for _, item := range c.Items {
		if item.Id == id {
			return item, true
		}
	}

	return CatalogItem{}, false
}
