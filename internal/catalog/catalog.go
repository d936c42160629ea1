// Package catalog holds the static waste reference data: categories and the
// items they contain. The data is embedded at build time and never mutated.
package catalog

import (
	_ "embed"
	"errors"

	"github.com/bytedance/sonic"

	errorvalues "github.com/binbuddy/tracker/internal/error_values"
	"github.com/binbuddy/tracker/pkg/entity"
)

//go:embed trash_items.json
var rawCatalog []byte

type Catalog struct {
	categories []entity.Category
	byID       map[string]int
}

func Load() (*Catalog, error) {
	var data struct {
		Categories []entity.Category `json:"categories"`
	}
	err := sonic.ConfigDefault.Unmarshal(rawCatalog, &data)
	if err != nil {
		return nil, errors.New("parsing embedded catalog error: " + err.Error())
	}
	if len(data.Categories) == 0 {
		return nil, errors.New("embedded catalog has no categories")
	}
	c := Catalog{
		categories: data.Categories,
		byID:       make(map[string]int, len(data.Categories)),
	}
	for i, category := range data.Categories {
		c.byID[category.ID] = i
	}
	return &c, nil
}

func (c *Catalog) Categories() []entity.Category {
	return c.categories
}

func (c *Catalog) Category(id string) (*entity.Category, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, errorvalues.ErrCategoryNotFound
	}
	return &c.categories[i], nil
}

// Item resolves an item inside a category. Both the item and its owning
// category are returned, since log entries denormalize fields from each.
func (c *Catalog) Item(categoryID, itemID string) (*entity.TrashItem, *entity.Category, error) {
	category, err := c.Category(categoryID)
	if err != nil {
		return nil, nil, err
	}
	for i := range category.Items {
		if category.Items[i].ID == itemID {
			return &category.Items[i], category, nil
		}
	}
	return nil, nil, errorvalues.ErrItemNotFound
}
