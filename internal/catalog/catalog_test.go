package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binbuddy/tracker/internal/catalog"
	errorvalues "github.com/binbuddy/tracker/internal/error_values"
	"github.com/binbuddy/tracker/pkg/entity"
)

func TestLoad(t *testing.T) {
	t.Parallel()
	c, err := catalog.Load()
	require.NoError(t, err)
	require.NotEmpty(t, c.Categories())

	// Every item carries the fields a log entry denormalizes, and a known
	// disposal method.
	for _, category := range c.Categories() {
		assert.NotEmpty(t, category.ID)
		assert.NotEmpty(t, category.Name)
		assert.NotEmpty(t, category.Items)
		for _, item := range category.Items {
			assert.NotEmpty(t, item.ID, category.ID)
			assert.NotEmpty(t, item.Name, item.ID)
			assert.NotEmpty(t, item.Material, item.ID)
			assert.NotEmpty(t, item.EcoFact, item.ID)
			assert.Contains(t, entity.DisposalMethods, item.Disposal, item.ID)
			assert.Greater(t, item.Points, 0, item.ID)
		}
	}
}

func TestCategoryLookup(t *testing.T) {
	t.Parallel()
	c, err := catalog.Load()
	require.NoError(t, err)

	category, err := c.Category("plastic")
	require.NoError(t, err)
	assert.Equal(t, "Plastic", category.Name)

	_, err = c.Category("unobtainium")
	assert.ErrorIs(t, err, errorvalues.ErrCategoryNotFound)
}

func TestItemLookup(t *testing.T) {
	t.Parallel()
	c, err := catalog.Load()
	require.NoError(t, err)

	item, category, err := c.Item("plastic", "plastic-bottle")
	require.NoError(t, err)
	assert.Equal(t, "Plastic Bottle", item.Name)
	assert.Equal(t, "plastic", category.ID)
	assert.Equal(t, 5, item.Points)

	_, _, err = c.Item("plastic", "banana-peel")
	assert.ErrorIs(t, err, errorvalues.ErrItemNotFound)

	_, _, err = c.Item("unobtainium", "plastic-bottle")
	assert.ErrorIs(t, err, errorvalues.ErrCategoryNotFound)
}
