package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalogData(t *testing.T) {
	data, err := LoadCatalogData()
	require.NoError(t, err)

	assert.NotEmpty(t, data.Version)
	assert.Len(t, data.Products, 9)
	assert.Len(t, data.MealGroups, 4)
	assert.Len(t, data.Dishes, 3)

	links, groupLinks := 0, 0
	for _, d := range data.Dishes {
		links += len(d.Products)
		groupLinks += len(d.MealGroups)
	}
	assert.Equal(t, 10, links)
	assert.Equal(t, 4, groupLinks)
}

func TestLoadCatalogData_ReferencesAreConsistent(t *testing.T) {
	data, err := LoadCatalogData()
	require.NoError(t, err)

	products := map[uint]bool{}
	for _, p := range data.Products {
		assert.False(t, products[p.ID], "duplicate product id %d", p.ID)
		products[p.ID] = true
	}
	groups := map[uint]bool{}
	for _, g := range data.MealGroups {
		groups[g.ID] = true
		assert.Regexp(t, `^#(?:[0-9a-fA-F]{3}){1,2}$`, g.AccentColor)
	}

	for _, d := range data.Dishes {
		for _, p := range d.Products {
			assert.True(t, products[p.ProductID], "dish %d references unknown product %d", d.ID, p.ProductID)
		}
		for _, g := range d.MealGroups {
			assert.True(t, groups[g], "dish %d references unknown group %d", d.ID, g)
		}
	}
}

func TestOptional(t *testing.T) {
	assert.Nil(t, optional(""))
	require.NotNil(t, optional("x"))
	assert.Equal(t, "x", *optional("x"))
}

func TestParseCatalogData(t *testing.T) {
	data, err := ParseCatalogData([]byte(`
version: "test-1"
products:
  - id: 1
    name: Salt
dishes:
  - id: 1
    name: Brine
    products:
      - product_id: 1
        quantity: 1 tsp
`))
	require.NoError(t, err)
	assert.Equal(t, "test-1", data.Version)
	require.Len(t, data.Dishes, 1)
	assert.Equal(t, "1 tsp", data.Dishes[0].Products[0].Quantity)

	_, err = ParseCatalogData([]byte("products: []"))
	assert.EqualError(t, err, "seed data has no version")

	_, err = ParseCatalogData([]byte("version: [unclosed"))
	assert.Error(t, err)
}
