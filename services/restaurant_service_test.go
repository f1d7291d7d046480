package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestaurantListFilters(t *testing.T) {
	colls := testCollections()
	_, ok, err := colls.Restaurants.Update("r1", map[string]any{"categoryId": "c1"})
	require.NoError(t, err)
	require.True(t, ok)

	svc := NewRestaurantService(colls)

	all, err := svc.List("", "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	// best rated first
	assert.Equal(t, "Cantina Um", all[0].Name)

	byCategory, err := svc.List("c1", "")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "r1", byCategory[0].ID)

	bySearch, err := svc.List("", "dois")
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "r2", bySearch[0].ID)

	none, err := svc.List("c1", "dois")
	require.NoError(t, err)
	assert.Empty(t, none)
}
