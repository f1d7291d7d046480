package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PedroHenrico2002/Projeto-Ale-sub000/entity"
)

func TestListByRestaurant(t *testing.T) {
	svc := NewMenuService(testCollections())

	items, err := svc.ListByRestaurant("r1")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = svc.ListByRestaurant("ghost")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFilterByNameCaseInsensitive(t *testing.T) {
	items := []entity.MenuItem{
		{Name: "X-Burger"},
		{Name: "x-salada"},
		{Name: "Pizza"},
	}
	got := FilterByName(items, "x-")
	require.Len(t, got, 2)

	got = FilterByName(items, "PIZZA")
	require.Len(t, got, 1)
	assert.Equal(t, "Pizza", got[0].Name)

	assert.Empty(t, FilterByName(items, "sushi"))
}

func TestSortAlphabetically(t *testing.T) {
	items := []entity.MenuItem{
		{Name: "pastel"},
		{Name: "Açaí"},
		{Name: "Coxinha"},
	}
	got := SortAlphabetically(items)
	assert.Equal(t, "Açaí", got[0].Name)
	assert.Equal(t, "Coxinha", got[1].Name)
	assert.Equal(t, "pastel", got[2].Name)

	// input untouched
	assert.Equal(t, "pastel", items[0].Name)
}

func TestSortByRatingMissingCountsAsZero(t *testing.T) {
	items := []entity.MenuItem{
		{Name: "sem nota"},
		{Name: "ótimo", Rating: 4.9},
		{Name: "bom", Rating: 4.1},
	}
	got := SortByRating(items)
	assert.Equal(t, "ótimo", got[0].Name)
	assert.Equal(t, "bom", got[1].Name)
	assert.Equal(t, "sem nota", got[2].Name)
}
