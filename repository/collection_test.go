package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PedroHenrico2002/Projeto-Ale-sub000/entity"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/store"
)

func newAddresses(s store.Store, seed []entity.Address) *Collection[entity.Address, *entity.Address] {
	return NewCollection[entity.Address, *entity.Address](s, "addresses", seed)
}

func TestCreateGeneratesUniqueIDs(t *testing.T) {
	coll := newAddresses(store.NewMemory(), nil)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		created, err := coll.Create(entity.Address{Street: "Rua A", City: "SP"})
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)
		assert.False(t, seen[created.ID], "id %q repeated", created.ID)
		seen[created.ID] = true
	}
}

func TestRoundTrip(t *testing.T) {
	coll := newAddresses(store.NewMemory(), nil)

	created, err := coll.Create(entity.Address{
		UserID: "u1", Label: "Casa", Street: "Rua B", Number: "12",
		City: "Campinas", State: "SP", ZipCode: "13000-000",
	})
	require.NoError(t, err)

	got, ok, err := coll.GetByID(created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, created, *got)

	// update merges only the patched fields
	updated, ok, err := coll.Update(created.ID, map[string]any{"city": "Santos", "isDefault": true})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Santos", updated.City)
	assert.True(t, updated.IsDefault)
	assert.Equal(t, "Rua B", updated.Street)

	got, ok, err = coll.GetByID(created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, *updated, *got)

	removed, err := coll.Remove(created.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	_, ok, err = coll.GetByID(created.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateCannotPatchID(t *testing.T) {
	coll := newAddresses(store.NewMemory(), nil)
	created, err := coll.Create(entity.Address{Street: "Rua C"})
	require.NoError(t, err)

	updated, ok, err := coll.Update(created.ID, map[string]any{"id": "hijacked", "street": "Rua D"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Rua D", updated.Street)
}

func TestAbsentIDIsNotAnError(t *testing.T) {
	coll := newAddresses(store.NewMemory(), nil)

	_, ok, err := coll.GetByID("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = coll.Update("missing", map[string]any{"city": "SP"})
	require.NoError(t, err)
	assert.False(t, ok)

	removed, err := coll.Remove("missing")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestSeedingIsLazyAndIdempotent(t *testing.T) {
	mem := store.NewMemory()
	seed := []entity.Address{{Base: entity.Base{ID: "seed-1"}, Street: "Av Central"}}

	coll := newAddresses(mem, seed)
	all, err := coll.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "seed-1", all[0].ID)

	_, err = coll.Create(entity.Address{Street: "Rua Nova"})
	require.NoError(t, err)

	// a fresh collection over the same store must not re-apply the seed
	again := newAddresses(mem, seed)
	all, err = again.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMalformedDataFallsBackToEmpty(t *testing.T) {
	mem := store.NewMemory()
	require.NoError(t, mem.Set("addresses", []byte("{definitely not an array")))

	coll := newAddresses(mem, nil)
	all, err := coll.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all)

	// writes recover the collection
	created, err := coll.Create(entity.Address{Street: "Rua E"})
	require.NoError(t, err)
	got, ok, err := coll.GetByID(created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Rua E", got.Street)
}

func TestCallersGetCopies(t *testing.T) {
	coll := newAddresses(store.NewMemory(), nil)
	created, err := coll.Create(entity.Address{Street: "Rua F"})
	require.NoError(t, err)

	got, ok, err := coll.GetByID(created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	got.Street = "mutated"

	fresh, ok, err := coll.GetByID(created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Rua F", fresh.Street)
}

func TestWrongTypedPatchIsBadPatch(t *testing.T) {
	c := NewCollection[entity.Restaurant, *entity.Restaurant](store.NewMemory(), "restaurants", nil)
	created, err := c.Create(entity.Restaurant{Name: "Cantina", DeliveryFee: 500})
	require.NoError(t, err)

	_, _, err = c.Update(created.ID, map[string]any{"deliveryFee": "cheap"})
	assert.ErrorIs(t, err, ErrBadPatch)

	// nothing written
	got, ok, err := c.GetByID(created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(500), got.DeliveryFee)
}

func TestMutateAbortsWithoutWriting(t *testing.T) {
	c := newAddresses(store.NewMemory(), nil)
	created, err := c.Create(entity.Address{UserID: "u1", Street: "Rua A"})
	require.NoError(t, err)

	boom := assert.AnError
	err = c.Mutate(func(items []entity.Address) ([]entity.Address, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)

	all, err := c.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)
}
