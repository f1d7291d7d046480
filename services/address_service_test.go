package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PedroHenrico2002/Projeto-Ale-sub000/entity"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/repository"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/store"
)

func newAddr(label string) entity.Address {
	return entity.Address{Label: label, Street: "Rua " + label, Number: "1", City: "SP", State: "SP", ZipCode: "01000-000"}
}

func countDefaults(t *testing.T, svc *AddressService, userID string) int {
	t.Helper()
	all, err := svc.ListByUser(userID)
	require.NoError(t, err)
	n := 0
	for _, a := range all {
		if a.IsDefault {
			n++
		}
	}
	return n
}

func TestFirstAddressBecomesDefault(t *testing.T) {
	svc := NewAddressService(testCollections())

	a, err := svc.Create("u1", newAddr("Casa"))
	require.NoError(t, err)
	assert.True(t, a.IsDefault)

	b, err := svc.Create("u1", newAddr("Trabalho"))
	require.NoError(t, err)
	assert.False(t, b.IsDefault)

	assert.Equal(t, 1, countDefaults(t, svc, "u1"))
}

func TestSetDefaultKeepsExactlyOne(t *testing.T) {
	svc := NewAddressService(testCollections())
	_, err := svc.Create("u1", newAddr("Casa"))
	require.NoError(t, err)
	b, err := svc.Create("u1", newAddr("Trabalho"))
	require.NoError(t, err)

	promoted, err := svc.SetDefault("u1", b.ID)
	require.NoError(t, err)
	assert.True(t, promoted.IsDefault)
	assert.Equal(t, 1, countDefaults(t, svc, "u1"))

	all, err := svc.ListByUser("u1")
	require.NoError(t, err)
	for _, a := range all {
		assert.Equal(t, a.ID == b.ID, a.IsDefault)
	}
}

func TestCreateWithDefaultDemotesPrevious(t *testing.T) {
	svc := NewAddressService(testCollections())
	first, err := svc.Create("u1", newAddr("Casa"))
	require.NoError(t, err)

	in := newAddr("Praia")
	in.IsDefault = true
	_, err = svc.Create("u1", in)
	require.NoError(t, err)

	assert.Equal(t, 1, countDefaults(t, svc, "u1"))
	got, ok, err := svc.Addresses.GetByID(first.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, got.IsDefault)
}

func TestDeleteOnlyAddressRejected(t *testing.T) {
	svc := NewAddressService(testCollections())
	a, err := svc.Create("u1", newAddr("Casa"))
	require.NoError(t, err)

	err = svc.Delete("u1", a.ID)
	assert.ErrorIs(t, err, ErrLastAddress)

	// still there
	all, err := svc.ListByUser("u1")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestDeleteDefaultPromotesAnother(t *testing.T) {
	svc := NewAddressService(testCollections())
	a, err := svc.Create("u1", newAddr("Casa"))
	require.NoError(t, err)
	_, err = svc.Create("u1", newAddr("Trabalho"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete("u1", a.ID))

	all, err := svc.ListByUser("u1")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].IsDefault)
}

func TestListFiltersRestaurantAddresses(t *testing.T) {
	colls := testCollections()
	svc := NewAddressService(colls)

	_, err := svc.Create("u1", newAddr("Casa"))
	require.NoError(t, err)
	// a restaurant address sharing the collection must not leak into the
	// user's list
	_, err = colls.Addresses.Create(entity.Address{
		RestaurantID: "r1", Street: "Av Restaurante", IsRestaurantAddress: true, UserID: "u1",
	})
	require.NoError(t, err)

	all, err := svc.ListByUser("u1")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Casa", all[0].Label)
}

func TestUpdateScopedToOwner(t *testing.T) {
	svc := NewAddressService(testCollections())
	a, err := svc.Create("u1", newAddr("Casa"))
	require.NoError(t, err)

	_, err = svc.Update("u2", a.ID, map[string]any{"city": "RJ"})
	assert.ErrorIs(t, err, ErrAddressNotFound)

	updated, err := svc.Update("u1", a.ID, map[string]any{"city": "RJ"})
	require.NoError(t, err)
	assert.Equal(t, "RJ", updated.City)
}

func TestCreateDefaultDemotesInOneWrite(t *testing.T) {
	fs := &flakyStore{Store: store.NewMemory(), writesLeft: 10}
	svc := NewAddressService(repository.NewCollections(fs, repository.SeedData{}))

	_, err := svc.Create("u1", newAddr("Casa"))
	require.NoError(t, err)

	// one write left: storing the new default and demoting the old one
	// must land in that single write
	fs.writesLeft = 1
	b := newAddr("Trabalho")
	b.IsDefault = true
	created, err := svc.Create("u1", b)
	require.NoError(t, err)

	assert.Equal(t, 1, countDefaults(t, svc, "u1"))
	all, err := svc.ListByUser("u1")
	require.NoError(t, err)
	for _, a := range all {
		assert.Equal(t, a.ID == created.ID, a.IsDefault)
	}
}

func TestFailedCreateNeverLeavesTwoDefaults(t *testing.T) {
	fs := &flakyStore{Store: store.NewMemory(), writesLeft: 10}
	svc := NewAddressService(repository.NewCollections(fs, repository.SeedData{}))

	first, err := svc.Create("u1", newAddr("Casa"))
	require.NoError(t, err)

	fs.writesLeft = 0
	b := newAddr("Trabalho")
	b.IsDefault = true
	_, err = svc.Create("u1", b)
	require.Error(t, err)

	fs.writesLeft = 10
	all, err := svc.ListByUser("u1")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, first.ID, all[0].ID)
	assert.True(t, all[0].IsDefault)
}

func TestUpdateToDefaultDemotesInOneWrite(t *testing.T) {
	fs := &flakyStore{Store: store.NewMemory(), writesLeft: 10}
	svc := NewAddressService(repository.NewCollections(fs, repository.SeedData{}))

	_, err := svc.Create("u1", newAddr("Casa"))
	require.NoError(t, err)
	second, err := svc.Create("u1", newAddr("Trabalho"))
	require.NoError(t, err)

	fs.writesLeft = 1
	updated, err := svc.Update("u1", second.ID, map[string]any{"isDefault": true})
	require.NoError(t, err)
	assert.True(t, updated.IsDefault)

	assert.Equal(t, 1, countDefaults(t, svc, "u1"))
	all, err := svc.ListByUser("u1")
	require.NoError(t, err)
	for _, a := range all {
		assert.Equal(t, a.ID == second.ID, a.IsDefault)
	}
}
