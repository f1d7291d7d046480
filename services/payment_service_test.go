package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PedroHenrico2002/Projeto-Ale-sub000/entity"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/repository"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/store"
)

func TestPaymentDefaultLifecycle(t *testing.T) {
	svc := NewPaymentService(testCollections())

	card, err := svc.Create("u1", entity.PaymentMethod{Kind: "card", Label: "Visa", Last4: "4242"})
	require.NoError(t, err)
	assert.True(t, card.IsDefault)

	pix, err := svc.Create("u1", entity.PaymentMethod{Kind: "pix", Label: "Pix"})
	require.NoError(t, err)
	assert.False(t, pix.IsDefault)

	promoted, err := svc.SetDefault("u1", pix.ID)
	require.NoError(t, err)
	assert.True(t, promoted.IsDefault)

	all, err := svc.ListByUser("u1")
	require.NoError(t, err)
	defaults := 0
	for _, p := range all {
		if p.IsDefault {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)

	// deleting the default promotes the remaining one
	require.NoError(t, svc.Delete("u1", pix.ID))
	all, err = svc.ListByUser("u1")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].IsDefault)

	// unlike addresses, the last payment method may go
	require.NoError(t, svc.Delete("u1", all[0].ID))
	all, err = svc.ListByUser("u1")
	require.NoError(t, err)
	assert.Empty(t, all)

	assert.ErrorIs(t, svc.Delete("u1", "ghost"), ErrPaymentMethodNotFound)
}

func TestPaymentMethodsScopedPerUser(t *testing.T) {
	svc := NewPaymentService(testCollections())
	mine, err := svc.Create("u1", entity.PaymentMethod{Kind: "cash", Label: "Dinheiro"})
	require.NoError(t, err)

	_, err = svc.SetDefault("u2", mine.ID)
	assert.ErrorIs(t, err, ErrPaymentMethodNotFound)

	other, err := svc.ListByUser("u2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestPaymentCreateDefaultDemotesInOneWrite(t *testing.T) {
	fs := &flakyStore{Store: store.NewMemory(), writesLeft: 10}
	svc := NewPaymentService(repository.NewCollections(fs, repository.SeedData{}))

	_, err := svc.Create("u1", entity.PaymentMethod{Kind: "cash", Label: "Dinheiro"})
	require.NoError(t, err)

	fs.writesLeft = 1
	created, err := svc.Create("u1", entity.PaymentMethod{
		Kind: "card", Label: "Visa", Last4: "4242", IsDefault: true,
	})
	require.NoError(t, err)

	all, err := svc.ListByUser("u1")
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, p := range all {
		assert.Equal(t, p.ID == created.ID, p.IsDefault)
	}
}

func TestPaymentFailedCreateNeverLeavesTwoDefaults(t *testing.T) {
	fs := &flakyStore{Store: store.NewMemory(), writesLeft: 10}
	svc := NewPaymentService(repository.NewCollections(fs, repository.SeedData{}))

	first, err := svc.Create("u1", entity.PaymentMethod{Kind: "cash", Label: "Dinheiro"})
	require.NoError(t, err)

	fs.writesLeft = 0
	_, err = svc.Create("u1", entity.PaymentMethod{Kind: "card", Label: "Visa", IsDefault: true})
	require.Error(t, err)

	fs.writesLeft = 10
	all, err := svc.ListByUser("u1")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, first.ID, all[0].ID)
	assert.True(t, all[0].IsDefault)
}
