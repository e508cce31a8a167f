package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tee(id string, price float64) DisplayProduct {
	return DisplayProduct{ID: id, Name: "Tee " + id, Price: price}
}

func TestCartAdd(t *testing.T) {
	t.Run("appends new line", func(t *testing.T) {
		cart := Cart{}.Add(tee("a", 20), 2)

		require.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Quantity)
	})

	t.Run("merges quantity for same product id", func(t *testing.T) {
		cart := Cart{}.Add(tee("a", 20), 1).Add(tee("a", 20), 3)

		require.Len(t, cart.Items, 1)
		assert.Equal(t, 4, cart.Items[0].Quantity)
	})

	t.Run("non-positive quantity defaults to one", func(t *testing.T) {
		cart := Cart{}.Add(tee("a", 20), 0).Add(tee("b", 10), -5)

		require.Len(t, cart.Items, 2)
		assert.Equal(t, 1, cart.Items[0].Quantity)
		assert.Equal(t, 1, cart.Items[1].Quantity)
	})

	t.Run("does not mutate the receiver", func(t *testing.T) {
		original := Cart{}.Add(tee("a", 20), 1)
		_ = original.Add(tee("a", 20), 5)
		_ = original.Add(tee("b", 10), 1)

		require.Len(t, original.Items, 1)
		assert.Equal(t, 1, original.Items[0].Quantity)
	})
}

func TestCartRemove(t *testing.T) {
	cart := Cart{}.Add(tee("a", 20), 1).Add(tee("b", 10), 2)

	cart = cart.Remove("a")

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "b", cart.Items[0].Product.ID)

	// Removing an absent id is a no-op.
	assert.Equal(t, cart, cart.Remove("missing"))
}

func TestCartUpdateQuantity(t *testing.T) {
	cart := Cart{}.Add(tee("a", 20), 1)

	cart = cart.UpdateQuantity("a", 5)
	assert.Equal(t, 5, cart.Items[0].Quantity)

	// Zero or negative removes the line.
	assert.Empty(t, cart.UpdateQuantity("a", 0).Items)
	assert.Empty(t, cart.UpdateQuantity("a", -1).Items)
}

func TestCartClear(t *testing.T) {
	cart := Cart{}.Add(tee("a", 20), 1).Add(tee("b", 10), 2)

	assert.Empty(t, cart.Clear().Items)
	// Clear is a value transition too.
	assert.Len(t, cart.Items, 2)
}

func TestCartCountAndTotal(t *testing.T) {
	cart := Cart{}.Add(tee("a", 19.99), 2).Add(tee("b", 10), 1)

	assert.Equal(t, 3, cart.Count())
	assert.InDelta(t, 49.98, cart.Total(), 0.001)
}

func TestCartProviderItems(t *testing.T) {
	cart := Cart{}.
		Add(tee("spray-lavender", 12), 1).
		Add(tee(ProviderIDPrefix+"101", 25), 2)

	assert.True(t, cart.HasProviderItems())

	provider := cart.ProviderItems()
	require.Len(t, provider, 1)
	assert.Equal(t, ProviderIDPrefix+"101", provider[0].Product.ID)

	localOnly := Cart{}.Add(tee("spray-lavender", 12), 1)
	assert.False(t, localOnly.HasProviderItems())
	assert.Empty(t, localOnly.ProviderItems())
}
