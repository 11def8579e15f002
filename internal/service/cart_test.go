package service

import (
	"fmt"
	"sync"
	"testing"

	"github.com/forkful/cart-service/internal/domain/model"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

var (
	testCurry = model.MenuOffering{
		ID:        "dish-madras-curry",
		Name:      "Madras Curry",
		BasePrice: model.MoneyFromMinorUnits(1250, currency.USD),
	}
	testNaan = model.MenuOffering{
		ID:        "dish-garlic-naan",
		Name:      "Garlic Naan",
		BasePrice: model.MoneyFromMinorUnits(350, currency.USD),
	}
	testLassi = model.MenuOffering{
		ID:        "drink-mango-lassi",
		Name:      "Mango Lassi",
		BasePrice: model.MoneyFromMinorUnits(425, currency.USD),
	}
)

// assertAggregates recomputes both totals from the snapshot lines and checks
// they match the published aggregates.
func assertAggregates(t *testing.T, snapshot model.CartSnapshot) {
	t.Helper()

	items := 0
	amount := model.ZeroMoney(currency.USD)
	for _, line := range snapshot.Lines {
		require.Positive(t, line.Quantity, "no line may sit at zero or negative quantity")
		items += line.Quantity
		sum, err := amount.Add(line.LineTotal())
		require.NoError(t, err)
		amount = sum
	}

	assert.Equal(t, items, snapshot.TotalItems, "total items must equal the sum of line quantities")
	assert.True(t, amount.Equal(snapshot.TotalAmount),
		"total amount %s must equal the sum of line totals %s", snapshot.TotalAmount, amount)
}

func TestCart_AddItem(t *testing.T) {
	t.Run("first add creates a line", func(t *testing.T) {
		cart := NewCart(currency.USD)

		line, err := cart.AddItem(testCurry, 2, nil)
		require.NoError(t, err)

		assert.Equal(t, "dish-madras-curry", line.OfferingID)
		assert.Equal(t, 2, line.Quantity)
		assert.True(t, line.UnitPrice.Equal(testCurry.BasePrice))

		snapshot := cart.Snapshot()
		assert.Len(t, snapshot.Lines, 1)
		assert.Equal(t, 2, snapshot.TotalItems)
		assertAggregates(t, snapshot)
	})

	t.Run("same offering merges into one line", func(t *testing.T) {
		cart := NewCart(currency.USD)

		_, err := cart.AddItem(testCurry, 2, nil)
		require.NoError(t, err)
		line, err := cart.AddItem(testCurry, 3, nil)
		require.NoError(t, err)

		assert.Equal(t, 5, line.Quantity)

		snapshot := cart.Snapshot()
		assert.Len(t, snapshot.Lines, 1)
		assert.Equal(t, 5, snapshot.TotalItems)
		assert.True(t, snapshot.TotalAmount.Equal(model.MoneyFromMinorUnits(6250, currency.USD)))
		assertAggregates(t, snapshot)
	})

	t.Run("different customizations stay separate", func(t *testing.T) {
		cart := NewCart(currency.USD)

		_, err := cart.AddItem(testCurry, 1, &model.Customization{Size: "large"})
		require.NoError(t, err)
		_, err = cart.AddItem(testCurry, 1, &model.Customization{Size: "small"})
		require.NoError(t, err)

		snapshot := cart.Snapshot()
		assert.Len(t, snapshot.Lines, 2)
		assertAggregates(t, snapshot)
	})

	t.Run("equivalent customization merges", func(t *testing.T) {
		cart := NewCart(currency.USD)

		custom := &model.Customization{Size: "large", SpiceLevel: "hot"}
		_, err := cart.AddItem(testCurry, 1, custom)
		require.NoError(t, err)
		_, err = cart.AddItem(testCurry, 2, &model.Customization{Size: "large", SpiceLevel: "hot"})
		require.NoError(t, err)

		snapshot := cart.Snapshot()
		require.Len(t, snapshot.Lines, 1)
		assert.Equal(t, 3, snapshot.Lines[0].Quantity)
		assertAggregates(t, snapshot)
	})

	t.Run("plain and customized lines of one offering coexist", func(t *testing.T) {
		cart := NewCart(currency.USD)

		_, err := cart.AddItem(testCurry, 1, nil)
		require.NoError(t, err)
		_, err = cart.AddItem(testCurry, 1, &model.Customization{SpiceLevel: "hot"})
		require.NoError(t, err)

		assert.Len(t, cart.Snapshot().Lines, 2)
	})

	t.Run("customized price is normalized per unit", func(t *testing.T) {
		cart := NewCart(currency.USD)

		custom := &model.Customization{
			Size:               "large",
			ConfiguredQuantity: 2,
			ComputedTotal:      model.MoneyFromMinorUnits(2750, currency.USD),
		}
		line, err := cart.AddItem(testCurry, 2, custom)
		require.NoError(t, err)

		assert.True(t, line.UnitPrice.Equal(model.MoneyFromMinorUnits(1375, currency.USD)))
		assert.True(t, line.LineTotal().Equal(model.MoneyFromMinorUnits(2750, currency.USD)))
		assertAggregates(t, cart.Snapshot())
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		cart := NewCart(currency.USD)
		_, err := cart.AddItem(testCurry, 0, nil)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		assert.Empty(t, cart.Snapshot().Lines)
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		cart := NewCart(currency.USD)
		_, err := cart.AddItem(testCurry, -3, nil)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("offering without ID rejected", func(t *testing.T) {
		cart := NewCart(currency.USD)
		_, err := cart.AddItem(model.MenuOffering{Name: "Nameless"}, 1, nil)
		assert.ErrorIs(t, err, ErrMissingOfferingID)
	})

	t.Run("currency mismatch rejected", func(t *testing.T) {
		cart := NewCart(currency.EUR)
		_, err := cart.AddItem(testCurry, 1, nil)
		assert.ErrorIs(t, err, ErrCurrencyMismatch)
	})

	t.Run("captures customization on the line", func(t *testing.T) {
		cart := NewCart(currency.USD)

		custom := &model.Customization{Size: "large", SpecialInstructions: "no onions"}
		line, err := cart.AddItem(testCurry, 1, custom)
		require.NoError(t, err)

		require.NotNil(t, line.Customization)
		assert.Equal(t, "large", line.Customization.Size)

		// The cart holds its own copy; later caller mutation is invisible.
		custom.Size = "small"
		snapshot := cart.Snapshot()
		assert.Equal(t, "large", snapshot.Lines[0].Customization.Size)
	})
}

func TestCart_RemoveLine(t *testing.T) {
	t.Run("removes line and adjusts totals", func(t *testing.T) {
		cart := NewCart(currency.USD)
		line, err := cart.AddItem(testCurry, 2, nil)
		require.NoError(t, err)
		_, err = cart.AddItem(testNaan, 1, nil)
		require.NoError(t, err)

		assert.True(t, cart.RemoveLine(line.IdentityKey))

		snapshot := cart.Snapshot()
		assert.Len(t, snapshot.Lines, 1)
		assert.Equal(t, "dish-garlic-naan", snapshot.Lines[0].OfferingID)
		assertAggregates(t, snapshot)
	})

	t.Run("removing last line yields empty cart with zero totals", func(t *testing.T) {
		cart := NewCart(currency.USD)
		line, err := cart.AddItem(testCurry, 4, nil)
		require.NoError(t, err)

		assert.True(t, cart.RemoveLine(line.IdentityKey))

		snapshot := cart.Snapshot()
		assert.Empty(t, snapshot.Lines)
		assert.Zero(t, snapshot.TotalItems)
		assert.True(t, snapshot.TotalAmount.IsZero())
	})

	t.Run("removing absent key is a no-op", func(t *testing.T) {
		cart := NewCart(currency.USD)
		_, err := cart.AddItem(testCurry, 1, nil)
		require.NoError(t, err)

		assert.False(t, cart.RemoveLine("plain:never-added"))
		assert.False(t, cart.RemoveLine("plain:never-added"), "repeat removal stays a no-op")

		snapshot := cart.Snapshot()
		assert.Len(t, snapshot.Lines, 1)
		assertAggregates(t, snapshot)
	})
}

func TestCart_SetQuantity(t *testing.T) {
	t.Run("raises and lowers quantity", func(t *testing.T) {
		cart := NewCart(currency.USD)
		line, err := cart.AddItem(testCurry, 2, nil)
		require.NoError(t, err)

		assert.True(t, cart.SetQuantity(line.IdentityKey, 7))
		snapshot := cart.Snapshot()
		assert.Equal(t, 7, snapshot.Lines[0].Quantity)
		assertAggregates(t, snapshot)

		assert.True(t, cart.SetQuantity(line.IdentityKey, 1))
		snapshot = cart.Snapshot()
		assert.Equal(t, 1, snapshot.Lines[0].Quantity)
		assertAggregates(t, snapshot)
	})

	t.Run("quantity edits never re-price", func(t *testing.T) {
		cart := NewCart(currency.USD)
		custom := &model.Customization{
			Size:               "large",
			ConfiguredQuantity: 2,
			ComputedTotal:      model.MoneyFromMinorUnits(2750, currency.USD),
		}
		line, err := cart.AddItem(testCurry, 2, custom)
		require.NoError(t, err)

		assert.True(t, cart.SetQuantity(line.IdentityKey, 5))

		snapshot := cart.Snapshot()
		assert.True(t, snapshot.Lines[0].UnitPrice.Equal(model.MoneyFromMinorUnits(1375, currency.USD)))
		assert.True(t, snapshot.TotalAmount.Equal(model.MoneyFromMinorUnits(6875, currency.USD)))
	})

	t.Run("zero removes the line", func(t *testing.T) {
		cart := NewCart(currency.USD)
		line, err := cart.AddItem(testCurry, 2, nil)
		require.NoError(t, err)

		assert.True(t, cart.SetQuantity(line.IdentityKey, 0))
		assert.Empty(t, cart.Snapshot().Lines)
	})

	t.Run("negative removes the line", func(t *testing.T) {
		cart := NewCart(currency.USD)
		line, err := cart.AddItem(testCurry, 2, nil)
		require.NoError(t, err)

		assert.True(t, cart.SetQuantity(line.IdentityKey, -1))
		assert.Empty(t, cart.Snapshot().Lines)
	})

	t.Run("unknown key returns false", func(t *testing.T) {
		cart := NewCart(currency.USD)
		assert.False(t, cart.SetQuantity("plain:ghost", 3))
	})
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart(currency.USD)
	_, err := cart.AddItem(testCurry, 2, nil)
	require.NoError(t, err)
	_, err = cart.AddItem(testNaan, 3, nil)
	require.NoError(t, err)

	cart.Clear()

	snapshot := cart.Snapshot()
	assert.Empty(t, snapshot.Lines)
	assert.Zero(t, snapshot.TotalItems)
	assert.True(t, snapshot.TotalAmount.IsZero())

	// The cart stays usable after a clear.
	_, err = cart.AddItem(testLassi, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Snapshot().TotalItems)
}

func TestCart_Quantity(t *testing.T) {
	cart := NewCart(currency.USD)
	custom := &model.Customization{SpiceLevel: "hot"}
	_, err := cart.AddItem(testCurry, 2, custom)
	require.NoError(t, err)

	assert.Equal(t, 2, cart.QuantityForOffering("dish-madras-curry", &model.Customization{SpiceLevel: "hot"}))
	assert.Zero(t, cart.QuantityForOffering("dish-madras-curry", nil), "plain variant is a different line")
	assert.Zero(t, cart.QuantityForOffering("dish-garlic-naan", nil))
	assert.Zero(t, cart.QuantityForIdentity("plain:ghost"))
}

func TestCart_InsertionOrder(t *testing.T) {
	cart := NewCart(currency.USD)

	_, err := cart.AddItem(testCurry, 1, nil)
	require.NoError(t, err)
	naanLine, err := cart.AddItem(testNaan, 1, nil)
	require.NoError(t, err)
	_, err = cart.AddItem(testLassi, 1, nil)
	require.NoError(t, err)

	// Editing the first line must not move it.
	_, err = cart.AddItem(testCurry, 5, nil)
	require.NoError(t, err)

	order := func() []string {
		snapshot := cart.Snapshot()
		ids := make([]string, 0, len(snapshot.Lines))
		for _, line := range snapshot.Lines {
			ids = append(ids, line.OfferingID)
		}
		return ids
	}

	want := []string{"dish-madras-curry", "dish-garlic-naan", "drink-mango-lassi"}
	if diff := cmp.Diff(want, order()); diff != "" {
		t.Errorf("line order mismatch (-want +got):\n%s", diff)
	}

	// Removal closes the gap without reordering the survivors.
	require.True(t, cart.RemoveLine(naanLine.IdentityKey))
	want = []string{"dish-madras-curry", "drink-mango-lassi"}
	if diff := cmp.Diff(want, order()); diff != "" {
		t.Errorf("line order after removal (-want +got):\n%s", diff)
	}

	// Re-adding a removed offering appends it at the end.
	_, err = cart.AddItem(testNaan, 1, nil)
	require.NoError(t, err)
	want = []string{"dish-madras-curry", "drink-mango-lassi", "dish-garlic-naan"}
	if diff := cmp.Diff(want, order()); diff != "" {
		t.Errorf("line order after re-add (-want +got):\n%s", diff)
	}
}

func TestCart_SnapshotIsACopy(t *testing.T) {
	cart := NewCart(currency.USD)
	_, err := cart.AddItem(testCurry, 2, nil)
	require.NoError(t, err)

	snapshot := cart.Snapshot()
	snapshot.Lines[0].Quantity = 99
	snapshot.TotalItems = 99

	fresh := cart.Snapshot()
	assert.Equal(t, 2, fresh.Lines[0].Quantity)
	assert.Equal(t, 2, fresh.TotalItems)
}

func TestCart_ConcurrentMutation(t *testing.T) {
	cart := NewCart(currency.USD)
	offerings := []model.MenuOffering{testCurry, testNaan, testLassi}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			offering := offerings[n%len(offerings)]
			for j := 0; j < 50; j++ {
				_, err := cart.AddItem(offering, 1, nil)
				assert.NoError(t, err)
			}
		}(i)
	}
	wg.Wait()

	snapshot := cart.Snapshot()
	assert.Equal(t, 20*50, snapshot.TotalItems)
	assert.Len(t, snapshot.Lines, len(offerings))
	assertAggregates(t, snapshot)
}

func TestCart_MixedOperationSequence(t *testing.T) {
	cart := NewCart(currency.USD)

	curry, err := cart.AddItem(testCurry, 2, nil)
	require.NoError(t, err)
	hotCurry, err := cart.AddItem(testCurry, 1, &model.Customization{SpiceLevel: "hot"})
	require.NoError(t, err)
	naan, err := cart.AddItem(testNaan, 4, nil)
	require.NoError(t, err)

	require.True(t, cart.SetQuantity(curry.IdentityKey, 1))
	require.True(t, cart.RemoveLine(naan.IdentityKey))
	_, err = cart.AddItem(testLassi, 2, nil)
	require.NoError(t, err)
	require.True(t, cart.SetQuantity(hotCurry.IdentityKey, 3))

	snapshot := cart.Snapshot()
	require.Len(t, snapshot.Lines, 3)
	assert.Equal(t, 1+3+2, snapshot.TotalItems)
	// 1*1250 + 3*1250 + 2*425
	assert.True(t, snapshot.TotalAmount.Equal(model.MoneyFromMinorUnits(5850, currency.USD)),
		fmt.Sprintf("got %s", snapshot.TotalAmount))
	assertAggregates(t, snapshot)
}
