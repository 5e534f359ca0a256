package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_MergesSameItem(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(1, "Pilau", 10000, 2))
	require.NoError(t, c.Add(1, "Pilau", 10000, 1))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Qty)
	assert.Equal(t, int64(30000), lines[0].Total())
}

func TestAdd_RejectsNonPositiveQty(t *testing.T) {
	c := New()
	assert.ErrorIs(t, c.Add(1, "Chips", 3000, 0), ErrInvalidQty)
	assert.ErrorIs(t, c.Add(1, "Chips", 3000, -2), ErrInvalidQty)
	assert.Equal(t, 0, c.Len())
}

func TestAdd_PreservesInsertionOrder(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(2, "Chai", 1000, 1))
	require.NoError(t, c.Add(1, "Pilau", 10000, 1))
	require.NoError(t, c.Add(2, "Chai", 1000, 1))

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, uint(2), lines[0].ItemID)
	assert.Equal(t, uint(1), lines[1].ItemID)
}

func TestDecrease_FloorsAtOne(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(1, "Pilau", 10000, 1))

	c.Decrease(1)
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Qty)
}

func TestDecrease_LowersAboveOne(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(1, "Pilau", 10000, 3))

	c.Decrease(1)
	assert.Equal(t, 2, c.Lines()[0].Qty)
}

func TestIncrease(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(1, "Pilau", 10000, 1))

	c.Increase(1)
	c.Increase(1)
	assert.Equal(t, 3, c.Lines()[0].Qty)

	// absent line is a no-op
	c.Increase(99)
	assert.Equal(t, 1, c.Len())
}

func TestRemove_IsTotal(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(1, "Pilau", 10000, 5))
	require.NoError(t, c.Add(2, "Chai", 1000, 1))

	c.Remove(1)
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, uint(2), lines[0].ItemID)

	// removing again is a no-op, not an error
	c.Remove(1)
	assert.Equal(t, 1, c.Len())
}

func TestClear_ResetsFully(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(1, "Pilau", 10000, 2))
	require.NoError(t, c.Add(2, "Chai", 1000, 4))

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, int64(0), Subtotal(c))
}

func TestLines_ReturnsCopy(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(1, "Pilau", 10000, 2))

	lines := c.Lines()
	lines[0].Qty = 99
	assert.Equal(t, 2, c.Lines()[0].Qty)
}
