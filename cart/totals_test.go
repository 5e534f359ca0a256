package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_EmptyCart(t *testing.T) {
	got := Summarize(New(), 250)
	assert.Equal(t, Totals{}, got)
}

func TestSummarize_SingleLine(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(1, "Pilau", 2000, 3))

	got := Summarize(c, 250)
	assert.Equal(t, int64(6000), got.Subtotal)
	assert.Equal(t, int64(150), got.Tax)
	assert.Equal(t, int64(6150), got.GrandTotal)
}

func TestSubtotal_TracksMutations(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(1, "Pilau", 10000, 2))
	require.NoError(t, c.Add(2, "Chai", 1000, 1))
	assert.Equal(t, int64(21000), Subtotal(c))

	c.Decrease(1)
	assert.Equal(t, int64(11000), Subtotal(c))

	c.Remove(2)
	assert.Equal(t, int64(10000), Subtotal(c))
}

func TestTax_RoundsHalfUp(t *testing.T) {
	// 20 * 2.5% = 0.5 -> rounds up to 1
	assert.Equal(t, int64(1), Tax(20, 250))
	// 10 * 2.5% = 0.25 -> rounds down to 0
	assert.Equal(t, int64(0), Tax(10, 250))
	// exact values stay exact
	assert.Equal(t, int64(25), Tax(1000, 250))
	assert.Equal(t, int64(0), Tax(0, 250))
}

func TestSummarize_ZeroRate(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(1, "Pilau", 5000, 1))

	got := Summarize(c, 0)
	assert.Equal(t, int64(5000), got.Subtotal)
	assert.Equal(t, int64(0), got.Tax)
	assert.Equal(t, int64(5000), got.GrandTotal)
}
