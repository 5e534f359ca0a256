package cart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBegin_MintsUniqueCodes(t *testing.T) {
	seen := make(map[string]bool)
	var o OrderContext
	for i := 0; i < 1000; i++ {
		o.Begin("Asha", "", "", "")
		require.True(t, strings.HasPrefix(o.OrderCode, "POS-"))
		require.False(t, seen[o.OrderCode], "duplicate order code %s", o.OrderCode)
		seen[o.OrderCode] = true
	}
}

func TestBegin_OverwritesPreviousContext(t *testing.T) {
	var o OrderContext
	o.Begin("Asha", "Kariakoo", "0700000000", "T3")
	first := o.OrderCode

	o.Begin("Juma", "", "", "")
	assert.NotEqual(t, first, o.OrderCode)
	assert.Equal(t, "Juma", o.CustomerName)
	assert.Empty(t, o.CustomerAddress)
	// table binding survives a re-begin without a table
	assert.Equal(t, "T3", o.TableNumber)
}

func TestBindTable_BeforeBegin(t *testing.T) {
	var o OrderContext
	o.BindTable("T7")
	assert.Equal(t, "T7", o.TableNumber)
	assert.False(t, o.Started())

	o.Begin("", "", "", "")
	assert.Equal(t, "T7", o.TableNumber)
	assert.True(t, o.Started())
}

func TestReset_DoesNotTouchCart(t *testing.T) {
	reg := NewRegistry()
	err := reg.With("counter-1", func(s *Session) error {
		require.NoError(t, s.Cart.Add(1, "Pilau", 10000, 2))
		s.Order.Begin("Asha", "Kariakoo", "0700000000", "T3")
		s.Order.Reset()

		assert.Equal(t, OrderContext{}, *s.Order)
		assert.Equal(t, 1, s.Cart.Len())
		return nil
	})
	require.NoError(t, err)
}

func TestClear_DoesNotTouchOrderContext(t *testing.T) {
	reg := NewRegistry()
	err := reg.With("counter-1", func(s *Session) error {
		require.NoError(t, s.Cart.Add(1, "Pilau", 10000, 2))
		s.Order.Begin("Asha", "Kariakoo", "0700000000", "T3")
		s.Cart.Clear()

		assert.Equal(t, 0, s.Cart.Len())
		assert.Equal(t, "Asha", s.Order.CustomerName)
		assert.True(t, s.Order.Started())
		return nil
	})
	require.NoError(t, err)
}

func TestRegistry_SessionsAreIsolated(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.With("counter-1", func(s *Session) error {
		return s.Cart.Add(1, "Pilau", 10000, 1)
	}))
	require.NoError(t, reg.With("counter-2", func(s *Session) error {
		assert.Equal(t, 0, s.Cart.Len())
		return nil
	}))
}
