package cart

// Totals is the financial summary shown on the checkout screen. All values
// are minor currency units.
type Totals struct {
	Subtotal   int64 `json:"subtotal"`
	Tax        int64 `json:"tax"`
	GrandTotal int64 `json:"grandTotal"`
}

// Subtotal sums line totals. Empty cart yields 0.
func Subtotal(c *Cart) int64 {
	var sum int64
	for _, l := range c.lines {
		sum += l.Total()
	}
	return sum
}

// Tax applies a rate given in basis points (250 = 2.5%) and rounds half-up
// to the minor unit. Integer arithmetic only; money never touches floats.
func Tax(subtotal, rateBp int64) int64 {
	return (subtotal*rateBp + 5000) / 10000
}

// Summarize recomputes all derived values from the cart. Pure: same cart,
// same result, safe to call on every request.
func Summarize(c *Cart, rateBp int64) Totals {
	sub := Subtotal(c)
	tax := Tax(sub, rateBp)
	return Totals{Subtotal: sub, Tax: tax, GrandTotal: sub + tax}
}
