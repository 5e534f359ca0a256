package cart

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// OrderContext is the customer/table metadata of one checkout session. It is
// deliberately decoupled from the Cart: the two are joined only when the
// order is submitted.
type OrderContext struct {
	OrderCode       string `json:"orderCode"`
	TableNumber     string `json:"tableNumber"`
	CustomerName    string `json:"customerName"`
	CustomerAddress string `json:"customerAddress"`
	CustomerContact string `json:"customerContact"`
}

// Begin captures customer details and mints a fresh order code, overwriting
// any previous in-progress context. A previously bound table survives unless
// the caller passes a new one.
func (o *OrderContext) Begin(name, address, contact, table string) {
	o.OrderCode = newOrderCode()
	o.CustomerName = name
	o.CustomerAddress = address
	o.CustomerContact = contact
	if table != "" {
		o.TableNumber = table
	}
}

// BindTable can be called before or after Begin; it never mints an order code.
func (o *OrderContext) BindTable(table string) {
	o.TableNumber = table
}

// Reset clears all fields. The cart of the same session is untouched.
func (o *OrderContext) Reset() {
	*o = OrderContext{}
}

func (o *OrderContext) Started() bool {
	return o.OrderCode != ""
}

// newOrderCode returns POS-<yymmdd>-<8 hex chars>. A uuid suffix instead of a
// bare timestamp keeps codes unique even when two orders begin in the same
// millisecond; the date prefix keeps receipts human-sortable.
func newOrderCode() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return "POS-" + time.Now().Format("060102") + "-" + suffix
}
