package services

import (
	"errors"

	"backend/cart"
	"backend/repository"
)

var ErrItemUnavailable = errors.New("item is not available")

// CartService fronts the in-memory session registry: it resolves catalog
// items, snapshots their price into the terminal's cart and exposes the
// order-context operations. All mutations run under the registry lock.
type CartService struct {
	Reg       *cart.Registry
	ItemRepo  *repository.ItemRepository
	TaxRateBp int64
}

func NewCartService(reg *cart.Registry, ir *repository.ItemRepository, taxRateBp int64) *CartService {
	return &CartService{Reg: reg, ItemRepo: ir, TaxRateBp: taxRateBp}
}

type CartLineView struct {
	ItemID    uint   `json:"itemId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Qty       int    `json:"qty"`
	LineTotal int64  `json:"lineTotal"`
}

type CartView struct {
	Lines  []CartLineView    `json:"lines"`
	Totals cart.Totals       `json:"totals"`
	Order  cart.OrderContext `json:"order"`
}

func (s *CartService) view(sess *cart.Session) *CartView {
	lines := sess.Cart.Lines()
	out := make([]CartLineView, 0, len(lines))
	for _, l := range lines {
		out = append(out, CartLineView{
			ItemID: l.ItemID, Name: l.Name, UnitPrice: l.UnitPrice,
			Qty: l.Qty, LineTotal: l.Total(),
		})
	}
	return &CartView{Lines: out, Totals: cart.Summarize(sess.Cart, s.TaxRateBp), Order: *sess.Order}
}

func (s *CartService) Get(terminalID string) (*CartView, error) {
	var v *CartView
	err := s.Reg.With(terminalID, func(sess *cart.Session) error {
		v = s.view(sess)
		return nil
	})
	return v, err
}

type AddToCartIn struct {
	ItemID uint `json:"itemId" binding:"required"`
	Qty    int  `json:"qty"`
}

// AddItem leaves quantity validation to Cart.Add.
func (s *CartService) AddItem(terminalID string, in *AddToCartIn) (*CartView, error) {
	// price and name are snapshot here; later catalog edits do not reach
	// lines already in a cart
	b, err := s.ItemRepo.GetItemBasics(in.ItemID)
	if err != nil {
		return nil, err
	}
	if !b.Available {
		return nil, ErrItemUnavailable
	}

	var v *CartView
	err = s.Reg.With(terminalID, func(sess *cart.Session) error {
		if err := sess.Cart.Add(b.ID, b.Name, b.Price, in.Qty); err != nil {
			return err
		}
		v = s.view(sess)
		return nil
	})
	return v, err
}

func (s *CartService) IncreaseQty(terminalID string, itemID uint) (*CartView, error) {
	var v *CartView
	err := s.Reg.With(terminalID, func(sess *cart.Session) error {
		sess.Cart.Increase(itemID)
		v = s.view(sess)
		return nil
	})
	return v, err
}

func (s *CartService) DecreaseQty(terminalID string, itemID uint) (*CartView, error) {
	var v *CartView
	err := s.Reg.With(terminalID, func(sess *cart.Session) error {
		sess.Cart.Decrease(itemID)
		v = s.view(sess)
		return nil
	})
	return v, err
}

func (s *CartService) RemoveItem(terminalID string, itemID uint) (*CartView, error) {
	var v *CartView
	err := s.Reg.With(terminalID, func(sess *cart.Session) error {
		sess.Cart.Remove(itemID)
		v = s.view(sess)
		return nil
	})
	return v, err
}

func (s *CartService) Clear(terminalID string) error {
	return s.Reg.With(terminalID, func(sess *cart.Session) error {
		sess.Cart.Clear()
		return nil
	})
}

type BeginOrderIn struct {
	CustomerName    string `json:"customerName"`
	CustomerAddress string `json:"customerAddress"`
	CustomerContact string `json:"customerContact"`
	TableNumber     string `json:"tableNumber"`
}

func (s *CartService) BeginOrder(terminalID string, in *BeginOrderIn) (*cart.OrderContext, error) {
	var out cart.OrderContext
	err := s.Reg.With(terminalID, func(sess *cart.Session) error {
		sess.Order.Begin(in.CustomerName, in.CustomerAddress, in.CustomerContact, in.TableNumber)
		out = *sess.Order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CartService) BindTable(terminalID, tableNumber string) (*cart.OrderContext, error) {
	var out cart.OrderContext
	err := s.Reg.With(terminalID, func(sess *cart.Session) error {
		sess.Order.BindTable(tableNumber)
		out = *sess.Order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CartService) ResetOrder(terminalID string) error {
	return s.Reg.With(terminalID, func(sess *cart.Session) error {
		sess.Order.Reset()
		return nil
	})
}
