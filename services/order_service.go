package services

import (
	"errors"

	"backend/cart"
	"backend/entity"
	"backend/repository"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrCartEmpty       = errors.New("cart is empty")
	ErrOrderNotStarted = errors.New("order not started")
	ErrOrderConsumed   = errors.New("order already submitted, begin a new order")
	ErrBadTransition   = errors.New("invalid status transition")
)

// Charger is the outbound transaction collaborator. *PaymentClient satisfies
// it; tests plug in fakes.
type Charger interface {
	Charge(req *ChargeRequest) error
}

type OrderService struct {
	DB        *gorm.DB
	Reg       *cart.Registry
	Repo      *repository.OrderRepository
	TableRepo *repository.TableRepository
	Payments  Charger
	Notifier  OrderNotifier
	TaxRateBp int64
}

func NewOrderService(
	db *gorm.DB,
	reg *cart.Registry,
	repo *repository.OrderRepository,
	tableRepo *repository.TableRepository,
	payments Charger,
	notifier OrderNotifier,
	taxRateBp int64,
) *OrderService {
	if notifier == nil {
		notifier = NopNotifier
	}
	return &OrderService{
		DB: db, Reg: reg, Repo: repo, TableRepo: tableRepo,
		Payments: payments, Notifier: notifier, TaxRateBp: taxRateBp,
	}
}

type CheckoutReq struct {
	Status string `json:"status" binding:"required,oneof=paid pending"`
}

type CheckoutRes struct {
	ID    uint   `json:"id"`
	Code  string `json:"code"`
	Total int64  `json:"total"`
}

// Checkout joins the terminal's cart and order context into one submitted
// order. status=paid charges the external API before anything is written;
// any failure on that path leaves cart and context untouched so the cashier
// can retry the same submission. The cart is cleared only after the DB
// transaction commits; the order context stays for an explicit reset.
func (s *OrderService) Checkout(terminalID string, userID uint, req *CheckoutReq) (*CheckoutRes, error) {
	var out CheckoutRes

	err := s.Reg.With(terminalID, func(sess *cart.Session) error {
		lines := sess.Cart.Lines()
		if len(lines) == 0 {
			return ErrCartEmpty
		}
		if !sess.Order.Started() {
			return ErrOrderNotStarted
		}
		// the context survives a successful checkout, so its code may
		// already name a persisted order; refuse before any charge
		consumed, err := s.Repo.CodeExists(sess.Order.OrderCode)
		if err != nil {
			return err
		}
		if consumed {
			return ErrOrderConsumed
		}

		totals := cart.Summarize(sess.Cart, s.TaxRateBp)

		if req.Status == entity.OrderStatusPaid {
			charge := &ChargeRequest{
				Items:       make([]ChargeItem, 0, len(lines)),
				TotalAmount: totals.GrandTotal,
				CustomerDetails: CustomerDetails{
					Name:  sess.Order.CustomerName,
					Phone: sess.Order.CustomerContact,
				},
				Status: req.Status,
			}
			for _, l := range lines {
				charge.Items = append(charge.Items, ChargeItem{
					Item: l.ItemID, Quantity: l.Qty, Price: l.UnitPrice,
				})
			}
			if err := s.Payments.Charge(charge); err != nil {
				log.WithFields(log.Fields{
					"terminal": terminalID,
					"code":     sess.Order.OrderCode,
				}).WithError(err).Warn("payment failed, cart preserved")
				return err
			}
		}

		order := entity.Order{
			Code:            sess.Order.OrderCode,
			Subtotal:        totals.Subtotal,
			Tax:             totals.Tax,
			Total:           totals.GrandTotal,
			Status:          req.Status,
			TableNumber:     sess.Order.TableNumber,
			CustomerName:    sess.Order.CustomerName,
			CustomerAddress: sess.Order.CustomerAddress,
			CustomerContact: sess.Order.CustomerContact,
			UserID:          userID,
		}

		err = s.DB.Transaction(func(tx *gorm.DB) error {
			if err := s.Repo.CreateOrder(tx, &order); err != nil {
				return err
			}
			for _, l := range lines {
				oi := entity.OrderItem{
					ItemName: l.Name, Qty: l.Qty, UnitPrice: l.UnitPrice,
					Total: l.Total(), OrderID: order.ID, ItemID: l.ItemID,
				}
				if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
					return err
				}
			}
			if order.TableNumber != "" {
				if err := s.TableRepo.SetOccupied(tx, order.TableNumber, true); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}

		sess.Cart.Clear()

		out = CheckoutRes{ID: order.ID, Code: order.Code, Total: order.Total}
		s.Notifier.Notify(OrderEvent{
			Type: "order_created", OrderID: order.ID, Code: order.Code,
			TableNumber: order.TableNumber, Status: order.Status, Total: order.Total,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *OrderService) List(f repository.OrderFilter) ([]repository.OrderSummary, int64, error) {
	return s.Repo.List(f)
}

type OrderDetail struct {
	Order entity.Order       `json:"order"`
	Items []entity.OrderItem `json:"items"`
}

func (s *OrderService) Detail(orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}

// pending orders can be paid, completed (pay at counter) or cancelled;
// paid orders can only complete. Terminal states never move again.
var statusTransitions = map[string][]string{
	entity.OrderStatusPending: {entity.OrderStatusPaid, entity.OrderStatusCompleted, entity.OrderStatusCancelled},
	entity.OrderStatusPaid:    {entity.OrderStatusCompleted},
}

func canTransition(from, to string) bool {
	for _, s := range statusTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func (s *OrderService) UpdateStatus(orderID uint, status string) error {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return err
	}
	if !canTransition(o.Status, status) {
		return ErrBadTransition
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.UpdateStatus(tx, o.ID, status); err != nil {
			return err
		}
		// completed or cancelled frees the table
		done := status == entity.OrderStatusCompleted || status == entity.OrderStatusCancelled
		if done && o.TableNumber != "" {
			if err := s.TableRepo.SetOccupied(tx, o.TableNumber, false); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.Notifier.Notify(OrderEvent{
		Type: "order_status_changed", OrderID: o.ID, Code: o.Code,
		TableNumber: o.TableNumber, Status: status, Total: o.Total,
	})
	return nil
}
