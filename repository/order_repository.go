package repository

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

// CodeExists reports whether an order with this code was already persisted.
func (r *OrderRepository) CodeExists(code string) (bool, error) {
	var n int64
	err := r.DB.Model(&entity.Order{}).Where("code = ?", code).Count(&n).Error
	return n > 0, err
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Model(&entity.OrderItem{}).
		Select("id, item_name, qty, unit_price, total, item_id, order_id").
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}

// OrderSummary is the list projection; line items come only with the detail.
type OrderSummary struct {
	ID          uint      `json:"id"`
	Code        string    `json:"code"`
	TableNumber string    `json:"tableNumber"`
	Total       int64     `json:"total"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type OrderFilter struct {
	Status string
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

func (r *OrderRepository) List(f OrderFilter) ([]OrderSummary, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}

	q := r.DB.Model(&entity.Order{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []OrderSummary
	err := q.Select("id, code, table_number, total, status, created_at").
		Order("id DESC").
		Offset((f.Page - 1) * f.Limit).Limit(f.Limit).
		Scan(&out).Error
	return out, total, err
}

func (r *OrderRepository) UpdateStatus(tx *gorm.DB, orderID uint, status string) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("status", status).Error
}
