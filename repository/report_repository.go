package repository

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type ReportRepository struct{ DB *gorm.DB }

func NewReportRepository(db *gorm.DB) *ReportRepository { return &ReportRepository{DB: db} }

// Cancelled orders never count toward sales.
func (r *ReportRepository) salesScope(from, to time.Time) *gorm.DB {
	return r.DB.Model(&entity.Order{}).
		Where("status <> ?", entity.OrderStatusCancelled).
		Where("created_at >= ? AND created_at < ?", from, to)
}

type SalesTotals struct {
	OrderCount int64 `json:"orderCount"`
	Gross      int64 `json:"gross"`
	Tax        int64 `json:"tax"`
}

func (r *ReportRepository) SalesTotals(from, to time.Time) (*SalesTotals, error) {
	var out SalesTotals
	err := r.salesScope(from, to).
		Select("COUNT(id) AS order_count, COALESCE(SUM(total),0) AS gross, COALESCE(SUM(tax),0) AS tax").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

type DailySales struct {
	Day        string `json:"day"`
	OrderCount int64  `json:"orderCount"`
	Gross      int64  `json:"gross"`
}

func (r *ReportRepository) SalesByDay(from, to time.Time) ([]DailySales, error) {
	var out []DailySales
	err := r.salesScope(from, to).
		Select("DATE(created_at) AS day, COUNT(id) AS order_count, COALESCE(SUM(total),0) AS gross").
		Group("DATE(created_at)").
		Order("day ASC").
		Scan(&out).Error
	return out, err
}

type TopItem struct {
	ItemID   uint   `json:"itemId"`
	ItemName string `json:"itemName"`
	Qty      int64  `json:"qty"`
	Revenue  int64  `json:"revenue"`
}

func (r *ReportRepository) TopItems(from, to time.Time, limit int) ([]TopItem, error) {
	if limit <= 0 {
		limit = 10
	}
	var out []TopItem
	// raw tables skip the soft-delete scope Model() would add
	err := r.DB.Table("order_items AS oi").
		Joins("JOIN orders o ON o.id = oi.order_id").
		Where("oi.deleted_at IS NULL AND o.deleted_at IS NULL").
		Where("o.status <> ?", entity.OrderStatusCancelled).
		Where("o.created_at >= ? AND o.created_at < ?", from, to).
		Select("oi.item_id, oi.item_name, SUM(oi.qty) AS qty, SUM(oi.total) AS revenue").
		Group("oi.item_id, oi.item_name").
		Order("qty DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

type ProcurementTotals struct {
	PurchaseCount int64 `json:"purchaseCount"`
	Spend         int64 `json:"spend"`
}

func (r *ReportRepository) ProcurementTotals(from, to time.Time) (*ProcurementTotals, error) {
	var out ProcurementTotals
	err := r.DB.Model(&entity.Purchase{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Select("COUNT(id) AS purchase_count, COALESCE(SUM(total),0) AS spend").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

type SupplierSpend struct {
	SupplierID   uint   `json:"supplierId"`
	SupplierName string `json:"supplierName"`
	Spend        int64  `json:"spend"`
}

func (r *ReportRepository) SpendBySupplier(from, to time.Time) ([]SupplierSpend, error) {
	var out []SupplierSpend
	err := r.DB.Table("purchases AS p").
		Joins("JOIN suppliers s ON s.id = p.supplier_id").
		Where("p.deleted_at IS NULL AND s.deleted_at IS NULL").
		Where("p.created_at >= ? AND p.created_at < ?", from, to).
		Select("p.supplier_id, s.name AS supplier_name, COALESCE(SUM(p.total),0) AS spend").
		Group("p.supplier_id, s.name").
		Order("spend DESC").
		Scan(&out).Error
	return out, err
}
