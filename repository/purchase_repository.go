package repository

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type PurchaseRepository struct{ DB *gorm.DB }

func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository { return &PurchaseRepository{DB: db} }

func (r *PurchaseRepository) Create(tx *gorm.DB, p *entity.Purchase) error {
	return tx.Create(p).Error
}

func (r *PurchaseRepository) FindByID(id uint) (*entity.Purchase, error) {
	var p entity.Purchase
	err := r.DB.Preload("Items").Preload("Supplier").First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

type PurchaseSummary struct {
	ID           uint      `json:"id"`
	Reference    string    `json:"reference"`
	SupplierID   uint      `json:"supplierId"`
	SupplierName string    `json:"supplierName"`
	Total        int64     `json:"total"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (r *PurchaseRepository) List(supplierID *uint, page, limit int) ([]PurchaseSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	q := r.DB.Table("purchases AS p").
		Joins("JOIN suppliers s ON s.id = p.supplier_id").
		Where("p.deleted_at IS NULL")
	if supplierID != nil {
		q = q.Where("p.supplier_id = ?", *supplierID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []PurchaseSummary
	err := q.Select("p.id, p.reference, p.supplier_id, s.name AS supplier_name, p.total, p.created_at").
		Order("p.id DESC").
		Offset((page - 1) * limit).Limit(limit).
		Scan(&out).Error
	return out, total, err
}
