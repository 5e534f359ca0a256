package services

import (
	"errors"
	"time"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type PurchaseService struct {
	DB           *gorm.DB
	Repo         *repository.PurchaseRepository
	SupplierRepo *repository.SupplierRepository
	ItemRepo     *repository.ItemRepository
}

func NewPurchaseService(
	db *gorm.DB,
	repo *repository.PurchaseRepository,
	sr *repository.SupplierRepository,
	ir *repository.ItemRepository,
) *PurchaseService {
	return &PurchaseService{DB: db, Repo: repo, SupplierRepo: sr, ItemRepo: ir}
}

type PurchaseItemIn struct {
	ItemID   uint  `json:"itemId" binding:"required"`
	Qty      int   `json:"qty" binding:"min=1"`
	UnitCost int64 `json:"unitCost" binding:"min=0"`
}

type CreatePurchaseReq struct {
	SupplierID uint             `json:"supplierId" binding:"required"`
	Reference  string           `json:"reference"`
	Items      []PurchaseItemIn `json:"items" binding:"required,min=1,dive"`
}

type CreatePurchaseRes struct {
	ID    uint  `json:"id"`
	Total int64 `json:"total"`
}

func (s *PurchaseService) Create(userID uint, req *CreatePurchaseReq) (*CreatePurchaseRes, error) {
	if len(req.Items) == 0 {
		return nil, errors.New("items is required")
	}
	if _, err := s.SupplierRepo.FindByID(req.SupplierID); err != nil {
		return nil, err
	}

	rows := make([]entity.PurchaseItem, 0, len(req.Items))
	var total int64
	for _, in := range req.Items {
		if in.Qty <= 0 {
			return nil, errors.New("qty must be positive")
		}
		if _, err := s.ItemRepo.GetItemBasics(in.ItemID); err != nil {
			return nil, errors.New("item not found")
		}
		lineTotal := in.UnitCost * int64(in.Qty)
		total += lineTotal
		rows = append(rows, entity.PurchaseItem{
			ItemID: in.ItemID, Qty: in.Qty, UnitCost: in.UnitCost, Total: lineTotal,
		})
	}

	now := time.Now()
	p := entity.Purchase{
		Reference:  req.Reference,
		Total:      total,
		DateAt:     &now,
		SupplierID: req.SupplierID,
		UserID:     userID,
		Items:      rows,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, &p)
	})
	if err != nil {
		return nil, err
	}
	return &CreatePurchaseRes{ID: p.ID, Total: p.Total}, nil
}

func (s *PurchaseService) List(supplierID *uint, page, limit int) ([]repository.PurchaseSummary, int64, error) {
	return s.Repo.List(supplierID, page, limit)
}

func (s *PurchaseService) Get(id uint) (*entity.Purchase, error) {
	return s.Repo.FindByID(id)
}
