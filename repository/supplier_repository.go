package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type SupplierRepository struct{ DB *gorm.DB }

func NewSupplierRepository(db *gorm.DB) *SupplierRepository { return &SupplierRepository{DB: db} }

func (r *SupplierRepository) FindAll() ([]entity.Supplier, error) {
	var out []entity.Supplier
	err := r.DB.Order("name ASC").Find(&out).Error
	return out, err
}

func (r *SupplierRepository) FindByID(id uint) (*entity.Supplier, error) {
	var s entity.Supplier
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SupplierRepository) Create(s *entity.Supplier) error {
	return r.DB.Create(s).Error
}

func (r *SupplierRepository) Update(s *entity.Supplier) error {
	return r.DB.Save(s).Error
}

func (r *SupplierRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Supplier{}, id).Error
}

func (r *SupplierRepository) CountPurchases(supplierID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Purchase{}).
		Where("supplier_id = ?", supplierID).
		Count(&cnt).Error
	return cnt, err
}
