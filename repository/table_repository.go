package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type TableRepository struct{ DB *gorm.DB }

func NewTableRepository(db *gorm.DB) *TableRepository { return &TableRepository{DB: db} }

func (r *TableRepository) FindAll() ([]entity.Table, error) {
	var out []entity.Table
	err := r.DB.Order("number ASC").Find(&out).Error
	return out, err
}

func (r *TableRepository) FindByID(id uint) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) FindByNumber(number string) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.Where("number = ?", number).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) Create(t *entity.Table) error {
	return r.DB.Create(t).Error
}

func (r *TableRepository) Update(t *entity.Table) error {
	return r.DB.Save(t).Error
}

func (r *TableRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Table{}, id).Error
}

// SetOccupied runs inside the checkout transaction so a table flips together
// with its order.
func (r *TableRepository) SetOccupied(tx *gorm.DB, number string, occupied bool) error {
	return tx.Model(&entity.Table{}).
		Where("number = ?", number).
		Update("occupied", occupied).Error
}
