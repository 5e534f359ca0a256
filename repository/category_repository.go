package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type CategoryRepository struct{ DB *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository { return &CategoryRepository{DB: db} }

func (r *CategoryRepository) FindAll() ([]entity.ItemCategory, error) {
	var out []entity.ItemCategory
	err := r.DB.Order("name ASC").Find(&out).Error
	return out, err
}

func (r *CategoryRepository) FindByID(id uint) (*entity.ItemCategory, error) {
	var c entity.ItemCategory
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) Create(c *entity.ItemCategory) error {
	return r.DB.Create(c).Error
}

func (r *CategoryRepository) Update(c *entity.ItemCategory) error {
	return r.DB.Save(c).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.ItemCategory{}, id).Error
}

// CountItems backs the delete guard: a category with items cannot go away.
func (r *CategoryRepository) CountItems(categoryID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Item{}).
		Where("item_category_id = ?", categoryID).
		Count(&cnt).Error
	return cnt, err
}
