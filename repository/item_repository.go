package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type ItemRepository struct{ DB *gorm.DB }

func NewItemRepository(db *gorm.DB) *ItemRepository { return &ItemRepository{DB: db} }

type ItemFilter struct {
	CategoryID *uint
	Available  *bool
	Search     string
	Page       int
	Limit      int
}

func (r *ItemRepository) List(f ItemFilter) ([]entity.Item, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}

	q := r.DB.Model(&entity.Item{})
	if f.CategoryID != nil {
		q = q.Where("item_category_id = ?", *f.CategoryID)
	}
	if f.Available != nil {
		q = q.Where("available = ?", *f.Available)
	}
	if f.Search != "" {
		q = q.Where("name LIKE ?", "%"+f.Search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []entity.Item
	err := q.Order("id DESC").
		Offset((f.Page - 1) * f.Limit).Limit(f.Limit).
		Find(&items).Error
	return items, total, err
}

func (r *ItemRepository) FindByID(id uint) (*entity.Item, error) {
	var it entity.Item
	if err := r.DB.Preload("ItemCategory").First(&it, id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

// ItemBasics is the projection the cart needs: enough to snapshot a line.
type ItemBasics struct {
	ID        uint
	Name      string
	Price     int64
	Available bool
}

func (r *ItemRepository) GetItemBasics(id uint) (*ItemBasics, error) {
	var b ItemBasics
	err := r.DB.Model(&entity.Item{}).
		Select("id, name, price, available").
		Where("id = ?", id).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *ItemRepository) Create(it *entity.Item) error {
	return r.DB.Create(it).Error
}

func (r *ItemRepository) Update(it *entity.Item) error {
	return r.DB.Save(it).Error
}

func (r *ItemRepository) UpdateAvailability(id uint, available bool) error {
	return r.DB.Model(&entity.Item{}).Where("id = ?", id).
		Update("available", available).Error
}

func (r *ItemRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Item{}, id).Error
}
