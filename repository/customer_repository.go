package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type CustomerRepository struct{ DB *gorm.DB }

func NewCustomerRepository(db *gorm.DB) *CustomerRepository { return &CustomerRepository{DB: db} }

func (r *CustomerRepository) List(search string, page, limit int) ([]entity.Customer, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	q := r.DB.Model(&entity.Customer{})
	if search != "" {
		q = q.Where("name LIKE ? OR contact LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Customer
	err := q.Order("id DESC").Offset((page - 1) * limit).Limit(limit).Find(&out).Error
	return out, total, err
}

func (r *CustomerRepository) FindByID(id uint) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) Create(c *entity.Customer) error {
	return r.DB.Create(c).Error
}

func (r *CustomerRepository) Update(c *entity.Customer) error {
	return r.DB.Save(c).Error
}

func (r *CustomerRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Customer{}, id).Error
}
