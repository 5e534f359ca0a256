package services

import (
	"errors"

	"backend/entity"
	"backend/repository"
)

var ErrCategoryInUse = errors.New("category has items")

type CategoryService struct {
	Repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: repo}
}

func (s *CategoryService) List() ([]entity.ItemCategory, error) {
	return s.Repo.FindAll()
}

func (s *CategoryService) Get(id uint) (*entity.ItemCategory, error) {
	return s.Repo.FindByID(id)
}

func (s *CategoryService) Create(c *entity.ItemCategory) error {
	return s.Repo.Create(c)
}

func (s *CategoryService) Update(c *entity.ItemCategory) error {
	return s.Repo.Update(c)
}

func (s *CategoryService) Delete(id uint) error {
	cnt, err := s.Repo.CountItems(id)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ErrCategoryInUse
	}
	return s.Repo.Delete(id)
}
