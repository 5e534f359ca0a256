package services

import (
	"backend/entity"
	"backend/repository"
)

type ItemService struct {
	Repo         *repository.ItemRepository
	CategoryRepo *repository.CategoryRepository
}

func NewItemService(repo *repository.ItemRepository, cr *repository.CategoryRepository) *ItemService {
	return &ItemService{Repo: repo, CategoryRepo: cr}
}

func (s *ItemService) List(f repository.ItemFilter) ([]entity.Item, int64, error) {
	return s.Repo.List(f)
}

func (s *ItemService) Get(id uint) (*entity.Item, error) {
	return s.Repo.FindByID(id)
}

func (s *ItemService) Create(it *entity.Item) error {
	// category must exist before an item can point at it
	if _, err := s.CategoryRepo.FindByID(it.ItemCategoryID); err != nil {
		return err
	}
	return s.Repo.Create(it)
}

func (s *ItemService) Update(it *entity.Item) error {
	if _, err := s.CategoryRepo.FindByID(it.ItemCategoryID); err != nil {
		return err
	}
	return s.Repo.Update(it)
}

func (s *ItemService) SetAvailability(id uint, available bool) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		return err
	}
	return s.Repo.UpdateAvailability(id, available)
}

func (s *ItemService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
