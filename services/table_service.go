package services

import (
	"backend/entity"
	"backend/repository"
)

type TableService struct {
	Repo *repository.TableRepository
}

func NewTableService(repo *repository.TableRepository) *TableService {
	return &TableService{Repo: repo}
}

func (s *TableService) List() ([]entity.Table, error) {
	return s.Repo.FindAll()
}

func (s *TableService) Get(id uint) (*entity.Table, error) {
	return s.Repo.FindByID(id)
}

func (s *TableService) Create(t *entity.Table) error {
	return s.Repo.Create(t)
}

func (s *TableService) Update(t *entity.Table) error {
	return s.Repo.Update(t)
}

func (s *TableService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
