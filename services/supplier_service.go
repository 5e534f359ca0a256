package services

import (
	"errors"

	"backend/entity"
	"backend/repository"
)

var ErrSupplierInUse = errors.New("supplier has purchases")

type SupplierService struct {
	Repo *repository.SupplierRepository
}

func NewSupplierService(repo *repository.SupplierRepository) *SupplierService {
	return &SupplierService{Repo: repo}
}

func (s *SupplierService) List() ([]entity.Supplier, error) {
	return s.Repo.FindAll()
}

func (s *SupplierService) Get(id uint) (*entity.Supplier, error) {
	return s.Repo.FindByID(id)
}

func (s *SupplierService) Create(sp *entity.Supplier) error {
	return s.Repo.Create(sp)
}

func (s *SupplierService) Update(sp *entity.Supplier) error {
	return s.Repo.Update(sp)
}

func (s *SupplierService) Delete(id uint) error {
	cnt, err := s.Repo.CountPurchases(id)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ErrSupplierInUse
	}
	return s.Repo.Delete(id)
}
