package services

import (
	"backend/entity"
	"backend/repository"
)

type CustomerService struct {
	Repo *repository.CustomerRepository
}

func NewCustomerService(repo *repository.CustomerRepository) *CustomerService {
	return &CustomerService{Repo: repo}
}

func (s *CustomerService) List(search string, page, limit int) ([]entity.Customer, int64, error) {
	return s.Repo.List(search, page, limit)
}

func (s *CustomerService) Get(id uint) (*entity.Customer, error) {
	return s.Repo.FindByID(id)
}

func (s *CustomerService) Create(c *entity.Customer) error {
	return s.Repo.Create(c)
}

func (s *CustomerService) Update(c *entity.Customer) error {
	return s.Repo.Update(c)
}

func (s *CustomerService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
