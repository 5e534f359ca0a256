package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrUsernameTaken = errors.New("username already exists")

// UserService manages staff accounts. It stores bcrypt hashes for the
// external auth service to verify; no login/session handling lives here.
type UserService struct {
	Repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

func (s *UserService) List() ([]entity.User, error) {
	return s.Repo.FindAll()
}

func (s *UserService) Get(id uint) (*entity.User, error) {
	return s.Repo.FindByID(id)
}

type CreateUserIn struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role" binding:"required,oneof=admin cashier"`
}

func (s *UserService) Create(in *CreateUserIn) (*entity.User, error) {
	if _, err := s.Repo.FindByUsername(in.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := entity.User{
		Username:    in.Username,
		Password:    string(hash),
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		PhoneNumber: in.PhoneNumber,
		Role:        in.Role,
		Active:      true,
	}
	if err := s.Repo.Create(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

type UpdateUserIn struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	PhoneNumber *string `json:"phoneNumber"`
	Role        *string `json:"role" binding:"omitempty,oneof=admin cashier"`
	Active      *bool   `json:"active"`
}

func (s *UserService) Update(id uint, in *UpdateUserIn) (*entity.User, error) {
	u, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		u.LastName = *in.LastName
	}
	if in.PhoneNumber != nil {
		u.PhoneNumber = *in.PhoneNumber
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.Active != nil {
		u.Active = *in.Active
	}
	if err := s.Repo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) ResetPassword(id uint, newPassword string) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.Repo.UpdatePassword(id, string(hash))
}

func (s *UserService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
