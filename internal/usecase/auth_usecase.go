package usecase

import (
	"errors"

	"github.com/sixtyday/jobboard/internal/dto"
	"github.com/sixtyday/jobboard/internal/model"
	"github.com/sixtyday/jobboard/internal/repository"
)

// ErrInvalidCredentials covers both an unknown username and a wrong
// password; the caller cannot tell which.
var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthUsecase struct {
	users *repository.UserRepository
}

func NewAuthUsecase(users *repository.UserRepository) *AuthUsecase {
	return &AuthUsecase{users: users}
}

// Register stores a new user with a one-way password digest. Returns
// repository.ErrDuplicateUsername when the username is taken.
func (uc *AuthUsecase) Register(req dto.SignupRequest) error {
	user := model.User{
		Username: req.Username,
		Password: repository.HashPassword(req.Password),
		Role:     req.Role,
		Email:    req.Email,
	}
	return uc.users.Create(&user)
}

// Authenticate returns the stored user record only on an exact digest match.
func (uc *AuthUsecase) Authenticate(username, password string) (*model.User, error) {
	u, err := uc.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if u == nil || u.Password != repository.HashPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
