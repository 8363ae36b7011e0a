package repository

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/sixtyday/jobboard/internal/model"
	"gorm.io/gorm"
)

// ErrDuplicateUsername is returned when a signup collides with an existing
// username (primary-key violation on the users table).
var ErrDuplicateUsername = errors.New("username already taken")

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db}
}

// HashPassword returns the sha256 hex digest of password. The digest is
// deterministic so authentication is a single stored-hash comparison.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func (r *UserRepository) Create(user *model.User) error {
	err := r.db.Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateUsername
	}
	return err
}

// FindByUsername returns nil without error when no such user exists.
func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var u model.User
	err := r.db.First(&u, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) EmailByUsername(username string) (string, error) {
	u, err := r.FindByUsername(username)
	if err != nil || u == nil {
		return "", err
	}
	return u.Email, nil
}
