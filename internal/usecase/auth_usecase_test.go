package usecase

import (
	"testing"

	"github.com/sixtyday/jobboard/internal/dto"
	"github.com/sixtyday/jobboard/internal/model"
	"github.com/sixtyday/jobboard/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthRegisterAndAuthenticate(t *testing.T) {
	uc := NewAuthUsecase(repository.NewUserRepository(openTestDB(t)))

	require.NoError(t, uc.Register(dto.SignupRequest{
		Username: "alice",
		Password: "hunter2",
		Role:     model.RoleCandidate,
		Email:    "alice@example.com",
	}))

	user, err := uc.Authenticate("alice", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, model.RoleCandidate, user.Role)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	uc := NewAuthUsecase(repository.NewUserRepository(openTestDB(t)))

	require.NoError(t, uc.Register(dto.SignupRequest{Username: "alice", Password: "hunter2", Role: model.RoleCandidate, Email: "a@example.com"}))

	_, err := uc.Authenticate("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	uc := NewAuthUsecase(repository.NewUserRepository(openTestDB(t)))

	_, err := uc.Authenticate("nobody", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	uc := NewAuthUsecase(repository.NewUserRepository(openTestDB(t)))

	require.NoError(t, uc.Register(dto.SignupRequest{Username: "alice", Password: "pw", Role: model.RoleCandidate, Email: "a@example.com"}))

	err := uc.Register(dto.SignupRequest{Username: "alice", Password: "pw", Role: model.RoleCandidate, Email: "b@example.com"})
	assert.ErrorIs(t, err, repository.ErrDuplicateUsername)
}
