package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	auth "github.com/carolinadevia11/Bridge/internal/pkg/auth/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/auth/persistence/repository/port"
)

// SignUpInput carries the data required to register a parent account.
type SignUpInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// SignUpUseCase registers a new account with a bcrypt-hashed password.
// Hexagonal: depends on repository port only.
type SignUpUseCase struct {
	Repo repository.UserRepository
}

func NewSignUpUseCase(repo repository.UserRepository) *SignUpUseCase {
	return &SignUpUseCase{Repo: repo}
}

// Execute hashes the password, validates the profile and persists the account.
func (uc *SignUpUseCase) Execute(ctx context.Context, in SignUpInput) (*auth.User, error) {
	if len(in.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	if _, err := uc.Repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, auth.ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := auth.NewUser(in.FirstName, in.LastName, in.Email, string(hash))
	if err != nil {
		return nil, err
	}

	id, err := uc.Repo.Create(ctx, *user)
	if errors.Is(err, auth.ErrEmailTaken) {
		// lost a concurrent-signup race after the lookup above missed
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	user.ID = id
	return user, nil
}
