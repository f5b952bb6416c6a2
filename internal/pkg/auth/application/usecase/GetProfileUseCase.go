package usecase

import (
	"context"
	"errors"
	"fmt"

	auth "github.com/carolinadevia11/Bridge/internal/pkg/auth/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/auth/persistence/repository/port"
)

// GetProfileUseCase fetches the signed-in user's own account record.
type GetProfileUseCase struct {
	Repo repository.UserRepository
}

func NewGetProfileUseCase(repo repository.UserRepository) *GetProfileUseCase {
	return &GetProfileUseCase{Repo: repo}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, email string) (*auth.User, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	user, err := uc.Repo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return user, nil
}
