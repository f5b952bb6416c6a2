package usecase

import (
	"context"
	"errors"
	"fmt"

	family "github.com/carolinadevia11/Bridge/internal/pkg/family/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/family/persistence/repository/port"
)

// GetFamilyUseCase resolves the requester's family profile.
type GetFamilyUseCase struct {
	Repo repository.FamilyRepository
}

func NewGetFamilyUseCase(repo repository.FamilyRepository) *GetFamilyUseCase {
	return &GetFamilyUseCase{Repo: repo}
}

func (uc *GetFamilyUseCase) Execute(ctx context.Context, requesterEmail string) (*family.Family, error) {
	if requesterEmail == "" {
		return nil, fmt.Errorf("requester email is required")
	}
	f, err := uc.Repo.FindByParentEmail(ctx, requesterEmail)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return f, nil
}
