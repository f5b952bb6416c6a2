package usecase

import (
	"context"
	"errors"
	"fmt"

	family "github.com/carolinadevia11/Bridge/internal/pkg/family/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/family/persistence/repository/port"
)

// RemoveChildUseCase deletes a child from the requester's family.
type RemoveChildUseCase struct {
	Repo repository.FamilyRepository
}

func NewRemoveChildUseCase(repo repository.FamilyRepository) *RemoveChildUseCase {
	return &RemoveChildUseCase{Repo: repo}
}

func (uc *RemoveChildUseCase) Execute(ctx context.Context, requesterEmail, childID string) error {
	if childID == "" {
		return fmt.Errorf("child id is required")
	}

	f, err := uc.Repo.FindByParentEmail(ctx, requesterEmail)
	if errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if err := uc.Repo.RemoveChild(ctx, f.ID, childID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return family.ErrChildNotFound
		}
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
