package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	family "github.com/carolinadevia11/Bridge/internal/pkg/family/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/family/persistence/repository/port"
)

// LinkFamilyInput attaches the co-parent to the requester's family.
type LinkFamilyInput struct {
	RequesterEmail string
	Parent2Email   string
}

// LinkFamilyUseCase fills the second parent slot. Conversations created
// before the link keep their original participant set; only conversations
// created afterwards see the new co-parent.
type LinkFamilyUseCase struct {
	Repo repository.FamilyRepository
}

func NewLinkFamilyUseCase(repo repository.FamilyRepository) *LinkFamilyUseCase {
	return &LinkFamilyUseCase{Repo: repo}
}

func (uc *LinkFamilyUseCase) Execute(ctx context.Context, in LinkFamilyInput) (*family.Family, error) {
	parent2 := strings.ToLower(strings.TrimSpace(in.Parent2Email))
	if in.RequesterEmail == "" || parent2 == "" {
		return nil, fmt.Errorf("requester email and parent2 email are required")
	}
	if parent2 == in.RequesterEmail {
		return nil, fmt.Errorf("cannot link a parent to themselves")
	}

	f, err := uc.Repo.FindByParentEmail(ctx, in.RequesterEmail)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if f.IsLinked() {
		return nil, family.ErrAlreadyLinked
	}

	if err := uc.Repo.LinkSecondParent(ctx, f.ID, parent2); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	linked, err := uc.Repo.FindByID(ctx, f.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return linked, nil
}
