package usecase

import (
	"context"
	"errors"
	"fmt"

	family "github.com/carolinadevia11/Bridge/internal/pkg/family/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/family/persistence/repository/port"
)

// CreateFamilyInput carries the data to open a family profile. The requester
// always becomes parent1.
type CreateFamilyInput struct {
	RequesterEmail     string
	FamilyName         string
	Parent2Email       *string
	CustodyArrangement *string
}

// CreateFamilyUseCase creates the family record a user coordinates through.
// One family per parent: creation fails if the requester already belongs to one.
type CreateFamilyUseCase struct {
	Repo repository.FamilyRepository
}

func NewCreateFamilyUseCase(repo repository.FamilyRepository) *CreateFamilyUseCase {
	return &CreateFamilyUseCase{Repo: repo}
}

func (uc *CreateFamilyUseCase) Execute(ctx context.Context, in CreateFamilyInput) (*family.Family, error) {
	if in.RequesterEmail == "" {
		return nil, fmt.Errorf("requester email is required")
	}

	if _, err := uc.Repo.FindByParentEmail(ctx, in.RequesterEmail); err == nil {
		return nil, family.ErrAlreadyInFamily
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	f, err := family.NewFamily(in.FamilyName, in.RequesterEmail, in.Parent2Email, in.CustodyArrangement)
	if err != nil {
		return nil, err
	}

	id, err := uc.Repo.Create(ctx, *f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	f.ID = id
	return f, nil
}
