package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	family "github.com/carolinadevia11/Bridge/internal/pkg/family/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/family/persistence/repository/port"
)

// AddChildInput carries a new child record for the requester's family.
type AddChildInput struct {
	RequesterEmail string
	Name           string
	DateOfBirth    time.Time
	Grade          *string
	School         *string
	Allergies      *string
	Medications    *string
	Notes          *string
}

// AddChildUseCase appends a child to the requester's family.
type AddChildUseCase struct {
	Repo repository.FamilyRepository
}

func NewAddChildUseCase(repo repository.FamilyRepository) *AddChildUseCase {
	return &AddChildUseCase{Repo: repo}
}

func (uc *AddChildUseCase) Execute(ctx context.Context, in AddChildInput) (*family.Child, error) {
	f, err := uc.Repo.FindByParentEmail(ctx, in.RequesterEmail)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	child, err := family.NewChild(f.ID, in.Name, in.DateOfBirth)
	if err != nil {
		return nil, err
	}
	child.Grade = in.Grade
	child.School = in.School
	child.Allergies = in.Allergies
	child.Medications = in.Medications
	child.Notes = in.Notes

	id, err := uc.Repo.AddChild(ctx, *child)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	child.ID = id
	return child, nil
}
