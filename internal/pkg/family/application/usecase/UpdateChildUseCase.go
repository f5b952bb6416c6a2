package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	family "github.com/carolinadevia11/Bridge/internal/pkg/family/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/family/persistence/repository/port"
)

// UpdateChildInput carries partial updates; nil fields are left unchanged.
type UpdateChildInput struct {
	RequesterEmail string
	ChildID        string
	Name           *string
	DateOfBirth    *time.Time
	Grade          *string
	School         *string
	Allergies      *string
	Medications    *string
	Notes          *string
}

// UpdateChildUseCase patches a child record within the requester's family.
type UpdateChildUseCase struct {
	Repo repository.FamilyRepository
}

func NewUpdateChildUseCase(repo repository.FamilyRepository) *UpdateChildUseCase {
	return &UpdateChildUseCase{Repo: repo}
}

func (uc *UpdateChildUseCase) Execute(ctx context.Context, in UpdateChildInput) (*family.Child, error) {
	if in.ChildID == "" {
		return nil, fmt.Errorf("child id is required")
	}

	f, err := uc.Repo.FindByParentEmail(ctx, in.RequesterEmail)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	var current *family.Child
	for i := range f.Children {
		if f.Children[i].ID == in.ChildID {
			current = &f.Children[i]
			break
		}
	}
	if current == nil {
		return nil, family.ErrChildNotFound
	}

	if in.Name != nil {
		current.Name = *in.Name
	}
	if in.DateOfBirth != nil {
		current.DateOfBirth = *in.DateOfBirth
	}
	if in.Grade != nil {
		current.Grade = in.Grade
	}
	if in.School != nil {
		current.School = in.School
	}
	if in.Allergies != nil {
		current.Allergies = in.Allergies
	}
	if in.Medications != nil {
		current.Medications = in.Medications
	}
	if in.Notes != nil {
		current.Notes = in.Notes
	}

	if err := uc.Repo.UpdateChild(ctx, *current); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, family.ErrChildNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return current, nil
}
