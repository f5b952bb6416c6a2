package usecase

import (
	"context"
	"errors"

	calendar "github.com/carolinadevia11/Bridge/internal/pkg/calendar/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/calendar/persistence/repository/port"
	familyrepo "github.com/carolinadevia11/Bridge/internal/pkg/family/persistence/repository/port"
)

type ListChangeRequestsUseCase struct {
	Repo     repository.CalendarRepository
	Families familyrepo.FamilyRepository
}

func NewListChangeRequestsUseCase(repo repository.CalendarRepository, families familyrepo.FamilyRepository) *ListChangeRequestsUseCase {
	return &ListChangeRequestsUseCase{Repo: repo, Families: families}
}

// Execute lists the family's change requests newest first. No family means an
// empty list.
func (uc *ListChangeRequestsUseCase) Execute(ctx context.Context, requesterEmail string) ([]calendar.ChangeRequest, error) {
	f, err := uc.Families.FindByParentEmail(ctx, requesterEmail)
	if errors.Is(err, familyrepo.ErrNotFound) {
		return []calendar.ChangeRequest{}, nil
	}
	if err != nil {
		return nil, wrapRepoErr(err)
	}

	reqs, err := uc.Repo.ListChangeRequestsByFamily(ctx, f.ID)
	if err != nil {
		return nil, wrapRepoErr(err)
	}
	if reqs == nil {
		reqs = []calendar.ChangeRequest{}
	}
	return reqs, nil
}
