package usecase

import (
	"context"

	repository "github.com/carolinadevia11/Bridge/internal/pkg/calendar/persistence/repository/port"
	familyrepo "github.com/carolinadevia11/Bridge/internal/pkg/family/persistence/repository/port"
)

type DeleteEventUseCase struct {
	Repo     repository.CalendarRepository
	Families familyrepo.FamilyRepository
}

func NewDeleteEventUseCase(repo repository.CalendarRepository, families familyrepo.FamilyRepository) *DeleteEventUseCase {
	return &DeleteEventUseCase{Repo: repo, Families: families}
}

type DeleteEventInput struct {
	RequesterEmail string
	EventID        string
}

// Execute removes an event from the requester's family calendar. Events of
// other families are indistinguishable from missing ones.
func (uc *DeleteEventUseCase) Execute(ctx context.Context, in DeleteEventInput) error {
	f, err := uc.Families.FindByParentEmail(ctx, in.RequesterEmail)
	if err != nil {
		return wrapFamilyErr(err)
	}

	e, err := uc.Repo.GetEvent(ctx, in.EventID)
	if err != nil {
		return wrapRepoErr(err)
	}
	if e.FamilyID != f.ID {
		return repository.ErrNotFound
	}

	if err := uc.Repo.DeleteEvent(ctx, in.EventID); err != nil {
		return wrapRepoErr(err)
	}
	return nil
}
