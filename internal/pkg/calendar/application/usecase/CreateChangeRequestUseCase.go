package usecase

import (
	"context"
	"time"

	calendar "github.com/carolinadevia11/Bridge/internal/pkg/calendar/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/calendar/persistence/repository/port"
	familyrepo "github.com/carolinadevia11/Bridge/internal/pkg/family/persistence/repository/port"
)

type CreateChangeRequestUseCase struct {
	Repo     repository.CalendarRepository
	Families familyrepo.FamilyRepository
}

func NewCreateChangeRequestUseCase(repo repository.CalendarRepository, families familyrepo.FamilyRepository) *CreateChangeRequestUseCase {
	return &CreateChangeRequestUseCase{Repo: repo, Families: families}
}

type CreateChangeRequestInput struct {
	RequesterEmail string
	EventID        string
	RequestedDate  *time.Time
	Reason         *string
}

// Execute opens a pending change request against an event of the requester's
// family.
func (uc *CreateChangeRequestUseCase) Execute(ctx context.Context, in CreateChangeRequestInput) (*calendar.ChangeRequest, error) {
	f, err := uc.Families.FindByParentEmail(ctx, in.RequesterEmail)
	if err != nil {
		return nil, wrapFamilyErr(err)
	}

	e, err := uc.Repo.GetEvent(ctx, in.EventID)
	if err != nil {
		return nil, wrapRepoErr(err)
	}
	if e.FamilyID != f.ID {
		return nil, repository.ErrNotFound
	}

	cr := calendar.NewChangeRequest(e, in.RequesterEmail, in.RequestedDate, in.Reason)
	id, err := uc.Repo.CreateChangeRequest(ctx, *cr)
	if err != nil {
		return nil, wrapRepoErr(err)
	}
	cr.ID = id
	return cr, nil
}
