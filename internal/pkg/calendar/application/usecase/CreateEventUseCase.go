package usecase

import (
	"context"
	"time"

	calendar "github.com/carolinadevia11/Bridge/internal/pkg/calendar/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/calendar/persistence/repository/port"
	familyrepo "github.com/carolinadevia11/Bridge/internal/pkg/family/persistence/repository/port"
)

type CreateEventUseCase struct {
	Repo     repository.CalendarRepository
	Families familyrepo.FamilyRepository
}

func NewCreateEventUseCase(repo repository.CalendarRepository, families familyrepo.FamilyRepository) *CreateEventUseCase {
	return &CreateEventUseCase{Repo: repo, Families: families}
}

type CreateEventInput struct {
	RequesterEmail string
	Date           time.Time
	Type           string
	Title          string
	Parent         *string
	IsSwappable    bool
}

// Execute creates an event on the requester's family calendar.
func (uc *CreateEventUseCase) Execute(ctx context.Context, in CreateEventInput) (*calendar.Event, error) {
	f, err := uc.Families.FindByParentEmail(ctx, in.RequesterEmail)
	if err != nil {
		return nil, wrapFamilyErr(err)
	}

	e, err := calendar.NewEvent(f.ID, in.Date, in.Type, in.Title, in.Parent, in.IsSwappable)
	if err != nil {
		return nil, err
	}

	id, err := uc.Repo.CreateEvent(ctx, *e)
	if err != nil {
		return nil, wrapRepoErr(err)
	}
	e.ID = id
	return e, nil
}
