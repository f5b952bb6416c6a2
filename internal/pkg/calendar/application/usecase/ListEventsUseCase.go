package usecase

import (
	"context"
	"errors"

	calendar "github.com/carolinadevia11/Bridge/internal/pkg/calendar/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/calendar/persistence/repository/port"
	familyrepo "github.com/carolinadevia11/Bridge/internal/pkg/family/persistence/repository/port"
)

type ListEventsUseCase struct {
	Repo     repository.CalendarRepository
	Families familyrepo.FamilyRepository
}

func NewListEventsUseCase(repo repository.CalendarRepository, families familyrepo.FamilyRepository) *ListEventsUseCase {
	return &ListEventsUseCase{Repo: repo, Families: families}
}

// Execute lists the requester's family calendar ordered by date. A user with
// no family gets an empty calendar, not an error.
func (uc *ListEventsUseCase) Execute(ctx context.Context, requesterEmail string) ([]calendar.Event, error) {
	f, err := uc.Families.FindByParentEmail(ctx, requesterEmail)
	if errors.Is(err, familyrepo.ErrNotFound) {
		return []calendar.Event{}, nil
	}
	if err != nil {
		return nil, wrapRepoErr(err)
	}

	events, err := uc.Repo.ListEventsByFamily(ctx, f.ID)
	if err != nil {
		return nil, wrapRepoErr(err)
	}
	if events == nil {
		events = []calendar.Event{}
	}
	return events, nil
}
