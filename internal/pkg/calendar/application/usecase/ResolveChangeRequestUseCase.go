package usecase

import (
	"context"
	"errors"
	"log"

	calendar "github.com/carolinadevia11/Bridge/internal/pkg/calendar/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/calendar/persistence/repository/port"
	familyrepo "github.com/carolinadevia11/Bridge/internal/pkg/family/persistence/repository/port"
)

type ResolveChangeRequestUseCase struct {
	Repo     repository.CalendarRepository
	Families familyrepo.FamilyRepository
}

func NewResolveChangeRequestUseCase(repo repository.CalendarRepository, families familyrepo.FamilyRepository) *ResolveChangeRequestUseCase {
	return &ResolveChangeRequestUseCase{Repo: repo, Families: families}
}

type ResolveChangeRequestInput struct {
	RequesterEmail string
	RequestID      string
	Status         string
}

// Execute resolves a pending change request. Only the other parent may
// resolve, each request resolves exactly once, and an approval carrying a
// proposed date moves the event to it.
func (uc *ResolveChangeRequestUseCase) Execute(ctx context.Context, in ResolveChangeRequestInput) (*calendar.ChangeRequest, error) {
	if !calendar.ValidResolution(in.Status) {
		return nil, calendar.ErrInvalidStatus
	}

	f, err := uc.Families.FindByParentEmail(ctx, in.RequesterEmail)
	if err != nil {
		return nil, wrapFamilyErr(err)
	}

	cr, err := uc.Repo.GetChangeRequest(ctx, in.RequestID)
	if err != nil {
		return nil, wrapRepoErr(err)
	}
	if cr.FamilyID != f.ID {
		return nil, repository.ErrNotFound
	}
	if cr.RequestedByEmail == in.RequesterEmail {
		return nil, calendar.ErrOwnRequest
	}
	if !cr.IsPending() {
		return nil, calendar.ErrAlreadyResolved
	}

	if err := uc.Repo.SetChangeRequestStatus(ctx, cr.ID, in.Status); err != nil {
		// the conditional update lost a race with another resolution
		if errors.Is(err, calendar.ErrAlreadyResolved) {
			return nil, err
		}
		return nil, wrapRepoErr(err)
	}
	cr.Status = in.Status

	if in.Status == calendar.StatusApproved && cr.RequestedDate != nil {
		if err := uc.Repo.UpdateEventDate(ctx, cr.EventID, *cr.RequestedDate); err != nil {
			// the resolution stands; the date move is retried by the caller
			log.Printf("resolve change request %s: update event date: %v", cr.ID, err)
		}
	}
	return cr, nil
}
