package usecase

import (
	"context"

	admin "github.com/carolinadevia11/Bridge/internal/pkg/admin/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/admin/persistence/repository/port"
)

type ListFamiliesUseCase struct {
	Repo repository.ReportingRepository
}

func NewListFamiliesUseCase(repo repository.ReportingRepository) *ListFamiliesUseCase {
	return &ListFamiliesUseCase{Repo: repo}
}

// Execute returns every family with parent account detail for the back office.
func (uc *ListFamiliesUseCase) Execute(ctx context.Context) ([]admin.FamilyOverview, error) {
	overviews, err := uc.Repo.ListFamilyOverviews(ctx)
	if err != nil {
		return nil, wrapRepoErr(err)
	}
	if overviews == nil {
		overviews = []admin.FamilyOverview{}
	}
	return overviews, nil
}
