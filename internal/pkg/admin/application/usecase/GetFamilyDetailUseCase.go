package usecase

import (
	"context"

	admin "github.com/carolinadevia11/Bridge/internal/pkg/admin/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/admin/persistence/repository/port"
)

type GetFamilyDetailUseCase struct {
	Repo repository.ReportingRepository
}

func NewGetFamilyDetailUseCase(repo repository.ReportingRepository) *GetFamilyDetailUseCase {
	return &GetFamilyDetailUseCase{Repo: repo}
}

func (uc *GetFamilyDetailUseCase) Execute(ctx context.Context, familyID string) (*admin.FamilyOverview, error) {
	f, err := uc.Repo.GetFamilyOverview(ctx, familyID)
	if err != nil {
		return nil, wrapRepoErr(err)
	}
	return f, nil
}
