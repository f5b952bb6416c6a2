package usecase

import (
	"context"

	admin "github.com/carolinadevia11/Bridge/internal/pkg/admin/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/admin/persistence/repository/port"
)

type GetStatsUseCase struct {
	Repo repository.ReportingRepository
}

func NewGetStatsUseCase(repo repository.ReportingRepository) *GetStatsUseCase {
	return &GetStatsUseCase{Repo: repo}
}

func (uc *GetStatsUseCase) Execute(ctx context.Context) (*admin.Stats, error) {
	s, err := uc.Repo.Stats(ctx)
	if err != nil {
		return nil, wrapRepoErr(err)
	}
	return s, nil
}
