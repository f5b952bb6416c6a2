package usecase

import (
	"context"

	admin "github.com/carolinadevia11/Bridge/internal/pkg/admin/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/admin/persistence/repository/port"
)

type ListUsersUseCase struct {
	Repo repository.ReportingRepository
}

func NewListUsersUseCase(repo repository.ReportingRepository) *ListUsersUseCase {
	return &ListUsersUseCase{Repo: repo}
}

// Execute returns every account annotated with its family membership.
func (uc *ListUsersUseCase) Execute(ctx context.Context) ([]admin.UserOverview, error) {
	users, err := uc.Repo.ListUserOverviews(ctx)
	if err != nil {
		return nil, wrapRepoErr(err)
	}
	if users == nil {
		users = []admin.UserOverview{}
	}
	return users, nil
}
