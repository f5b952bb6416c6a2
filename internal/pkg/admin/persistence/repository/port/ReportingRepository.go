package repository

import (
	"context"
	"errors"

	admin "github.com/carolinadevia11/Bridge/internal/pkg/admin/application/domain"
)

// ErrNotFound signals that no family matched the lookup.
var ErrNotFound = errors.New("reporting repository: not found")

// ReportingRepository serves the read-only back-office views. It joins across
// accounts, families and children; nothing here mutates state.
type ReportingRepository interface {
	ListFamilyOverviews(ctx context.Context) ([]admin.FamilyOverview, error)
	GetFamilyOverview(ctx context.Context, familyID string) (*admin.FamilyOverview, error)
	Stats(ctx context.Context) (*admin.Stats, error)
	ListUserOverviews(ctx context.Context) ([]admin.UserOverview, error)
}
