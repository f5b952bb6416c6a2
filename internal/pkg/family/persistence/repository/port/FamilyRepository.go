package repository

import (
	"context"
	"errors"

	family "github.com/carolinadevia11/Bridge/internal/pkg/family/application/domain"
)

// ErrNotFound signals that no family (or child) row matched the lookup.
// Adapters must map their driver's no-rows error to this sentinel.
var ErrNotFound = errors.New("family repository: not found")

// FamilyRepository defines persistence operations for the family directory.
// FindByParentEmail is the "family for user" lookup the messaging core
// resolves participants through.
type FamilyRepository interface {
	Create(ctx context.Context, f family.Family) (string, error)
	FindByID(ctx context.Context, id string) (*family.Family, error)
	FindByParentEmail(ctx context.Context, email string) (*family.Family, error)
	LinkSecondParent(ctx context.Context, familyID, parent2Email string) error

	AddChild(ctx context.Context, c family.Child) (string, error)
	UpdateChild(ctx context.Context, c family.Child) error
	RemoveChild(ctx context.Context, familyID, childID string) error
}
