package usecase

import (
	"errors"
	"fmt"

	repository "github.com/carolinadevia11/Bridge/internal/pkg/calendar/persistence/repository/port"
	familyrepo "github.com/carolinadevia11/Bridge/internal/pkg/family/persistence/repository/port"
)

// ErrPersistence indicates an infrastructure/repository failure inside a use case
var ErrPersistence = fmt.Errorf("calendar use case persistence error")

// wrapRepoErr passes the not-found sentinel through untouched and wraps
// everything else as a persistence failure.
func wrapRepoErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}

// wrapFamilyErr keeps the family not-found sentinel intact and wraps every
// other lookup failure as a persistence error so infrastructure detail never
// reaches the client.
func wrapFamilyErr(err error) error {
	if errors.Is(err, familyrepo.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}
