package usecase

import (
	"errors"
	"fmt"

	repository "github.com/carolinadevia11/Bridge/internal/pkg/messaging/persistence/repository/port"
)

// ErrPersistence indicates an infrastructure/repository failure inside a use case
var ErrPersistence = fmt.Errorf("messaging use case persistence error")

// wrapRepoErr passes the not-found sentinel through untouched and wraps
// everything else as a persistence failure.
func wrapRepoErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}
