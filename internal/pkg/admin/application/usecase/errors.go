package usecase

import (
	"errors"
	"fmt"

	repository "github.com/carolinadevia11/Bridge/internal/pkg/admin/persistence/repository/port"
)

// ErrPersistence indicates an infrastructure/repository failure inside a use case
var ErrPersistence = fmt.Errorf("admin use case persistence error")

func wrapRepoErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}
