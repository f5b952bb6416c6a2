package repository

import (
	"context"
	"errors"
	"time"

	calendar "github.com/carolinadevia11/Bridge/internal/pkg/calendar/application/domain"
)

// ErrNotFound signals that no event or change request matched the lookup.
var ErrNotFound = errors.New("calendar repository: not found")

// CalendarRepository defines persistence operations for events and custody
// change requests, both scoped to a family.
type CalendarRepository interface {
	CreateEvent(ctx context.Context, e calendar.Event) (string, error)
	GetEvent(ctx context.Context, id string) (*calendar.Event, error)
	ListEventsByFamily(ctx context.Context, familyID string) ([]calendar.Event, error)
	UpdateEventDate(ctx context.Context, eventID string, date time.Time) error
	DeleteEvent(ctx context.Context, id string) error

	CreateChangeRequest(ctx context.Context, r calendar.ChangeRequest) (string, error)
	GetChangeRequest(ctx context.Context, id string) (*calendar.ChangeRequest, error)
	ListChangeRequestsByFamily(ctx context.Context, familyID string) ([]calendar.ChangeRequest, error)
	SetChangeRequestStatus(ctx context.Context, id, status string) error
}
