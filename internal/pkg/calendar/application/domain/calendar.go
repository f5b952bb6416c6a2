package calendar

import (
	"errors"
	"strings"
	"time"
)

// Change request statuses. A request starts pending and is resolved exactly
// once to approved or rejected.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

var (
	ErrAlreadyResolved = errors.New("change request already resolved")
	ErrOwnRequest      = errors.New("cannot resolve own change request")
	ErrInvalidStatus   = errors.New("status must be approved or rejected")
	ErrEmptyTitle      = errors.New("event title is required")
)

// Event is one shared calendar entry: a custody day, school activity or
// appointment. Parent is the email of the parent the event belongs to, when
// it belongs to one.
type Event struct {
	ID          string    `db:"id"`
	FamilyID    string    `db:"family_id"`
	Date        time.Time `db:"date"`
	Type        string    `db:"type"`
	Title       string    `db:"title"`
	Parent      *string   `db:"parent"`
	IsSwappable bool      `db:"is_swappable"`
	CreatedAt   time.Time `db:"created_at"`
}

// NewEvent validates and builds an event for the given family.
func NewEvent(familyID string, date time.Time, eventType, title string, parent *string, swappable bool) (*Event, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	return &Event{
		FamilyID:    familyID,
		Date:        date.UTC(),
		Type:        strings.TrimSpace(eventType),
		Title:       title,
		Parent:      parent,
		IsSwappable: swappable,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// ChangeRequest asks the other parent to approve a change to an event,
// optionally proposing a new date.
type ChangeRequest struct {
	ID               string     `db:"id"`
	EventID          string     `db:"event_id"`
	FamilyID         string     `db:"family_id"`
	RequestedByEmail string     `db:"requested_by_email"`
	Status           string     `db:"status"`
	RequestedDate    *time.Time `db:"requested_date"`
	Reason           *string    `db:"reason"`
	CreatedAt        time.Time  `db:"created_at"`
}

// NewChangeRequest builds a pending request against an event.
func NewChangeRequest(event *Event, requestedBy string, requestedDate *time.Time, reason *string) *ChangeRequest {
	if requestedDate != nil {
		d := requestedDate.UTC()
		requestedDate = &d
	}
	return &ChangeRequest{
		EventID:          event.ID,
		FamilyID:         event.FamilyID,
		RequestedByEmail: requestedBy,
		Status:           StatusPending,
		RequestedDate:    requestedDate,
		Reason:           reason,
		CreatedAt:        time.Now().UTC(),
	}
}

// IsPending reports whether the request can still be resolved.
func (r *ChangeRequest) IsPending() bool { return r.Status == StatusPending }

// ValidResolution reports whether status is a terminal resolution value.
func ValidResolution(status string) bool {
	return status == StatusApproved || status == StatusRejected
}
