package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	calendar "github.com/carolinadevia11/Bridge/internal/pkg/calendar/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/calendar/persistence/repository/port"
)

type PgCalendarRepository struct {
	pool *pgxpool.Pool
}

func NewPgCalendarRepository(pool *pgxpool.Pool) *PgCalendarRepository {
	return &PgCalendarRepository{pool: pool}
}

var _ repository.CalendarRepository = (*PgCalendarRepository)(nil)

func (r *PgCalendarRepository) CreateEvent(ctx context.Context, e calendar.Event) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgCalendarRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO calendar.event (family_id, date, type, title, parent, is_swappable, created_at)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, $7)
		RETURNING id::text
	`, e.FamilyID, e.Date, e.Type, e.Title, e.Parent, e.IsSwappable, e.CreatedAt).Scan(&id)
	return id, err
}

func (r *PgCalendarRepository) GetEvent(ctx context.Context, id string) (*calendar.Event, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgCalendarRepository: nil pool")
	}
	var e calendar.Event
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, family_id::text, date, type, title, parent, is_swappable, created_at
		FROM calendar.event
		WHERE id = $1::uuid
	`, id).Scan(&e.ID, &e.FamilyID, &e.Date, &e.Type, &e.Title, &e.Parent, &e.IsSwappable, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PgCalendarRepository) ListEventsByFamily(ctx context.Context, familyID string) ([]calendar.Event, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgCalendarRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, family_id::text, date, type, title, parent, is_swappable, created_at
		FROM calendar.event
		WHERE family_id = $1::uuid
		ORDER BY date ASC
	`, familyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []calendar.Event
	for rows.Next() {
		var e calendar.Event
		if err := rows.Scan(&e.ID, &e.FamilyID, &e.Date, &e.Type, &e.Title, &e.Parent, &e.IsSwappable, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *PgCalendarRepository) UpdateEventDate(ctx context.Context, eventID string, date time.Time) error {
	if r == nil || r.pool == nil {
		return errors.New("PgCalendarRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `
		UPDATE calendar.event
		SET date = $2
		WHERE id = $1::uuid
	`, eventID, date)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PgCalendarRepository) DeleteEvent(ctx context.Context, id string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgCalendarRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `
		DELETE FROM calendar.event
		WHERE id = $1::uuid
	`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PgCalendarRepository) CreateChangeRequest(ctx context.Context, cr calendar.ChangeRequest) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgCalendarRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO calendar.change_request (event_id, family_id, requested_by_email, status, requested_date, reason, created_at)
		VALUES ($1::uuid, $2::uuid, $3, $4, $5, $6, $7)
		RETURNING id::text
	`, cr.EventID, cr.FamilyID, cr.RequestedByEmail, cr.Status, cr.RequestedDate, cr.Reason, cr.CreatedAt).Scan(&id)
	return id, err
}

func (r *PgCalendarRepository) GetChangeRequest(ctx context.Context, id string) (*calendar.ChangeRequest, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgCalendarRepository: nil pool")
	}
	var cr calendar.ChangeRequest
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, event_id::text, family_id::text, requested_by_email, status, requested_date, reason, created_at
		FROM calendar.change_request
		WHERE id = $1::uuid
	`, id).Scan(&cr.ID, &cr.EventID, &cr.FamilyID, &cr.RequestedByEmail, &cr.Status, &cr.RequestedDate, &cr.Reason, &cr.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cr, nil
}

func (r *PgCalendarRepository) ListChangeRequestsByFamily(ctx context.Context, familyID string) ([]calendar.ChangeRequest, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgCalendarRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, event_id::text, family_id::text, requested_by_email, status, requested_date, reason, created_at
		FROM calendar.change_request
		WHERE family_id = $1::uuid
		ORDER BY created_at DESC
	`, familyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []calendar.ChangeRequest
	for rows.Next() {
		var cr calendar.ChangeRequest
		if err := rows.Scan(&cr.ID, &cr.EventID, &cr.FamilyID, &cr.RequestedByEmail, &cr.Status, &cr.RequestedDate, &cr.Reason, &cr.CreatedAt); err != nil {
			return nil, err
		}
		reqs = append(reqs, cr)
	}
	return reqs, rows.Err()
}

// SetChangeRequestStatus resolves a pending request. The pending guard lives
// in the statement so two concurrent resolutions cannot both win.
func (r *PgCalendarRepository) SetChangeRequestStatus(ctx context.Context, id, status string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgCalendarRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `
		UPDATE calendar.change_request
		SET status = $2
		WHERE id = $1::uuid AND status = 'pending'
	`, id, status)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return calendar.ErrAlreadyResolved
	}
	return nil
}
