package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	admin "github.com/carolinadevia11/Bridge/internal/pkg/admin/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/admin/persistence/repository/port"
	family "github.com/carolinadevia11/Bridge/internal/pkg/family/application/domain"
)

type PgReportingRepository struct {
	pool *pgxpool.Pool
}

func NewPgReportingRepository(pool *pgxpool.Pool) *PgReportingRepository {
	return &PgReportingRepository{pool: pool}
}

var _ repository.ReportingRepository = (*PgReportingRepository)(nil)

const familyOverviewQuery = `
	SELECT f.id::text, f.family_name, f.custody_arrangement, f.created_at, f.linked_at,
	       u1.id::text, u1.email, u1.first_name, u1.last_name, u1.role, u1.created_at,
	       u2.id::text, u2.email, u2.first_name, u2.last_name, u2.role, u2.created_at
	FROM directory.family f
	JOIN account.app_user u1 ON u1.email = f.parent1_email
	LEFT JOIN account.app_user u2 ON u2.email = f.parent2_email
`

func scanFamilyOverview(row pgx.Row) (*admin.FamilyOverview, error) {
	var (
		f  admin.FamilyOverview
		p2 struct {
			ID, Email, FirstName, LastName, Role *string
			CreatedAt                            *time.Time
		}
	)
	err := row.Scan(
		&f.ID, &f.FamilyName, &f.CustodyArrangement, &f.CreatedAt, &f.LinkedAt,
		&f.Parent1.ID, &f.Parent1.Email, &f.Parent1.FirstName, &f.Parent1.LastName, &f.Parent1.Role, &f.Parent1.CreatedAt,
		&p2.ID, &p2.Email, &p2.FirstName, &p2.LastName, &p2.Role, &p2.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p2.ID != nil {
		f.Parent2 = &admin.ParentAccount{
			ID:        *p2.ID,
			Email:     *p2.Email,
			FirstName: *p2.FirstName,
			LastName:  *p2.LastName,
			Role:      *p2.Role,
			CreatedAt: *p2.CreatedAt,
		}
	}
	return &f, nil
}

func (r *PgReportingRepository) ListFamilyOverviews(ctx context.Context) ([]admin.FamilyOverview, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgReportingRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, familyOverviewQuery+` ORDER BY f.created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overviews []admin.FamilyOverview
	for rows.Next() {
		f, err := scanFamilyOverview(rows)
		if err != nil {
			return nil, err
		}
		overviews = append(overviews, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	children, err := r.listAllChildren(ctx)
	if err != nil {
		return nil, err
	}
	for i := range overviews {
		overviews[i].Children = children[overviews[i].ID]
	}
	return overviews, nil
}

func (r *PgReportingRepository) GetFamilyOverview(ctx context.Context, familyID string) (*admin.FamilyOverview, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgReportingRepository: nil pool")
	}
	f, err := scanFamilyOverview(r.pool.QueryRow(ctx, familyOverviewQuery+` WHERE f.id = $1::uuid`, familyID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id::text, family_id::text, name, date_of_birth, grade, school, allergies, medications, notes
		FROM directory.child
		WHERE family_id = $1::uuid
		ORDER BY date_of_birth
	`, familyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var c family.Child
		if err := rows.Scan(&c.ID, &c.FamilyID, &c.Name, &c.DateOfBirth, &c.Grade, &c.School, &c.Allergies, &c.Medications, &c.Notes); err != nil {
			return nil, err
		}
		f.Children = append(f.Children, c)
	}
	return f, rows.Err()
}

func (r *PgReportingRepository) Stats(ctx context.Context) (*admin.Stats, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgReportingRepository: nil pool")
	}
	var s admin.Stats
	err := r.pool.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM directory.family),
			(SELECT count(*) FROM directory.family WHERE parent2_email IS NOT NULL),
			(SELECT count(*) FROM account.app_user),
			(SELECT count(*) FROM directory.child)
	`).Scan(&s.TotalFamilies, &s.LinkedFamilies, &s.TotalUsers, &s.TotalChildren)
	if err != nil {
		return nil, err
	}
	s.UnlinkedFamilies = s.TotalFamilies - s.LinkedFamilies
	return &s, nil
}

func (r *PgReportingRepository) ListUserOverviews(ctx context.Context) ([]admin.UserOverview, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgReportingRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT u.id::text, u.first_name, u.last_name, u.email, u.role, u.created_at,
		       f.id::text, f.family_name
		FROM account.app_user u
		LEFT JOIN directory.family f ON f.parent1_email = u.email OR f.parent2_email = u.email
		ORDER BY u.created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []admin.UserOverview
	for rows.Next() {
		var u admin.UserOverview
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Role, &u.CreatedAt, &u.FamilyID, &u.FamilyName); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// listAllChildren loads every child once and groups them by family, avoiding
// a per-family query in the list view.
func (r *PgReportingRepository) listAllChildren(ctx context.Context) (map[string][]family.Child, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, family_id::text, name, date_of_birth, grade, school, allergies, medications, notes
		FROM directory.child
		ORDER BY date_of_birth
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	grouped := make(map[string][]family.Child)
	for rows.Next() {
		var c family.Child
		if err := rows.Scan(&c.ID, &c.FamilyID, &c.Name, &c.DateOfBirth, &c.Grade, &c.School, &c.Allergies, &c.Medications, &c.Notes); err != nil {
			return nil, err
		}
		grouped[c.FamilyID] = append(grouped[c.FamilyID], c)
	}
	return grouped, rows.Err()
}
