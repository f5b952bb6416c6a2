package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	family "github.com/carolinadevia11/Bridge/internal/pkg/family/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/family/persistence/repository/port"
)

type PgFamilyRepository struct {
	pool *pgxpool.Pool
}

func NewPgFamilyRepository(pool *pgxpool.Pool) *PgFamilyRepository {
	return &PgFamilyRepository{pool: pool}
}

var _ repository.FamilyRepository = (*PgFamilyRepository)(nil)

func (r *PgFamilyRepository) Create(ctx context.Context, f family.Family) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgFamilyRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO directory.family (family_name, parent1_email, parent2_email, custody_arrangement, created_at, linked_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id::text
	`, f.FamilyName, f.Parent1Email, f.Parent2Email, f.CustodyArrangement, f.CreatedAt, f.LinkedAt).Scan(&id)
	return id, err
}

func (r *PgFamilyRepository) FindByID(ctx context.Context, id string) (*family.Family, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgFamilyRepository: nil pool")
	}
	return r.findOne(ctx, `WHERE id = $1::uuid`, id)
}

func (r *PgFamilyRepository) FindByParentEmail(ctx context.Context, email string) (*family.Family, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgFamilyRepository: nil pool")
	}
	return r.findOne(ctx, `WHERE parent1_email = $1 OR parent2_email = $1`, email)
}

func (r *PgFamilyRepository) findOne(ctx context.Context, where string, arg any) (*family.Family, error) {
	var f family.Family
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, family_name, parent1_email, parent2_email, custody_arrangement, created_at, linked_at
		FROM directory.family `+where,
		arg,
	).Scan(&f.ID, &f.FamilyName, &f.Parent1Email, &f.Parent2Email, &f.CustodyArrangement, &f.CreatedAt, &f.LinkedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	children, err := r.listChildren(ctx, f.ID)
	if err != nil {
		return nil, err
	}
	f.Children = children
	return &f, nil
}

func (r *PgFamilyRepository) listChildren(ctx context.Context, familyID string) ([]family.Child, error) {
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

	var children []family.Child
	for rows.Next() {
		var c family.Child
		if err := rows.Scan(&c.ID, &c.FamilyID, &c.Name, &c.DateOfBirth, &c.Grade, &c.School, &c.Allergies, &c.Medications, &c.Notes); err != nil {
			return nil, err
		}
		children = append(children, c)
	}
	return children, rows.Err()
}

func (r *PgFamilyRepository) LinkSecondParent(ctx context.Context, familyID, parent2Email string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgFamilyRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `
		UPDATE directory.family
		SET parent2_email = $2, linked_at = $3
		WHERE id = $1::uuid
	`, familyID, parent2Email, time.Now().UTC())
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PgFamilyRepository) AddChild(ctx context.Context, c family.Child) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgFamilyRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO directory.child (family_id, name, date_of_birth, grade, school, allergies, medications, notes)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id::text
	`, c.FamilyID, c.Name, c.DateOfBirth, c.Grade, c.School, c.Allergies, c.Medications, c.Notes).Scan(&id)
	return id, err
}

func (r *PgFamilyRepository) UpdateChild(ctx context.Context, c family.Child) error {
	if r == nil || r.pool == nil {
		return errors.New("PgFamilyRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `
		UPDATE directory.child
		SET name = $3, date_of_birth = $4, grade = $5, school = $6, allergies = $7, medications = $8, notes = $9
		WHERE id = $1::uuid AND family_id = $2::uuid
	`, c.ID, c.FamilyID, c.Name, c.DateOfBirth, c.Grade, c.School, c.Allergies, c.Medications, c.Notes)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PgFamilyRepository) RemoveChild(ctx context.Context, familyID, childID string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgFamilyRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `
		DELETE FROM directory.child
		WHERE id = $1::uuid AND family_id = $2::uuid
	`, childID, familyID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
