package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	auth "github.com/carolinadevia11/Bridge/internal/pkg/auth/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/auth/persistence/repository/port"
)

type PgUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

var _ repository.UserRepository = (*PgUserRepository)(nil)

func (r *PgUserRepository) Create(ctx context.Context, u auth.User) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgUserRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO account.app_user (first_name, last_name, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id::text
	`, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.Role, u.CreatedAt).Scan(&id)
	// two concurrent signups can both pass the pre-insert lookup; the unique
	// index on email decides the winner
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return "", auth.ErrEmailTaken
	}
	return id, err
}

func (r *PgUserRepository) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgUserRepository: nil pool")
	}
	var u auth.User
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, first_name, last_name, email, password_hash, role, created_at
		FROM account.app_user
		WHERE email = $1
	`, email).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PgUserRepository) ListAll(ctx context.Context) ([]auth.User, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgUserRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, first_name, last_name, email, password_hash, role, created_at
		FROM account.app_user
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []auth.User
	for rows.Next() {
		var u auth.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PgUserRepository) CountAll(ctx context.Context) (int64, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("PgUserRepository: nil pool")
	}
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM account.app_user`).Scan(&n)
	return n, err
}

// UpsertAdmin inserts the bootstrap admin account or refreshes its password
// hash and role when the email already exists.
func (r *PgUserRepository) UpsertAdmin(ctx context.Context, u auth.User) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgUserRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO account.app_user (first_name, last_name, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email)
		DO UPDATE SET password_hash = EXCLUDED.password_hash, role = EXCLUDED.role
		RETURNING id::text
	`, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.Role, u.CreatedAt).Scan(&id)
	return id, err
}
