package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	auth "github.com/carolinadevia11/Bridge/internal/pkg/auth/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/auth/persistence/repository/port"
	"github.com/carolinadevia11/Bridge/internal/pkg/auth/token"
)

// fakeUserRepo is an in-memory UserRepository keyed by email.
type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int
	users  map[string]*auth.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*auth.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u auth.User) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	u.ID = fmt.Sprintf("u-%d", f.nextID)
	f.users[u.Email] = &u
	return u.ID, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[strings.ToLower(email)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) ListAll(_ context.Context) ([]auth.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []auth.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) CountAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) UpsertAdmin(_ context.Context, u auth.User) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.users[u.Email]; ok {
		existing.Role = auth.RoleAdmin
		existing.PasswordHash = u.PasswordHash
		return existing.ID, nil
	}
	f.nextID++
	u.ID = fmt.Sprintf("u-%d", f.nextID)
	f.users[u.Email] = &u
	return u.ID, nil
}

func signUp(t *testing.T, repo *fakeUserRepo, email, password string) *auth.User {
	t.Helper()
	u, err := NewSignUpUseCase(repo).Execute(context.Background(), SignUpInput{
		FirstName: "Pat",
		LastName:  "Doe",
		Email:     email,
		Password:  password,
	})
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	return u
}

func TestSignUpRejectsShortPassword(t *testing.T) {
	_, err := NewSignUpUseCase(newFakeUserRepo()).Execute(context.Background(), SignUpInput{
		FirstName: "Pat", LastName: "Doe", Email: "pat@example.com", Password: "short",
	})
	if err == nil {
		t.Fatal("expected short password to be rejected")
	}
}

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	signUp(t, repo, "pat@example.com", "password123")

	_, err := NewSignUpUseCase(repo).Execute(context.Background(), SignUpInput{
		FirstName: "Other", LastName: "Person", Email: "pat@example.com", Password: "password456",
	})
	if !errors.Is(err, auth.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

// racingUserRepo loses the insert to a concurrent signup: the pre-insert
// lookup misses but the unique index on email rejects the row.
type racingUserRepo struct{ *fakeUserRepo }

func (racingUserRepo) Create(context.Context, auth.User) (string, error) {
	return "", auth.ErrEmailTaken
}

func TestSignUpLosingInsertRaceIsEmailTaken(t *testing.T) {
	repo := racingUserRepo{newFakeUserRepo()}

	_, err := NewSignUpUseCase(repo).Execute(context.Background(), SignUpInput{
		FirstName: "Pat", LastName: "Doe", Email: "pat@example.com", Password: "password123",
	})
	if !errors.Is(err, auth.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if errors.Is(err, ErrPersistence) {
		t.Fatal("a duplicate email is a client error, not a persistence failure")
	}
}

func TestSignUpNormalizesAndHashes(t *testing.T) {
	repo := newFakeUserRepo()
	u := signUp(t, repo, "  Pat@Example.COM ", "password123")

	if u.Email != "pat@example.com" {
		t.Fatalf("email not normalized: %q", u.Email)
	}
	if u.PasswordHash == "password123" || u.PasswordHash == "" {
		t.Fatal("password must be stored hashed")
	}
	if u.Role != auth.RoleParent {
		t.Fatalf("new accounts must be parents, got %q", u.Role)
	}
}

func TestLogInIssuesToken(t *testing.T) {
	repo := newFakeUserRepo()
	signUp(t, repo, "pat@example.com", "password123")

	tokens, _ := token.NewManager("test-secret", time.Hour)
	out, err := NewLogInUseCase(repo, tokens).Execute(context.Background(), LogInInput{
		Email: "pat@example.com", Password: "password123",
	})
	if err != nil {
		t.Fatalf("log in: %v", err)
	}
	if out.TokenType != "bearer" || out.AccessToken == "" {
		t.Fatalf("unexpected output: %+v", out)
	}

	id, err := tokens.Verify(out.AccessToken)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if id.Email != "pat@example.com" || id.Role != auth.RoleParent {
		t.Fatalf("unexpected identity: %+v", id)
	}
}

func TestLogInHidesWhichFieldWasWrong(t *testing.T) {
	repo := newFakeUserRepo()
	signUp(t, repo, "pat@example.com", "password123")
	tokens, _ := token.NewManager("test-secret", time.Hour)
	uc := NewLogInUseCase(repo, tokens)

	_, badPass := uc.Execute(context.Background(), LogInInput{Email: "pat@example.com", Password: "wrong-pass"})
	_, badEmail := uc.Execute(context.Background(), LogInInput{Email: "nobody@example.com", Password: "password123"})

	if !errors.Is(badPass, auth.ErrInvalidCredentials) || !errors.Is(badEmail, auth.ErrInvalidCredentials) {
		t.Fatalf("both failures must be ErrInvalidCredentials: %v / %v", badPass, badEmail)
	}
}

func TestGetProfilePassesThroughNotFound(t *testing.T) {
	repo := newFakeUserRepo()
	_, err := NewGetProfileUseCase(repo).Execute(context.Background(), "ghost@example.com")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
