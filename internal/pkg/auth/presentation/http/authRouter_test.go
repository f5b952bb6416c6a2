package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	auth "github.com/carolinadevia11/Bridge/internal/pkg/auth/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/auth/persistence/repository/port"
	"github.com/carolinadevia11/Bridge/internal/pkg/auth/token"
)

// memUserRepo backs the router test without a database.
type memUserRepo struct {
	mu     sync.Mutex
	nextID int
	users  map[string]*auth.User
}

var _ repository.UserRepository = (*memUserRepo)(nil)

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*auth.User)}
}

func (m *memUserRepo) Create(_ context.Context, u auth.User) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	u.ID = fmt.Sprintf("u-%d", m.nextID)
	m.users[u.Email] = &u
	return u.ID, nil
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[strings.ToLower(email)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) ListAll(_ context.Context) ([]auth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []auth.User
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memUserRepo) CountAll(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), nil
}

func (m *memUserRepo) UpsertAdmin(_ context.Context, u auth.User) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.users[u.Email]; ok {
		existing.Role = auth.RoleAdmin
		existing.PasswordHash = u.PasswordHash
		return existing.ID, nil
	}
	m.nextID++
	u.ID = fmt.Sprintf("u-%d", m.nextID)
	m.users[u.Email] = &u
	return u.ID, nil
}

func setupAuth(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := token.NewManager("auth-router-test-secret", time.Hour)
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}

	engine := gin.New()
	RegisterRoutesWith(engine.Group("/api/v1"), newMemUserRepo(), tokens)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, auth string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestSignUpLogInMeFlow(t *testing.T) {
	engine := setupAuth(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"firstName": "Pat",
		"lastName":  "Doe",
		"email":     "Pat@Example.com",
		"password":  "password123",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("signup: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var created map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode signup response: %v", err)
	}
	if created["email"] != "pat@example.com" || created["role"] != "parent" {
		t.Fatalf("unexpected signup payload: %v", created)
	}
	if _, leaked := created["passwordHash"]; leaked {
		t.Fatal("response must not carry the password hash")
	}

	rec = doJSON(t, engine, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "pat@example.com",
		"password": "password123",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var session map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &session); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if session["token_type"] != "bearer" || session["access_token"] == "" {
		t.Fatalf("unexpected login payload: %v", session)
	}

	rec = doJSON(t, engine, http.MethodGet, "/api/v1/auth/me",
		"Bearer "+session["access_token"].(string), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var me map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &me); err != nil {
		t.Fatalf("decode me response: %v", err)
	}
	if me["email"] != "pat@example.com" || me["firstName"] != "Pat" {
		t.Fatalf("unexpected profile: %v", me)
	}
}

func TestLogInRejectsBadCredentials(t *testing.T) {
	engine := setupAuth(t)

	doJSON(t, engine, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"firstName": "Pat", "lastName": "Doe",
		"email": "pat@example.com", "password": "password123",
	})

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "pat@example.com", "password": "wrong-pass",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if rec.Header().Get("WWW-Authenticate") != "Bearer" {
		t.Fatal("401 must carry WWW-Authenticate: Bearer")
	}
}

func TestMeRequiresToken(t *testing.T) {
	engine := setupAuth(t)

	rec := doJSON(t, engine, http.MethodGet, "/api/v1/auth/me", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	rec = doJSON(t, engine, http.MethodGet, "/api/v1/auth/me", "Bearer not-a-token", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", rec.Code)
	}
}

func TestDuplicateSignUp(t *testing.T) {
	engine := setupAuth(t)

	body := gin.H{
		"firstName": "Pat", "lastName": "Doe",
		"email": "pat@example.com", "password": "password123",
	}
	if rec := doJSON(t, engine, http.MethodPost, "/api/v1/auth/signup", "", body); rec.Code != http.StatusOK {
		t.Fatalf("first signup: expected 200, got %d", rec.Code)
	}
	rec := doJSON(t, engine, http.MethodPost, "/api/v1/auth/signup", "", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate signup: expected 400, got %d", rec.Code)
	}
}
