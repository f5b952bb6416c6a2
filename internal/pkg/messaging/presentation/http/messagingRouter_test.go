package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/carolinadevia11/Bridge/internal/pkg/auth/token"
	family "github.com/carolinadevia11/Bridge/internal/pkg/family/application/domain"
	familyrepo "github.com/carolinadevia11/Bridge/internal/pkg/family/persistence/repository/port"
	messaging "github.com/carolinadevia11/Bridge/internal/pkg/messaging/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/messaging/persistence/repository/port"
)

const (
	alice = "alice@example.com"
	bob   = "bob@example.com"
)

// memConversationRepo backs the router test without a database.
type memConversationRepo struct {
	mu     sync.Mutex
	nextID int
	convs  map[string]*messaging.Conversation
	msgs   map[string][]messaging.Message
	notes  []messaging.Notification
}

var _ repository.ConversationRepository = (*memConversationRepo)(nil)

func newMemConversationRepo() *memConversationRepo {
	return &memConversationRepo{
		convs: make(map[string]*messaging.Conversation),
		msgs:  make(map[string][]messaging.Message),
	}
}

func (m *memConversationRepo) genID() string {
	m.nextID++
	return fmt.Sprintf("conv-%d", m.nextID)
}

func (m *memConversationRepo) CreateConversation(_ context.Context, c messaging.Conversation) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = m.genID()
	m.convs[c.ID] = &c
	return c.ID, nil
}

func (m *memConversationRepo) GetConversation(_ context.Context, id string) (*messaging.Conversation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.convs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memConversationRepo) ListConversationsByFamily(_ context.Context, familyID string, includeArchived bool) ([]messaging.Conversation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []messaging.Conversation
	for _, c := range m.convs {
		if c.FamilyID == familyID && (includeArchived || !c.IsArchived) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *memConversationRepo) SetStarred(_ context.Context, id string, starred bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.convs[id]
	if !ok {
		return repository.ErrNotFound
	}
	c.IsStarred = starred
	return nil
}

func (m *memConversationRepo) SetArchived(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.convs[id]
	if !ok {
		return repository.ErrNotFound
	}
	c.IsArchived = true
	return nil
}

func (m *memConversationRepo) SetLastMessageAt(_ context.Context, id string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.convs[id]
	if !ok {
		return repository.ErrNotFound
	}
	c.LastMessageAt = &at
	return nil
}

func (m *memConversationRepo) SaveMessage(_ context.Context, msg messaging.Message) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	msg.ID = m.genID()
	m.msgs[msg.ConversationID] = append(m.msgs[msg.ConversationID], msg)
	return msg.ID, nil
}

func (m *memConversationRepo) ListMessages(_ context.Context, id string) ([]messaging.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]messaging.Message(nil), m.msgs[id]...), nil
}

func (m *memConversationRepo) MarkMessagesRead(_ context.Context, id, reader string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	msgs := m.msgs[id]
	for i := range msgs {
		if msgs[i].SenderEmail != reader && msgs[i].Status != messaging.StatusRead {
			msgs[i].Status = messaging.StatusRead
			n++
		}
	}
	return n, nil
}

func (m *memConversationRepo) SaveNotification(_ context.Context, n messaging.Notification) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n.ID = m.genID()
	m.notes = append(m.notes, n)
	return n.ID, nil
}

func (m *memConversationRepo) ListUnreadNotifications(_ context.Context, recipient string) ([]messaging.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []messaging.Notification
	for _, n := range m.notes {
		if n.RecipientEmail == recipient && n.ReadAt == nil {
			out = append(out, n)
		}
	}
	return out, nil
}

// memFamilyRepo serves one fixed family.
type memFamilyRepo struct {
	fam family.Family
}

var _ familyrepo.FamilyRepository = (*memFamilyRepo)(nil)

func linkedFamily() *memFamilyRepo {
	p2 := bob
	now := time.Now().UTC()
	return &memFamilyRepo{fam: family.Family{
		ID: "fam-1", FamilyName: "Test Family",
		Parent1Email: alice, Parent2Email: &p2,
		CreatedAt: now, LinkedAt: &now,
	}}
}

func unlinkedFamily() *memFamilyRepo {
	return &memFamilyRepo{fam: family.Family{
		ID: "fam-1", FamilyName: "Solo", Parent1Email: alice, CreatedAt: time.Now().UTC(),
	}}
}

func (m *memFamilyRepo) FindByParentEmail(_ context.Context, email string) (*family.Family, error) {
	if email == m.fam.Parent1Email || (m.fam.Parent2Email != nil && email == *m.fam.Parent2Email) {
		cp := m.fam
		return &cp, nil
	}
	return nil, familyrepo.ErrNotFound
}
func (m *memFamilyRepo) Create(_ context.Context, _ family.Family) (string, error) {
	return "", familyrepo.ErrNotFound
}
func (m *memFamilyRepo) FindByID(_ context.Context, id string) (*family.Family, error) {
	if id == m.fam.ID {
		cp := m.fam
		return &cp, nil
	}
	return nil, familyrepo.ErrNotFound
}
func (m *memFamilyRepo) LinkSecondParent(_ context.Context, _, _ string) error {
	return familyrepo.ErrNotFound
}
func (m *memFamilyRepo) AddChild(_ context.Context, _ family.Child) (string, error) {
	return "", familyrepo.ErrNotFound
}
func (m *memFamilyRepo) UpdateChild(_ context.Context, _ family.Child) error {
	return familyrepo.ErrNotFound
}
func (m *memFamilyRepo) RemoveChild(_ context.Context, _, _ string) error {
	return familyrepo.ErrNotFound
}

type testEnv struct {
	engine *gin.Engine
	tokens *token.Manager
	convs  *memConversationRepo
}

func setup(t *testing.T, fams familyrepo.FamilyRepository) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := token.NewManager("router-test-secret", time.Hour)
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}

	convs := newMemConversationRepo()
	engine := gin.New()
	g := engine.Group("/api/v1")
	RegisterRoutesWith(g, convs, fams, nil, nil, tokens)

	return &testEnv{engine: engine, tokens: tokens, convs: convs}
}

func (e *testEnv) bearer(t *testing.T, email string) string {
	t.Helper()
	raw, err := e.tokens.Issue(token.Identity{Email: email, Role: "parent"}, time.Now())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return "Bearer " + raw
}

func (e *testEnv) do(t *testing.T, method, path, auth string, body any) *httptest.ResponseRecorder {
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
	e.engine.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, into any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), into); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func TestMessagingEndpointsRequireAuth(t *testing.T) {
	env := setup(t, linkedFamily())

	rec := env.do(t, http.MethodGet, "/api/v1/messaging/conversations", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if rec.Header().Get("WWW-Authenticate") != "Bearer" {
		t.Fatal("401 must carry WWW-Authenticate: Bearer")
	}
}

func TestCreateConversationHTTP(t *testing.T) {
	env := setup(t, linkedFamily())

	rec := env.do(t, http.MethodPost, "/api/v1/messaging/conversations", env.bearer(t, alice),
		gin.H{"subject": "Pickup schedule", "category": "scheduling"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var conv map[string]any
	decode(t, rec, &conv)
	if conv["subject"] != "Pickup schedule" {
		t.Fatalf("unexpected subject: %v", conv["subject"])
	}
	participants, _ := conv["participants"].([]any)
	if len(participants) != 2 {
		t.Fatalf("expected 2 participants, got %v", conv["participants"])
	}
	if conv["messageCount"].(float64) != 0 || conv["unreadCount"].(float64) != 0 {
		t.Fatalf("fresh conversation must have zero counts: %v", conv)
	}
	if conv["lastMessageAt"] != nil {
		t.Fatalf("fresh conversation must have null lastMessageAt, got %v", conv["lastMessageAt"])
	}
}

func TestCreateConversationUnlinkedFamilyHTTP(t *testing.T) {
	env := setup(t, unlinkedFamily())

	rec := env.do(t, http.MethodPost, "/api/v1/messaging/conversations", env.bearer(t, alice),
		gin.H{"subject": "Pickup schedule"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unlinked family, got %d", rec.Code)
	}
}

func TestMessagingFlowHTTP(t *testing.T) {
	env := setup(t, linkedFamily())

	// Alice opens a thread and sends a message.
	rec := env.do(t, http.MethodPost, "/api/v1/messaging/conversations", env.bearer(t, alice),
		gin.H{"subject": "Pickup schedule"})
	var conv map[string]any
	decode(t, rec, &conv)
	convID := conv["id"].(string)

	rec = env.do(t, http.MethodPost, "/api/v1/messaging/messages", env.bearer(t, alice),
		gin.H{"conversation_id": convID, "content": "Can you take Friday?", "tone": "neutral"})
	if rec.Code != http.StatusOK {
		t.Fatalf("send: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var sent map[string]any
	decode(t, rec, &sent)
	if sent["status"] != "sent" || sent["senderEmail"] != alice {
		t.Fatalf("unexpected message payload: %v", sent)
	}

	// Bob's inbox shows one unread.
	rec = env.do(t, http.MethodGet, "/api/v1/messaging/conversations", env.bearer(t, bob), nil)
	var inbox []map[string]any
	decode(t, rec, &inbox)
	if len(inbox) != 1 || inbox[0]["unreadCount"].(float64) != 1 {
		t.Fatalf("bob should have 1 unread: %v", inbox)
	}

	// Bob opens the thread; the response already shows read.
	rec = env.do(t, http.MethodGet, "/api/v1/messaging/conversations/"+convID+"/messages", env.bearer(t, bob), nil)
	var thread []map[string]any
	decode(t, rec, &thread)
	if len(thread) != 1 || thread[0]["status"] != "read" {
		t.Fatalf("thread should show read after fetch: %v", thread)
	}

	rec = env.do(t, http.MethodGet, "/api/v1/messaging/conversations", env.bearer(t, bob), nil)
	decode(t, rec, &inbox)
	if inbox[0]["unreadCount"].(float64) != 0 {
		t.Fatalf("bob should have 0 unread after reading: %v", inbox)
	}

	// Star toggles on and back off.
	rec = env.do(t, http.MethodPatch, "/api/v1/messaging/conversations/"+convID+"/star", env.bearer(t, alice), nil)
	var star map[string]any
	decode(t, rec, &star)
	if star["isStarred"] != true {
		t.Fatalf("expected isStarred=true, got %v", star)
	}
	rec = env.do(t, http.MethodPatch, "/api/v1/messaging/conversations/"+convID+"/star", env.bearer(t, alice), nil)
	decode(t, rec, &star)
	if star["isStarred"] != false {
		t.Fatalf("expected isStarred=false, got %v", star)
	}

	// Archive hides the thread from the inbox; repeating is fine.
	for i := 0; i < 2; i++ {
		rec = env.do(t, http.MethodPatch, "/api/v1/messaging/conversations/"+convID+"/archive", env.bearer(t, alice), nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("archive attempt %d: expected 200, got %d", i+1, rec.Code)
		}
	}
	rec = env.do(t, http.MethodGet, "/api/v1/messaging/conversations", env.bearer(t, alice), nil)
	decode(t, rec, &inbox)
	if len(inbox) != 0 {
		t.Fatalf("archived thread must not be listed: %v", inbox)
	}
}

func TestMessagingAccessControlHTTP(t *testing.T) {
	env := setup(t, linkedFamily())

	rec := env.do(t, http.MethodPost, "/api/v1/messaging/conversations", env.bearer(t, alice),
		gin.H{"subject": "Private"})
	var conv map[string]any
	decode(t, rec, &conv)
	convID := conv["id"].(string)

	// A stranger with a valid token but no family membership.
	rec = env.do(t, http.MethodGet, "/api/v1/messaging/conversations/"+convID+"/messages",
		env.bearer(t, "mallory@example.com"), nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	// Unknown conversation is a 404.
	rec = env.do(t, http.MethodGet, "/api/v1/messaging/conversations/ghost/messages", env.bearer(t, alice), nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	// Users without a family get an empty inbox, not an error.
	rec = env.do(t, http.MethodGet, "/api/v1/messaging/conversations", env.bearer(t, "mallory@example.com"), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var inbox []map[string]any
	decode(t, rec, &inbox)
	if len(inbox) != 0 {
		t.Fatalf("expected empty inbox, got %v", inbox)
	}
}
