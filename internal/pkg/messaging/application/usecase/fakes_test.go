package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	family "github.com/carolinadevia11/Bridge/internal/pkg/family/application/domain"
	familyrepo "github.com/carolinadevia11/Bridge/internal/pkg/family/persistence/repository/port"
	messaging "github.com/carolinadevia11/Bridge/internal/pkg/messaging/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/messaging/persistence/repository/port"
)

// fakeConversationRepo is an in-memory ConversationRepository for use case
// tests. It mimics the adapter's semantics: MarkMessagesRead is a conditional
// bulk update, SetArchived is idempotent.
type fakeConversationRepo struct {
	mu     sync.Mutex
	nextID int

	convs map[string]*messaging.Conversation
	msgs  map[string][]messaging.Message
	notes []messaging.Notification

	failSetLastMessageAt bool
}

var _ repository.ConversationRepository = (*fakeConversationRepo)(nil)

func newFakeConversationRepo() *fakeConversationRepo {
	return &fakeConversationRepo{
		convs: make(map[string]*messaging.Conversation),
		msgs:  make(map[string][]messaging.Message),
	}
}

func (f *fakeConversationRepo) genID() string {
	f.nextID++
	return fmt.Sprintf("id-%d", f.nextID)
}

func (f *fakeConversationRepo) CreateConversation(_ context.Context, c messaging.Conversation) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.genID()
	c.ID = id
	f.convs[id] = &c
	return id, nil
}

func (f *fakeConversationRepo) GetConversation(_ context.Context, id string) (*messaging.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.convs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	cp.Participants = append([]string(nil), c.Participants...)
	return &cp, nil
}

func (f *fakeConversationRepo) ListConversationsByFamily(_ context.Context, familyID string, includeArchived bool) ([]messaging.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []messaging.Conversation
	for _, c := range f.convs {
		if c.FamilyID != familyID {
			continue
		}
		if c.IsArchived && !includeArchived {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeConversationRepo) SetStarred(_ context.Context, conversationID string, starred bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.convs[conversationID]
	if !ok {
		return repository.ErrNotFound
	}
	c.IsStarred = starred
	return nil
}

func (f *fakeConversationRepo) SetArchived(_ context.Context, conversationID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.convs[conversationID]
	if !ok {
		return repository.ErrNotFound
	}
	c.IsArchived = true
	return nil
}

func (f *fakeConversationRepo) SetLastMessageAt(_ context.Context, conversationID string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSetLastMessageAt {
		return errors.New("watermark write refused")
	}
	c, ok := f.convs[conversationID]
	if !ok {
		return repository.ErrNotFound
	}
	c.LastMessageAt = &at
	return nil
}

func (f *fakeConversationRepo) SaveMessage(_ context.Context, m messaging.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.genID()
	m.ID = id
	f.msgs[m.ConversationID] = append(f.msgs[m.ConversationID], m)
	return id, nil
}

func (f *fakeConversationRepo) ListMessages(_ context.Context, conversationID string) ([]messaging.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]messaging.Message(nil), f.msgs[conversationID]...), nil
}

func (f *fakeConversationRepo) MarkMessagesRead(_ context.Context, conversationID, readerEmail string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	msgs := f.msgs[conversationID]
	for i := range msgs {
		if msgs[i].SenderEmail != readerEmail && msgs[i].Status != messaging.StatusRead {
			msgs[i].Status = messaging.StatusRead
			n++
		}
	}
	return n, nil
}

func (f *fakeConversationRepo) SaveNotification(_ context.Context, n messaging.Notification) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n.ID = f.genID()
	f.notes = append(f.notes, n)
	return n.ID, nil
}

func (f *fakeConversationRepo) ListUnreadNotifications(_ context.Context, recipientEmail string) ([]messaging.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []messaging.Notification
	for _, n := range f.notes {
		if n.RecipientEmail == recipientEmail && n.ReadAt == nil {
			out = append(out, n)
		}
	}
	return out, nil
}

// storedStatus looks straight into the backing store, bypassing ReadView.
func (f *fakeConversationRepo) storedStatus(conversationID string, idx int) messaging.MessageStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.msgs[conversationID][idx].Status
}

// fakeFamilyRepo holds families keyed by id and resolves parents by email.
type fakeFamilyRepo struct {
	mu       sync.Mutex
	nextID   int
	families map[string]*family.Family
}

var _ familyrepo.FamilyRepository = (*fakeFamilyRepo)(nil)

func newFakeFamilyRepo() *fakeFamilyRepo {
	return &fakeFamilyRepo{families: make(map[string]*family.Family)}
}

func (f *fakeFamilyRepo) Create(_ context.Context, fam family.Family) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	id := fmt.Sprintf("fam-%d", f.nextID)
	fam.ID = id
	f.families[id] = &fam
	return id, nil
}

func (f *fakeFamilyRepo) FindByID(_ context.Context, id string) (*family.Family, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fam, ok := f.families[id]
	if !ok {
		return nil, familyrepo.ErrNotFound
	}
	cp := *fam
	return &cp, nil
}

func (f *fakeFamilyRepo) FindByParentEmail(_ context.Context, email string) (*family.Family, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, fam := range f.families {
		if fam.Parent1Email == email || (fam.Parent2Email != nil && *fam.Parent2Email == email) {
			cp := *fam
			return &cp, nil
		}
	}
	return nil, familyrepo.ErrNotFound
}

func (f *fakeFamilyRepo) LinkSecondParent(_ context.Context, familyID, parent2Email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	fam, ok := f.families[familyID]
	if !ok {
		return familyrepo.ErrNotFound
	}
	now := time.Now().UTC()
	fam.Parent2Email = &parent2Email
	fam.LinkedAt = &now
	return nil
}

func (f *fakeFamilyRepo) AddChild(_ context.Context, _ family.Child) (string, error) {
	return "", errors.New("not supported in fake")
}

func (f *fakeFamilyRepo) UpdateChild(_ context.Context, _ family.Child) error {
	return errors.New("not supported in fake")
}

func (f *fakeFamilyRepo) RemoveChild(_ context.Context, _, _ string) error {
	return errors.New("not supported in fake")
}

// addLinkedFamily seeds a family with both parent slots filled.
func (f *fakeFamilyRepo) addLinkedFamily(parent1, parent2 string) string {
	p2 := parent2
	now := time.Now().UTC()
	id, _ := f.Create(context.Background(), family.Family{
		FamilyName:   "Test Family",
		Parent1Email: parent1,
		Parent2Email: &p2,
		CreatedAt:    now,
		LinkedAt:     &now,
	})
	return id
}

// addUnlinkedFamily seeds a family with only parent1.
func (f *fakeFamilyRepo) addUnlinkedFamily(parent1 string) string {
	id, _ := f.Create(context.Background(), family.Family{
		FamilyName:   "Solo Family",
		Parent1Email: parent1,
		CreatedAt:    time.Now().UTC(),
	})
	return id
}
