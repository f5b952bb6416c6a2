package messaging

import (
	"errors"
	"strings"
	"time"
)

// Domain-level errors for messaging behaviors
var (
	ErrNotParticipant  = errors.New("messaging: user is not a participant in the conversation")
	ErrFamilyNotLinked = errors.New("messaging: family must be linked with both parents")
)

// Conversation is a messaging thread between the two linked parents of one
// family. The participant set is frozen at creation: re-linking the family
// later never rewrites existing threads.
type Conversation struct {
	ID            string     `db:"id"`
	FamilyID      string     `db:"family_id"`
	Subject       string     `db:"subject"`
	Category      string     `db:"category"`
	Participants  []string   `db:"participants"`
	IsStarred     bool       `db:"is_starred"`
	IsArchived    bool       `db:"is_archived"`
	CreatedAt     time.Time  `db:"created_at"`
	LastMessageAt *time.Time `db:"last_message_at"`
}

// HasParticipant tells whether email may read or write this conversation.
func (c *Conversation) HasParticipant(email string) bool {
	if c == nil {
		return false
	}
	for _, p := range c.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// LastActivity is the sort key for the inbox: the newest message timestamp,
// falling back to creation time for threads without messages.
func (c *Conversation) LastActivity() time.Time {
	if c.LastMessageAt != nil {
		return *c.LastMessageAt
	}
	return c.CreatedAt
}

// NewConversation freezes the two parent emails as the participant set.
func NewConversation(familyID, subject, category string, participants []string) (*Conversation, error) {
	subject = strings.TrimSpace(subject)
	if familyID == "" {
		return nil, errors.New("messaging: family id is required")
	}
	if subject == "" {
		return nil, errors.New("messaging: subject is required")
	}
	if len(participants) != 2 {
		return nil, ErrFamilyNotLinked
	}

	return &Conversation{
		FamilyID:     familyID,
		Subject:      subject,
		Category:     strings.TrimSpace(category),
		Participants: []string{participants[0], participants[1]},
		CreatedAt:    time.Now().UTC(),
	}, nil
}
