package repository

import (
	"context"
	"errors"
	"time"

	messaging "github.com/carolinadevia11/Bridge/internal/pkg/messaging/application/domain"
)

// ErrNotFound signals that no conversation row matched the lookup. Adapters
// must map their driver's no-rows error to this sentinel.
var ErrNotFound = errors.New("conversation repository: not found")

// ConversationRepository defines persistence operations for the messaging
// core: conversations, their message log, and the recipient notifications.
//
// MarkMessagesRead is a single conditional update-many (conversation match,
// sender <> reader, status <> read) so concurrent calls from the same reader
// are idempotent and race-free. Messages already read are simply excluded
// from the match.
type ConversationRepository interface {
	CreateConversation(ctx context.Context, c messaging.Conversation) (string, error)
	GetConversation(ctx context.Context, id string) (*messaging.Conversation, error)
	ListConversationsByFamily(ctx context.Context, familyID string, includeArchived bool) ([]messaging.Conversation, error)
	SetStarred(ctx context.Context, conversationID string, starred bool) error
	SetArchived(ctx context.Context, conversationID string) error
	SetLastMessageAt(ctx context.Context, conversationID string, at time.Time) error

	SaveMessage(ctx context.Context, m messaging.Message) (string, error)
	ListMessages(ctx context.Context, conversationID string) ([]messaging.Message, error)
	MarkMessagesRead(ctx context.Context, conversationID, readerEmail string) (int64, error)

	SaveNotification(ctx context.Context, n messaging.Notification) (string, error)
	ListUnreadNotifications(ctx context.Context, recipientEmail string) ([]messaging.Notification, error)
}
