package task

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	qport "github.com/carolinadevia11/Bridge/internal/infrastructure/queue/port"
	messaging "github.com/carolinadevia11/Bridge/internal/pkg/messaging/application/domain"
	repoAdapter "github.com/carolinadevia11/Bridge/internal/pkg/messaging/persistence/repository/adapter"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/messaging/persistence/repository/port"
)

// NotifyMessageTaskType is the queue task name for recording a new-message
// notification for the recipient.
const NotifyMessageTaskType = "messaging:notify"

// NotifyMessagePayload is the JSON payload transported via the queue.
// Kept decoupled from domain types to avoid tight coupling with JSON tags.
type NotifyMessagePayload struct {
	RecipientEmail string    `json:"recipientEmail"`
	ConversationID string    `json:"conversationId"`
	MessageID      string    `json:"messageId"`
	Subject        string    `json:"subject"`
	SentAt         time.Time `json:"sentAt"`
}

// RegisterNotifyMessageTask binds the task handler to the provided server.
// The handler persists one notification row per delivered task.
func RegisterNotifyMessageTask(srv qport.Server, pool *pgxpool.Pool) {
	repo := repoAdapter.NewPgConversationRepository(pool)
	RegisterNotifyMessageTaskWith(srv, repo)
}

// RegisterNotifyMessageTaskWith is the fake-friendly variant used by tests.
func RegisterNotifyMessageTaskWith(srv qport.Server, repo repository.ConversationRepository) {
	srv.Register(NotifyMessageTaskType, func(ctx context.Context, t qport.Task) error {
		var p NotifyMessagePayload
		if err := json.Unmarshal(t.Payload, &p); err != nil {
			// malformed payload: retrying won't help
			return err
		}

		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		_, err := repo.SaveNotification(ctx, messaging.Notification{
			RecipientEmail: p.RecipientEmail,
			ConversationID: p.ConversationID,
			MessageID:      p.MessageID,
			Subject:        p.Subject,
			CreatedAt:      p.SentAt,
		})
		return err
	})
}
