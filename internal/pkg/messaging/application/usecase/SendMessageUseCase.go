package usecase

import (
	"context"
	"fmt"
	"log"

	messaging "github.com/carolinadevia11/Bridge/internal/pkg/messaging/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/messaging/persistence/repository/port"
)

// SendMessageInput carries the data needed to append a message to a thread.
type SendMessageInput struct {
	RequesterEmail string
	ConversationID string
	Content        string
	Tone           string
}

// SendMessageResult is the persisted message plus the recipient so transport
// layers can fan out notifications without reloading the conversation.
type SendMessageResult struct {
	Message   messaging.Message
	Recipient string
}

// SendMessageUseCase persists a message and advances the conversation's
// last-activity watermark. The two writes are sequential with no shared
// transaction; a crash in between leaves the watermark stale until the next
// send, which the inbox view tolerates by recomputing from messages.
type SendMessageUseCase struct {
	Repo repository.ConversationRepository
}

func NewSendMessageUseCase(repo repository.ConversationRepository) *SendMessageUseCase {
	return &SendMessageUseCase{Repo: repo}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, in SendMessageInput) (*SendMessageResult, error) {
	if in.ConversationID == "" || in.RequesterEmail == "" {
		return nil, fmt.Errorf("conversation id and requester email are required")
	}

	conv, err := uc.Repo.GetConversation(ctx, in.ConversationID)
	if err != nil {
		return nil, wrapRepoErr(err)
	}
	if !conv.HasParticipant(in.RequesterEmail) {
		return nil, messaging.ErrNotParticipant
	}

	msg, err := messaging.NewMessage(in.ConversationID, in.RequesterEmail, in.Content, in.Tone)
	if err != nil {
		return nil, err
	}

	id, err := uc.Repo.SaveMessage(ctx, *msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	msg.ID = id

	// Watermark update is best-effort: the message is already durable and
	// the inbox recomputes last activity from the message log.
	if err := uc.Repo.SetLastMessageAt(ctx, in.ConversationID, msg.Timestamp); err != nil {
		log.Printf("send message: update last_message_at: %v", err)
	}

	recipient := ""
	for _, p := range conv.Participants {
		if p != in.RequesterEmail {
			recipient = p
			break
		}
	}
	return &SendMessageResult{Message: *msg, Recipient: recipient}, nil
}
