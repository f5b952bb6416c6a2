package usecase

import (
	"context"
	"fmt"

	messaging "github.com/carolinadevia11/Bridge/internal/pkg/messaging/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/messaging/persistence/repository/port"
)

// ListMessagesInput identifies the thread and the reader.
type ListMessagesInput struct {
	RequesterEmail string
	ConversationID string
}

// ListMessagesUseCase returns the full thread oldest first and, as a side
// effect, marks the other participant's unread messages as read. The
// transition is one conditional bulk update, so repeated or concurrent reads
// by the same participant are idempotent. The returned payload reflects the
// post-transition state without a second query.
type ListMessagesUseCase struct {
	Repo repository.ConversationRepository
}

func NewListMessagesUseCase(repo repository.ConversationRepository) *ListMessagesUseCase {
	return &ListMessagesUseCase{Repo: repo}
}

func (uc *ListMessagesUseCase) Execute(ctx context.Context, in ListMessagesInput) ([]messaging.Message, error) {
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

	msgs, err := uc.Repo.ListMessages(ctx, in.ConversationID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	// The reader's own outgoing messages are never auto-marked.
	if _, err := uc.Repo.MarkMessagesRead(ctx, in.ConversationID, in.RequesterEmail); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return messaging.ReadView(msgs, in.RequesterEmail), nil
}
