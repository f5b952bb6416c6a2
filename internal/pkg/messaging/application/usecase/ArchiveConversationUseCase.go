package usecase

import (
	"context"
	"fmt"

	messaging "github.com/carolinadevia11/Bridge/internal/pkg/messaging/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/messaging/persistence/repository/port"
)

// ArchiveConversationUseCase hides a thread from the default inbox. The
// transition is one-way (no unarchive is exposed) and idempotent: archiving
// an archived thread succeeds without complaint.
type ArchiveConversationUseCase struct {
	Repo repository.ConversationRepository
}

func NewArchiveConversationUseCase(repo repository.ConversationRepository) *ArchiveConversationUseCase {
	return &ArchiveConversationUseCase{Repo: repo}
}

func (uc *ArchiveConversationUseCase) Execute(ctx context.Context, requesterEmail, conversationID string) error {
	if conversationID == "" || requesterEmail == "" {
		return fmt.Errorf("conversation id and requester email are required")
	}

	conv, err := uc.Repo.GetConversation(ctx, conversationID)
	if err != nil {
		return wrapRepoErr(err)
	}
	if !conv.HasParticipant(requesterEmail) {
		return messaging.ErrNotParticipant
	}

	if err := uc.Repo.SetArchived(ctx, conversationID); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
