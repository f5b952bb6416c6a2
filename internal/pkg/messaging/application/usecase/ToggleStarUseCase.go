package usecase

import (
	"context"
	"fmt"

	messaging "github.com/carolinadevia11/Bridge/internal/pkg/messaging/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/messaging/persistence/repository/port"
)

// ToggleStarUseCase flips the starred flag and returns the new value. The
// flag is orthogonal to archiving.
type ToggleStarUseCase struct {
	Repo repository.ConversationRepository
}

func NewToggleStarUseCase(repo repository.ConversationRepository) *ToggleStarUseCase {
	return &ToggleStarUseCase{Repo: repo}
}

func (uc *ToggleStarUseCase) Execute(ctx context.Context, requesterEmail, conversationID string) (bool, error) {
	if conversationID == "" || requesterEmail == "" {
		return false, fmt.Errorf("conversation id and requester email are required")
	}

	conv, err := uc.Repo.GetConversation(ctx, conversationID)
	if err != nil {
		return false, wrapRepoErr(err)
	}
	if !conv.HasParticipant(requesterEmail) {
		return false, messaging.ErrNotParticipant
	}

	next := !conv.IsStarred
	if err := uc.Repo.SetStarred(ctx, conversationID, next); err != nil {
		return false, wrapRepoErr(err)
	}
	return next, nil
}
