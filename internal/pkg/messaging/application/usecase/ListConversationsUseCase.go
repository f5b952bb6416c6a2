package usecase

import (
	"context"
	"errors"
	"fmt"

	familyrepo "github.com/carolinadevia11/Bridge/internal/pkg/family/persistence/repository/port"
	messaging "github.com/carolinadevia11/Bridge/internal/pkg/messaging/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/messaging/persistence/repository/port"
)

// ListConversationsUseCase builds the requester's inbox: every non-archived
// thread of their family with viewer-specific counts, most recently active
// first.
//
// This path is strictly read-only. Counts are recomputed from the live
// message set on every call; fetching the inbox never flips read receipts
// (only opening a single thread does).
type ListConversationsUseCase struct {
	Repo     repository.ConversationRepository
	Families familyrepo.FamilyRepository
}

func NewListConversationsUseCase(repo repository.ConversationRepository, families familyrepo.FamilyRepository) *ListConversationsUseCase {
	return &ListConversationsUseCase{Repo: repo, Families: families}
}

// Execute returns an empty inbox, not an error, for users without a family.
func (uc *ListConversationsUseCase) Execute(ctx context.Context, requesterEmail string) ([]messaging.ConversationSummary, error) {
	if requesterEmail == "" {
		return nil, fmt.Errorf("requester email is required")
	}

	f, err := uc.Families.FindByParentEmail(ctx, requesterEmail)
	if errors.Is(err, familyrepo.ErrNotFound) {
		return []messaging.ConversationSummary{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	convs, err := uc.Repo.ListConversationsByFamily(ctx, f.ID, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	summaries := make([]messaging.ConversationSummary, 0, len(convs))
	for _, conv := range convs {
		msgs, err := uc.Repo.ListMessages(ctx, conv.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		summaries = append(summaries, messaging.Summarize(conv, msgs, requesterEmail))
	}

	messaging.SortByActivity(summaries)
	return summaries, nil
}
