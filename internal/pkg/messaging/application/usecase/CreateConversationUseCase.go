package usecase

import (
	"context"
	"errors"
	"fmt"

	familyrepo "github.com/carolinadevia11/Bridge/internal/pkg/family/persistence/repository/port"
	messaging "github.com/carolinadevia11/Bridge/internal/pkg/messaging/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/messaging/persistence/repository/port"
)

// CreateConversationInput carries the data to open a thread between the two
// linked parents of the requester's family.
type CreateConversationInput struct {
	RequesterEmail string
	Subject        string
	Category       string
}

// CreateConversationUseCase resolves the requester's family, requires both
// parent slots to be filled, and freezes those two emails as the participant
// set. Later family changes never touch the created thread.
type CreateConversationUseCase struct {
	Repo     repository.ConversationRepository
	Families familyrepo.FamilyRepository
}

func NewCreateConversationUseCase(repo repository.ConversationRepository, families familyrepo.FamilyRepository) *CreateConversationUseCase {
	return &CreateConversationUseCase{Repo: repo, Families: families}
}

func (uc *CreateConversationUseCase) Execute(ctx context.Context, in CreateConversationInput) (*messaging.Conversation, error) {
	if in.RequesterEmail == "" {
		return nil, fmt.Errorf("requester email is required")
	}

	f, err := uc.Families.FindByParentEmail(ctx, in.RequesterEmail)
	if errors.Is(err, familyrepo.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !f.IsLinked() {
		return nil, messaging.ErrFamilyNotLinked
	}

	conv, err := messaging.NewConversation(f.ID, in.Subject, in.Category, f.ParentEmails())
	if err != nil {
		return nil, err
	}

	id, err := uc.Repo.CreateConversation(ctx, *conv)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	conv.ID = id
	return conv, nil
}
