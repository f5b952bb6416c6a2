package usecase

import (
	"context"
	"fmt"

	messaging "github.com/carolinadevia11/Bridge/internal/pkg/messaging/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/messaging/persistence/repository/port"
)

// ListNotificationsUseCase returns the requester's unread new-message alerts,
// newest first.
type ListNotificationsUseCase struct {
	Repo repository.ConversationRepository
}

func NewListNotificationsUseCase(repo repository.ConversationRepository) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{Repo: repo}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, requesterEmail string) ([]messaging.Notification, error) {
	if requesterEmail == "" {
		return nil, fmt.Errorf("requester email is required")
	}
	ns, err := uc.Repo.ListUnreadNotifications(ctx, requesterEmail)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return ns, nil
}
