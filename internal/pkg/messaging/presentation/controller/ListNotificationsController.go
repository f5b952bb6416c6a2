package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/carolinadevia11/Bridge/internal/pkg/auth/presentation/middleware"
	"github.com/carolinadevia11/Bridge/internal/pkg/messaging/application/usecase"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/messaging/persistence/repository/port"
)

// ListNotificationsController handles the unread notification feed
// (one controller per endpoint)
type ListNotificationsController struct {
	UC *usecase.ListNotificationsUseCase
}

func NewListNotificationsController(repo repository.ConversationRepository) *ListNotificationsController {
	return &ListNotificationsController{UC: usecase.NewListNotificationsUseCase(repo)}
}

func (h *ListNotificationsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := middleware.IdentityFrom(c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		notes, err := h.UC.Execute(ctx, id.Email)
		if err != nil {
			respondError(c, err)
			return
		}

		out := make([]gin.H, 0, len(notes))
		for i := range notes {
			n := &notes[i]
			out = append(out, gin.H{
				"id":             n.ID,
				"conversationId": n.ConversationID,
				"messageId":      n.MessageID,
				"subject":        n.Subject,
				"createdAt":      n.CreatedAt.Format(time.RFC3339),
			})
		}
		c.JSON(http.StatusOK, out)
	}
}
