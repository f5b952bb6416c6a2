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

// ListMessagesController handles fetching a thread (one controller per endpoint).
// Fetching is a read action: it marks the other participant's messages read.
type ListMessagesController struct {
	UC *usecase.ListMessagesUseCase
}

func NewListMessagesController(repo repository.ConversationRepository) *ListMessagesController {
	return &ListMessagesController{UC: usecase.NewListMessagesUseCase(repo)}
}

func (h *ListMessagesController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := middleware.IdentityFrom(c)

		conversationID := c.Param("conversationId")
		if conversationID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "conversationId is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		msgs, err := h.UC.Execute(ctx, usecase.ListMessagesInput{
			RequesterEmail: id.Email,
			ConversationID: conversationID,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		out := make([]gin.H, 0, len(msgs))
		for i := range msgs {
			out = append(out, MessagePayload(&msgs[i]))
		}
		c.JSON(http.StatusOK, out)
	}
}
