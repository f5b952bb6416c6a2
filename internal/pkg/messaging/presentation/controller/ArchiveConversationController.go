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

// ArchiveConversationController handles the archive endpoint (one controller per endpoint)
type ArchiveConversationController struct {
	UC *usecase.ArchiveConversationUseCase
}

func NewArchiveConversationController(repo repository.ConversationRepository) *ArchiveConversationController {
	return &ArchiveConversationController{UC: usecase.NewArchiveConversationUseCase(repo)}
}

func (h *ArchiveConversationController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := middleware.IdentityFrom(c)

		conversationID := c.Param("conversationId")
		if conversationID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "conversationId is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		err := h.UC.Execute(ctx, id.Email, conversationID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Conversation archived"})
	}
}
