package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/carolinadevia11/Bridge/internal/pkg/auth/presentation/middleware"
	familyrepo "github.com/carolinadevia11/Bridge/internal/pkg/family/persistence/repository/port"
	"github.com/carolinadevia11/Bridge/internal/pkg/messaging/application/usecase"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/messaging/persistence/repository/port"
)

// CreateConversationController handles the conversation creation endpoint
// (one controller per endpoint)
type CreateConversationController struct {
	UC *usecase.CreateConversationUseCase
}

func NewCreateConversationController(repo repository.ConversationRepository, families familyrepo.FamilyRepository) *CreateConversationController {
	return &CreateConversationController{UC: usecase.NewCreateConversationUseCase(repo, families)}
}

type createConversationRequest struct {
	Subject  string `json:"subject" binding:"required"`
	Category string `json:"category"`
}

func (h *CreateConversationController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := middleware.IdentityFrom(c)

		var req createConversationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		conv, err := h.UC.Execute(ctx, usecase.CreateConversationInput{
			RequesterEmail: id.Email,
			Subject:        req.Subject,
			Category:       req.Category,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, ConversationPayload(conv))
	}
}
