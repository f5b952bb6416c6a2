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

// ListConversationsController handles the inbox endpoint (one controller per endpoint)
type ListConversationsController struct {
	UC *usecase.ListConversationsUseCase
}

func NewListConversationsController(repo repository.ConversationRepository, families familyrepo.FamilyRepository) *ListConversationsController {
	return &ListConversationsController{UC: usecase.NewListConversationsUseCase(repo, families)}
}

func (h *ListConversationsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := middleware.IdentityFrom(c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		summaries, err := h.UC.Execute(ctx, id.Email)
		if err != nil {
			respondError(c, err)
			return
		}

		out := make([]gin.H, 0, len(summaries))
		for i := range summaries {
			out = append(out, SummaryPayload(&summaries[i]))
		}
		c.JSON(http.StatusOK, out)
	}
}
