package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/carolinadevia11/Bridge/internal/pkg/auth/presentation/middleware"
	"github.com/carolinadevia11/Bridge/internal/pkg/family/application/usecase"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/family/persistence/repository/port"
)

// RemoveChildController handles removing a child from the requester's family.
type RemoveChildController struct {
	UC *usecase.RemoveChildUseCase
}

func NewRemoveChildController(repo repository.FamilyRepository) *RemoveChildController {
	return &RemoveChildController{UC: usecase.NewRemoveChildUseCase(repo)}
}

func (h *RemoveChildController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := middleware.IdentityFrom(c)

		childID := c.Param("childId")
		if childID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "childId is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if err := h.UC.Execute(ctx, id.Email, childID); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Child removed successfully"})
	}
}
