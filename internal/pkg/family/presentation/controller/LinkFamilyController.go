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

// LinkFamilyController attaches the co-parent to the requester's family.
type LinkFamilyController struct {
	UC *usecase.LinkFamilyUseCase
}

func NewLinkFamilyController(repo repository.FamilyRepository) *LinkFamilyController {
	return &LinkFamilyController{UC: usecase.NewLinkFamilyUseCase(repo)}
}

type linkFamilyRequest struct {
	Parent2Email string `json:"parent2_email" binding:"required"`
}

func (h *LinkFamilyController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := middleware.IdentityFrom(c)

		var req linkFamilyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		f, err := h.UC.Execute(ctx, usecase.LinkFamilyInput{
			RequesterEmail: id.Email,
			Parent2Email:   req.Parent2Email,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, FamilyPayload(f))
	}
}
