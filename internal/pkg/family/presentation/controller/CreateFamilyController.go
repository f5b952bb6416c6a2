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

// CreateFamilyController handles the family creation endpoint (one controller per endpoint)
type CreateFamilyController struct {
	UC *usecase.CreateFamilyUseCase
}

func NewCreateFamilyController(repo repository.FamilyRepository) *CreateFamilyController {
	return &CreateFamilyController{UC: usecase.NewCreateFamilyUseCase(repo)}
}

type createFamilyRequest struct {
	FamilyName         string  `json:"familyName" binding:"required"`
	Parent2Email       *string `json:"parent2_email"`
	CustodyArrangement *string `json:"custodyArrangement"`
}

func (h *CreateFamilyController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := middleware.IdentityFrom(c)

		var req createFamilyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		f, err := h.UC.Execute(ctx, usecase.CreateFamilyInput{
			RequesterEmail:     id.Email,
			FamilyName:         req.FamilyName,
			Parent2Email:       req.Parent2Email,
			CustodyArrangement: req.CustodyArrangement,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, FamilyPayload(f))
	}
}
