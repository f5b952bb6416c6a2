package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/carolinadevia11/Bridge/internal/pkg/admin/application/usecase"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/admin/persistence/repository/port"
)

// GetFamilyDetailController handles the back-office family detail view
// (one controller per endpoint)
type GetFamilyDetailController struct {
	UC *usecase.GetFamilyDetailUseCase
}

func NewGetFamilyDetailController(repo repository.ReportingRepository) *GetFamilyDetailController {
	return &GetFamilyDetailController{UC: usecase.NewGetFamilyDetailUseCase(repo)}
}

func (h *GetFamilyDetailController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		familyID := c.Param("familyId")
		if familyID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "familyId is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		f, err := h.UC.Execute(ctx, familyID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, FamilyOverviewPayload(f))
	}
}
