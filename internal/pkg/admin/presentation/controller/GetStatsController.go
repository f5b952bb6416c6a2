package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/carolinadevia11/Bridge/internal/pkg/admin/application/usecase"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/admin/persistence/repository/port"
)

// GetStatsController handles the back-office dashboard roll-up
// (one controller per endpoint)
type GetStatsController struct {
	UC *usecase.GetStatsUseCase
}

func NewGetStatsController(repo repository.ReportingRepository) *GetStatsController {
	return &GetStatsController{UC: usecase.NewGetStatsUseCase(repo)}
}

func (h *GetStatsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		s, err := h.UC.Execute(ctx)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"totalFamilies":    s.TotalFamilies,
			"linkedFamilies":   s.LinkedFamilies,
			"unlinkedFamilies": s.UnlinkedFamilies,
			"totalUsers":       s.TotalUsers,
			"totalChildren":    s.TotalChildren,
		})
	}
}
