package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/carolinadevia11/Bridge/internal/pkg/admin/application/usecase"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/admin/persistence/repository/port"
)

// ListFamiliesController handles the back-office family list
// (one controller per endpoint)
type ListFamiliesController struct {
	UC *usecase.ListFamiliesUseCase
}

func NewListFamiliesController(repo repository.ReportingRepository) *ListFamiliesController {
	return &ListFamiliesController{UC: usecase.NewListFamiliesUseCase(repo)}
}

func (h *ListFamiliesController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		overviews, err := h.UC.Execute(ctx)
		if err != nil {
			respondError(c, err)
			return
		}

		out := make([]gin.H, 0, len(overviews))
		for i := range overviews {
			out = append(out, FamilyOverviewPayload(&overviews[i]))
		}
		c.JSON(http.StatusOK, out)
	}
}
