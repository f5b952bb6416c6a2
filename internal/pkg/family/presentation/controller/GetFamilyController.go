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

// GetFamilyController returns the requester's family profile.
type GetFamilyController struct {
	UC *usecase.GetFamilyUseCase
}

func NewGetFamilyController(repo repository.FamilyRepository) *GetFamilyController {
	return &GetFamilyController{UC: usecase.NewGetFamilyUseCase(repo)}
}

func (h *GetFamilyController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := middleware.IdentityFrom(c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		f, err := h.UC.Execute(ctx, id.Email)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, FamilyPayload(f))
	}
}
