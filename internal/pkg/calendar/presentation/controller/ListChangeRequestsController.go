package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/carolinadevia11/Bridge/internal/pkg/auth/presentation/middleware"
	"github.com/carolinadevia11/Bridge/internal/pkg/calendar/application/usecase"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/calendar/persistence/repository/port"
	familyrepo "github.com/carolinadevia11/Bridge/internal/pkg/family/persistence/repository/port"
)

// ListChangeRequestsController handles the change request listing endpoint
// (one controller per endpoint)
type ListChangeRequestsController struct {
	UC *usecase.ListChangeRequestsUseCase
}

func NewListChangeRequestsController(repo repository.CalendarRepository, families familyrepo.FamilyRepository) *ListChangeRequestsController {
	return &ListChangeRequestsController{UC: usecase.NewListChangeRequestsUseCase(repo, families)}
}

func (h *ListChangeRequestsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := middleware.IdentityFrom(c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		reqs, err := h.UC.Execute(ctx, id.Email)
		if err != nil {
			respondError(c, err)
			return
		}

		out := make([]gin.H, 0, len(reqs))
		for i := range reqs {
			out = append(out, ChangeRequestPayload(&reqs[i]))
		}
		c.JSON(http.StatusOK, out)
	}
}
