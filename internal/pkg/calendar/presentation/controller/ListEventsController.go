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

// ListEventsController handles the calendar listing endpoint (one controller per endpoint)
type ListEventsController struct {
	UC *usecase.ListEventsUseCase
}

func NewListEventsController(repo repository.CalendarRepository, families familyrepo.FamilyRepository) *ListEventsController {
	return &ListEventsController{UC: usecase.NewListEventsUseCase(repo, families)}
}

func (h *ListEventsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := middleware.IdentityFrom(c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		events, err := h.UC.Execute(ctx, id.Email)
		if err != nil {
			respondError(c, err)
			return
		}

		out := make([]gin.H, 0, len(events))
		for i := range events {
			out = append(out, EventPayload(&events[i]))
		}
		c.JSON(http.StatusOK, out)
	}
}
