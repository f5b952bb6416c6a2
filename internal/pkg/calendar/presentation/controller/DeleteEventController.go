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

// DeleteEventController handles the event deletion endpoint (one controller per endpoint)
type DeleteEventController struct {
	UC *usecase.DeleteEventUseCase
}

func NewDeleteEventController(repo repository.CalendarRepository, families familyrepo.FamilyRepository) *DeleteEventController {
	return &DeleteEventController{UC: usecase.NewDeleteEventUseCase(repo, families)}
}

func (h *DeleteEventController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := middleware.IdentityFrom(c)

		eventID := c.Param("eventId")
		if eventID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "eventId is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		err := h.UC.Execute(ctx, usecase.DeleteEventInput{
			RequesterEmail: id.Email,
			EventID:        eventID,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
	}
}
