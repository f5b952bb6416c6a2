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

// CreateEventController handles the event creation endpoint (one controller per endpoint)
type CreateEventController struct {
	UC *usecase.CreateEventUseCase
}

func NewCreateEventController(repo repository.CalendarRepository, families familyrepo.FamilyRepository) *CreateEventController {
	return &CreateEventController{UC: usecase.NewCreateEventUseCase(repo, families)}
}

type createEventRequest struct {
	Date        time.Time `json:"date" binding:"required"`
	Type        string    `json:"type" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Parent      *string   `json:"parent"`
	IsSwappable bool      `json:"isSwappable"`
}

func (h *CreateEventController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := middleware.IdentityFrom(c)

		var req createEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		e, err := h.UC.Execute(ctx, usecase.CreateEventInput{
			RequesterEmail: id.Email,
			Date:           req.Date,
			Type:           req.Type,
			Title:          req.Title,
			Parent:         req.Parent,
			IsSwappable:    req.IsSwappable,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, EventPayload(e))
	}
}
