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

// CreateChangeRequestController handles opening a change request
// (one controller per endpoint)
type CreateChangeRequestController struct {
	UC *usecase.CreateChangeRequestUseCase
}

func NewCreateChangeRequestController(repo repository.CalendarRepository, families familyrepo.FamilyRepository) *CreateChangeRequestController {
	return &CreateChangeRequestController{UC: usecase.NewCreateChangeRequestUseCase(repo, families)}
}

type createChangeRequestRequest struct {
	EventID       string     `json:"eventId" binding:"required"`
	RequestedDate *time.Time `json:"requestedDate"`
	Reason        *string    `json:"reason"`
}

func (h *CreateChangeRequestController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := middleware.IdentityFrom(c)

		var req createChangeRequestRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		cr, err := h.UC.Execute(ctx, usecase.CreateChangeRequestInput{
			RequesterEmail: id.Email,
			EventID:        req.EventID,
			RequestedDate:  req.RequestedDate,
			Reason:         req.Reason,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, ChangeRequestPayload(cr))
	}
}
