package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/carolinadevia11/Bridge/internal/pkg/auth/presentation/middleware"
	"github.com/carolinadevia11/Bridge/internal/pkg/calendar/application/usecase"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/calendar/persistence/repository/port"
	familyrepo "github.com/carolinadevia11/Bridge/internal/pkg/family/persistence/repository/port"
)

// ResolveChangeRequestController handles approving/rejecting a change request
// (one controller per endpoint)
type ResolveChangeRequestController struct {
	UC *usecase.ResolveChangeRequestUseCase
}

func NewResolveChangeRequestController(repo repository.CalendarRepository, families familyrepo.FamilyRepository) *ResolveChangeRequestController {
	return &ResolveChangeRequestController{UC: usecase.NewResolveChangeRequestUseCase(repo, families)}
}

type resolveChangeRequestRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *ResolveChangeRequestController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := middleware.IdentityFrom(c)

		requestID := c.Param("requestId")
		if requestID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "requestId is required"})
			return
		}

		var req resolveChangeRequestRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		cr, err := h.UC.Execute(ctx, usecase.ResolveChangeRequestInput{
			RequesterEmail: id.Email,
			RequestID:      requestID,
			Status:         req.Status,
		})
		if err != nil {
			// here the not-found lookup is the request itself, not an event
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Change request not found"})
				return
			}
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, ChangeRequestPayload(cr))
	}
}
