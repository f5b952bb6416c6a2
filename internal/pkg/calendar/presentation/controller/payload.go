package controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	calendar "github.com/carolinadevia11/Bridge/internal/pkg/calendar/application/domain"
	"github.com/carolinadevia11/Bridge/internal/pkg/calendar/application/usecase"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/calendar/persistence/repository/port"
	familyrepo "github.com/carolinadevia11/Bridge/internal/pkg/family/persistence/repository/port"
)

// EventPayload serializes one calendar entry.
func EventPayload(e *calendar.Event) gin.H {
	return gin.H{
		"id":          e.ID,
		"familyId":    e.FamilyID,
		"date":        e.Date.Format(time.RFC3339),
		"type":        e.Type,
		"title":       e.Title,
		"parent":      e.Parent,
		"isSwappable": e.IsSwappable,
	}
}

// ChangeRequestPayload serializes one custody change request.
func ChangeRequestPayload(r *calendar.ChangeRequest) gin.H {
	var requestedDate any
	if r.RequestedDate != nil {
		requestedDate = r.RequestedDate.Format(time.RFC3339)
	}
	return gin.H{
		"id":               r.ID,
		"eventId":          r.EventID,
		"requestedByEmail": r.RequestedByEmail,
		"status":           r.Status,
		"requestedDate":    requestedDate,
		"reason":           r.Reason,
		"createdAt":        r.CreatedAt.Format(time.RFC3339),
	}
}

// respondError maps calendar use case failures onto the HTTP error taxonomy.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, familyrepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Family not found"})
	case errors.Is(err, calendar.ErrOwnRequest):
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot resolve your own change request"})
	case errors.Is(err, calendar.ErrAlreadyResolved):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Change request already resolved"})
	case errors.Is(err, calendar.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be approved or rejected"})
	case errors.Is(err, usecase.ErrPersistence):
		log.Printf("calendar: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected error"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
