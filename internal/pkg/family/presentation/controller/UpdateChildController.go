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

// UpdateChildController handles partial updates to a child record.
type UpdateChildController struct {
	UC *usecase.UpdateChildUseCase
}

func NewUpdateChildController(repo repository.FamilyRepository) *UpdateChildController {
	return &UpdateChildController{UC: usecase.NewUpdateChildUseCase(repo)}
}

type updateChildRequest struct {
	Name        *string `json:"name"`
	DateOfBirth *string `json:"dateOfBirth"` // YYYY-MM-DD
	Grade       *string `json:"grade"`
	School      *string `json:"school"`
	Allergies   *string `json:"allergies"`
	Medications *string `json:"medications"`
	Notes       *string `json:"notes"`
}

func (h *UpdateChildController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := middleware.IdentityFrom(c)

		childID := c.Param("childId")
		if childID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "childId is required"})
			return
		}

		var req updateChildRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var dob *time.Time
		if req.DateOfBirth != nil {
			parsed, err := time.Parse("2006-01-02", *req.DateOfBirth)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "dateOfBirth must be YYYY-MM-DD"})
				return
			}
			dob = &parsed
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		child, err := h.UC.Execute(ctx, usecase.UpdateChildInput{
			RequesterEmail: id.Email,
			ChildID:        childID,
			Name:           req.Name,
			DateOfBirth:    dob,
			Grade:          req.Grade,
			School:         req.School,
			Allergies:      req.Allergies,
			Medications:    req.Medications,
			Notes:          req.Notes,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, ChildPayload(child))
	}
}
