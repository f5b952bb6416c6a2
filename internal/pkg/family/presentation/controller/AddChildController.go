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

// AddChildController handles adding a child to the requester's family.
type AddChildController struct {
	UC *usecase.AddChildUseCase
}

func NewAddChildController(repo repository.FamilyRepository) *AddChildController {
	return &AddChildController{UC: usecase.NewAddChildUseCase(repo)}
}

type addChildRequest struct {
	Name        string  `json:"name" binding:"required"`
	DateOfBirth string  `json:"dateOfBirth" binding:"required"` // YYYY-MM-DD
	Grade       *string `json:"grade"`
	School      *string `json:"school"`
	Allergies   *string `json:"allergies"`
	Medications *string `json:"medications"`
	Notes       *string `json:"notes"`
}

func (h *AddChildController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := middleware.IdentityFrom(c)

		var req addChildRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "dateOfBirth must be YYYY-MM-DD"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		child, err := h.UC.Execute(ctx, usecase.AddChildInput{
			RequesterEmail: id.Email,
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
