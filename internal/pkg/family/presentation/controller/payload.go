package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	family "github.com/carolinadevia11/Bridge/internal/pkg/family/application/domain"
	"github.com/carolinadevia11/Bridge/internal/pkg/family/application/usecase"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/family/persistence/repository/port"
)

// FamilyPayload serializes a family profile the way the frontend expects it.
func FamilyPayload(f *family.Family) gin.H {
	children := make([]gin.H, 0, len(f.Children))
	for i := range f.Children {
		children = append(children, ChildPayload(&f.Children[i]))
	}
	return gin.H{
		"id":                 f.ID,
		"familyName":         f.FamilyName,
		"parent1_email":      f.Parent1Email,
		"parent2_email":      f.Parent2Email,
		"children":           children,
		"custodyArrangement": f.CustodyArrangement,
		"createdAt":          f.CreatedAt,
		"linkedAt":           f.LinkedAt,
		"isLinked":           f.IsLinked(),
	}
}

func ChildPayload(c *family.Child) gin.H {
	return gin.H{
		"id":          c.ID,
		"name":        c.Name,
		"dateOfBirth": c.DateOfBirth.Format("2006-01-02"),
		"grade":       c.Grade,
		"school":      c.School,
		"allergies":   c.Allergies,
		"medications": c.Medications,
		"notes":       c.Notes,
	}
}

// respondError maps use case failures onto the HTTP error taxonomy.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Family profile not found"})
	case errors.Is(err, family.ErrChildNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Child not found"})
	case errors.Is(err, family.ErrAlreadyInFamily):
		c.JSON(http.StatusBadRequest, gin.H{"error": "User already has a family profile"})
	case errors.Is(err, family.ErrAlreadyLinked):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Family is already linked with both parents"})
	case errors.Is(err, usecase.ErrPersistence):
		log.Printf("family: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected error"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
