package controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	admin "github.com/carolinadevia11/Bridge/internal/pkg/admin/application/domain"
	"github.com/carolinadevia11/Bridge/internal/pkg/admin/application/usecase"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/admin/persistence/repository/port"
	family "github.com/carolinadevia11/Bridge/internal/pkg/family/application/domain"
)

func parentPayload(p *admin.ParentAccount) gin.H {
	if p == nil {
		return nil
	}
	return gin.H{
		"id":        p.ID,
		"email":     p.Email,
		"firstName": p.FirstName,
		"lastName":  p.LastName,
		"role":      p.Role,
		"createdAt": p.CreatedAt.Format(time.RFC3339),
	}
}

func childPayload(c *family.Child) gin.H {
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

// FamilyOverviewPayload serializes one back-office family row.
func FamilyOverviewPayload(f *admin.FamilyOverview) gin.H {
	children := make([]gin.H, 0, len(f.Children))
	for i := range f.Children {
		children = append(children, childPayload(&f.Children[i]))
	}
	var linkedAt any
	if f.LinkedAt != nil {
		linkedAt = f.LinkedAt.Format(time.RFC3339)
	}
	return gin.H{
		"id":                 f.ID,
		"familyName":         f.FamilyName,
		"parent1":            parentPayload(&f.Parent1),
		"parent2":            parentPayload(f.Parent2),
		"children":           children,
		"childrenCount":      len(f.Children),
		"custodyArrangement": f.CustodyArrangement,
		"createdAt":          f.CreatedAt.Format(time.RFC3339),
		"linkedAt":           linkedAt,
		"isLinked":           f.IsLinked(),
	}
}

// UserOverviewPayload serializes one account row with family membership.
func UserOverviewPayload(u *admin.UserOverview) gin.H {
	out := gin.H{
		"id":        u.ID,
		"firstName": u.FirstName,
		"lastName":  u.LastName,
		"email":     u.Email,
		"role":      u.Role,
		"createdAt": u.CreatedAt.Format(time.RFC3339),
		"hasFamily": u.HasFamily(),
	}
	if u.HasFamily() {
		out["familyId"] = u.FamilyID
		out["familyName"] = u.FamilyName
	}
	return out
}

// respondError maps reporting failures onto the HTTP error taxonomy.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Family not found"})
	case errors.Is(err, usecase.ErrPersistence):
		log.Printf("admin: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected error"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
