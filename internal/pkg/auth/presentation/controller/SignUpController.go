package controller

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	auth "github.com/carolinadevia11/Bridge/internal/pkg/auth/application/domain"
	"github.com/carolinadevia11/Bridge/internal/pkg/auth/application/usecase"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/auth/persistence/repository/port"
)

// SignUpController handles the account registration endpoint (one controller per endpoint)
type SignUpController struct {
	UC *usecase.SignUpUseCase
}

func NewSignUpController(repo repository.UserRepository) *SignUpController {
	return &SignUpController{UC: usecase.NewSignUpUseCase(repo)}
}

type signUpRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

func (h *SignUpController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signUpRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		user, err := h.UC.Execute(ctx, usecase.SignUpInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Password:  req.Password,
		})
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrEmailTaken):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			case errors.Is(err, usecase.ErrPersistence):
				log.Printf("signup: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected error"})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, UserPayload(user))
	}
}

// UserPayload serializes an account without its password hash.
func UserPayload(u *auth.User) gin.H {
	return gin.H{
		"id":        u.ID,
		"firstName": u.FirstName,
		"lastName":  u.LastName,
		"email":     u.Email,
		"role":      u.Role,
		"createdAt": u.CreatedAt,
	}
}
