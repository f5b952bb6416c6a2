package controller

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/carolinadevia11/Bridge/internal/pkg/auth/application/usecase"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/auth/persistence/repository/port"
	"github.com/carolinadevia11/Bridge/internal/pkg/auth/presentation/middleware"
)

// MeController returns the signed-in user's own profile.
type MeController struct {
	UC *usecase.GetProfileUseCase
}

func NewMeController(repo repository.UserRepository) *MeController {
	return &MeController{UC: usecase.NewGetProfileUseCase(repo)}
}

func (h *MeController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := middleware.IdentityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		user, err := h.UC.Execute(ctx, id.Email)
		if err != nil {
			// A valid token for a deleted account still fails authentication.
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
				return
			}
			log.Printf("me: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected error"})
			return
		}

		c.JSON(http.StatusOK, UserPayload(user))
	}
}
