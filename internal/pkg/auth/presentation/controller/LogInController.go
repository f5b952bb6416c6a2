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
	"github.com/carolinadevia11/Bridge/internal/pkg/auth/token"
)

// LogInController handles the credential exchange endpoint (one controller per endpoint)
type LogInController struct {
	UC *usecase.LogInUseCase
}

func NewLogInController(repo repository.UserRepository, tokens *token.Manager) *LogInController {
	return &LogInController{UC: usecase.NewLogInUseCase(repo, tokens)}
}

type logInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *LogInController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req logInRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		out, err := h.UC.Execute(ctx, usecase.LogInInput{Email: req.Email, Password: req.Password})
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				c.Header("WWW-Authenticate", "Bearer")
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect username or password"})
				return
			}
			log.Printf("login: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"access_token": out.AccessToken,
			"token_type":   out.TokenType,
		})
	}
}
