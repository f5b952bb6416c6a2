package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/carolinadevia11/Bridge/internal/pkg/admin/application/usecase"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/admin/persistence/repository/port"
)

// ListUsersController handles the back-office account list
// (one controller per endpoint)
type ListUsersController struct {
	UC *usecase.ListUsersUseCase
}

func NewListUsersController(repo repository.ReportingRepository) *ListUsersController {
	return &ListUsersController{UC: usecase.NewListUsersUseCase(repo)}
}

func (h *ListUsersController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		users, err := h.UC.Execute(ctx)
		if err != nil {
			respondError(c, err)
			return
		}

		out := make([]gin.H, 0, len(users))
		for i := range users {
			out = append(out, UserOverviewPayload(&users[i]))
		}
		c.JSON(http.StatusOK, out)
	}
}
