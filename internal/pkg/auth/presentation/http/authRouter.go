package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carolinadevia11/Bridge/internal/pkg/auth/persistence/repository/adapter"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/auth/persistence/repository/port"
	"github.com/carolinadevia11/Bridge/internal/pkg/auth/presentation/controller"
	"github.com/carolinadevia11/Bridge/internal/pkg/auth/presentation/middleware"
	"github.com/carolinadevia11/Bridge/internal/pkg/auth/token"
)

// RegisterRoutes mounts the account endpoints under the given router group.
// It constructs per-endpoint controllers and binds them directly to routes.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, tokens *token.Manager) {
	RegisterRoutesWith(g, adapter.NewPgUserRepository(pool), tokens)
}

// RegisterRoutesWith binds the endpoints to an explicit repository; split out
// so handler tests can plug in fakes.
func RegisterRoutesWith(g *gin.RouterGroup, repo repository.UserRepository, tokens *token.Manager) {
	signUpCtl := controller.NewSignUpController(repo)
	logInCtl := controller.NewLogInController(repo, tokens)
	meCtl := controller.NewMeController(repo)

	g.POST("/auth/signup", signUpCtl.Handle())
	g.POST("/auth/login", logInCtl.Handle())
	g.GET("/auth/me", middleware.RequireUser(tokens), meCtl.Handle())
}
