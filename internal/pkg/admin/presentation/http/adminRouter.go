package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carolinadevia11/Bridge/internal/pkg/admin/persistence/repository/adapter"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/admin/persistence/repository/port"
	"github.com/carolinadevia11/Bridge/internal/pkg/admin/presentation/controller"
	"github.com/carolinadevia11/Bridge/internal/pkg/auth/presentation/middleware"
	"github.com/carolinadevia11/Bridge/internal/pkg/auth/token"
)

// RegisterRoutes mounts the back-office reporting endpoints. Everything here
// requires the admin role.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, tokens *token.Manager) {
	RegisterRoutesWith(g, adapter.NewPgReportingRepository(pool), tokens)
}

// RegisterRoutesWith binds the endpoints to an explicit repository; split out
// so handler tests can plug in fakes.
func RegisterRoutesWith(g *gin.RouterGroup, repo repository.ReportingRepository, tokens *token.Manager) {
	familiesCtl := controller.NewListFamiliesController(repo)
	detailCtl := controller.NewGetFamilyDetailController(repo)
	statsCtl := controller.NewGetStatsController(repo)
	usersCtl := controller.NewListUsersController(repo)

	authed := g.Group("/admin", middleware.RequireUser(tokens), middleware.RequireAdmin())
	authed.GET("/families", familiesCtl.Handle())
	authed.GET("/families/:familyId", detailCtl.Handle())
	authed.GET("/stats", statsCtl.Handle())
	authed.GET("/users", usersCtl.Handle())
}
