package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	cacheport "github.com/carolinadevia11/Bridge/internal/infrastructure/cache/port"
	"github.com/carolinadevia11/Bridge/internal/pkg/auth/presentation/middleware"
	"github.com/carolinadevia11/Bridge/internal/pkg/auth/token"
	"github.com/carolinadevia11/Bridge/internal/pkg/family/persistence/repository/adapter"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/family/persistence/repository/port"
	"github.com/carolinadevia11/Bridge/internal/pkg/family/presentation/controller"
)

// RegisterRoutes mounts family and children endpoints under the given router
// group. The family-by-parent lookup is cached when a cache is supplied.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, cache cacheport.Cache, tokens *token.Manager) {
	var repo repository.FamilyRepository = adapter.NewPgFamilyRepository(pool)
	if cache != nil {
		repo = adapter.NewCachedFamilyRepository(repo, cache)
	}
	RegisterRoutesWith(g, repo, tokens)
}

// RegisterRoutesWith binds the endpoints to an explicit repository; split out
// so handler tests can plug in fakes.
func RegisterRoutesWith(g *gin.RouterGroup, repo repository.FamilyRepository, tokens *token.Manager) {
	createCtl := controller.NewCreateFamilyController(repo)
	getCtl := controller.NewGetFamilyController(repo)
	linkCtl := controller.NewLinkFamilyController(repo)
	addChildCtl := controller.NewAddChildController(repo)
	updateChildCtl := controller.NewUpdateChildController(repo)
	removeChildCtl := controller.NewRemoveChildController(repo)

	authed := g.Group("", middleware.RequireUser(tokens))
	authed.POST("/family", createCtl.Handle())
	authed.GET("/family", getCtl.Handle())
	authed.PUT("/family/link", linkCtl.Handle())
	authed.POST("/children", addChildCtl.Handle())
	authed.PUT("/children/:childId", updateChildCtl.Handle())
	authed.DELETE("/children/:childId", removeChildCtl.Handle())
}
