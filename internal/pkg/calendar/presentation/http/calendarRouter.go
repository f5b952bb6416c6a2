package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	cacheport "github.com/carolinadevia11/Bridge/internal/infrastructure/cache/port"
	"github.com/carolinadevia11/Bridge/internal/pkg/auth/presentation/middleware"
	"github.com/carolinadevia11/Bridge/internal/pkg/auth/token"
	"github.com/carolinadevia11/Bridge/internal/pkg/calendar/persistence/repository/adapter"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/calendar/persistence/repository/port"
	"github.com/carolinadevia11/Bridge/internal/pkg/calendar/presentation/controller"
	familyAdapter "github.com/carolinadevia11/Bridge/internal/pkg/family/persistence/repository/adapter"
	familyrepo "github.com/carolinadevia11/Bridge/internal/pkg/family/persistence/repository/port"
)

// RegisterRoutes mounts event and change-request endpoints under the given
// router group.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, cache cacheport.Cache, tokens *token.Manager) {
	repo := adapter.NewPgCalendarRepository(pool)
	var families familyrepo.FamilyRepository = familyAdapter.NewPgFamilyRepository(pool)
	if cache != nil {
		families = familyAdapter.NewCachedFamilyRepository(families, cache)
	}
	RegisterRoutesWith(g, repo, families, tokens)
}

// RegisterRoutesWith binds the endpoints to explicit ports; split out so
// handler tests can plug in fakes.
func RegisterRoutesWith(g *gin.RouterGroup, repo repository.CalendarRepository, families familyrepo.FamilyRepository, tokens *token.Manager) {
	createEventCtl := controller.NewCreateEventController(repo, families)
	listEventsCtl := controller.NewListEventsController(repo, families)
	deleteEventCtl := controller.NewDeleteEventController(repo, families)
	createRequestCtl := controller.NewCreateChangeRequestController(repo, families)
	listRequestsCtl := controller.NewListChangeRequestsController(repo, families)
	resolveRequestCtl := controller.NewResolveChangeRequestController(repo, families)

	authed := g.Group("", middleware.RequireUser(tokens))
	authed.POST("/events", createEventCtl.Handle())
	authed.GET("/events", listEventsCtl.Handle())
	authed.DELETE("/events/:eventId", deleteEventCtl.Handle())
	authed.POST("/change-requests", createRequestCtl.Handle())
	authed.GET("/change-requests", listRequestsCtl.Handle())
	authed.PATCH("/change-requests/:requestId", resolveRequestCtl.Handle())
}
