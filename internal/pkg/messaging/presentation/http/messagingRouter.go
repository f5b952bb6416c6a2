package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	cacheport "github.com/carolinadevia11/Bridge/internal/infrastructure/cache/port"
	qport "github.com/carolinadevia11/Bridge/internal/infrastructure/queue/port"
	"github.com/carolinadevia11/Bridge/internal/infrastructure/realtime"
	"github.com/carolinadevia11/Bridge/internal/pkg/auth/presentation/middleware"
	"github.com/carolinadevia11/Bridge/internal/pkg/auth/token"
	familyAdapter "github.com/carolinadevia11/Bridge/internal/pkg/family/persistence/repository/adapter"
	familyrepo "github.com/carolinadevia11/Bridge/internal/pkg/family/persistence/repository/port"
	"github.com/carolinadevia11/Bridge/internal/pkg/messaging/persistence/repository/adapter"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/messaging/persistence/repository/port"
	"github.com/carolinadevia11/Bridge/internal/pkg/messaging/presentation/controller"
)

// RegisterRoutes mounts the parent-to-parent messaging endpoints under the
// given router group. Queue and hub may be nil; sends still succeed, the
// fan-out is simply skipped.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, cache cacheport.Cache, queue qport.Client, hub *realtime.Hub, tokens *token.Manager) {
	repo := adapter.NewPgConversationRepository(pool)
	var families familyrepo.FamilyRepository = familyAdapter.NewPgFamilyRepository(pool)
	if cache != nil {
		families = familyAdapter.NewCachedFamilyRepository(families, cache)
	}
	RegisterRoutesWith(g, repo, families, queue, hub, tokens)
}

// RegisterRoutesWith binds the endpoints to explicit ports; split out so
// handler tests can plug in fakes.
func RegisterRoutesWith(g *gin.RouterGroup, repo repository.ConversationRepository, families familyrepo.FamilyRepository, queue qport.Client, hub *realtime.Hub, tokens *token.Manager) {
	createCtl := controller.NewCreateConversationController(repo, families)
	listCtl := controller.NewListConversationsController(repo, families)
	messagesCtl := controller.NewListMessagesController(repo)
	sendCtl := controller.NewSendMessageController(repo, queue, hub)
	starCtl := controller.NewToggleStarController(repo)
	archiveCtl := controller.NewArchiveConversationController(repo)
	notificationsCtl := controller.NewListNotificationsController(repo)

	authed := g.Group("/messaging", middleware.RequireUser(tokens))
	authed.POST("/conversations", createCtl.Handle())
	authed.GET("/conversations", listCtl.Handle())
	authed.GET("/conversations/:conversationId/messages", messagesCtl.Handle())
	authed.POST("/messages", sendCtl.Handle())
	authed.PATCH("/conversations/:conversationId/star", starCtl.Handle())
	authed.PATCH("/conversations/:conversationId/archive", archiveCtl.Handle())
	authed.GET("/notifications", notificationsCtl.Handle())

	if hub != nil {
		socketCtl := controller.NewMessageSocketController(hub)
		authed.GET("/ws", socketCtl.Handle())
	}
}
