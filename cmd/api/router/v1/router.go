package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	cacheport "github.com/carolinadevia11/Bridge/internal/infrastructure/cache/port"
	qport "github.com/carolinadevia11/Bridge/internal/infrastructure/queue/port"
	"github.com/carolinadevia11/Bridge/internal/infrastructure/realtime"
	adminHTTP "github.com/carolinadevia11/Bridge/internal/pkg/admin/presentation/http"
	authHTTP "github.com/carolinadevia11/Bridge/internal/pkg/auth/presentation/http"
	"github.com/carolinadevia11/Bridge/internal/pkg/auth/token"
	calendarHTTP "github.com/carolinadevia11/Bridge/internal/pkg/calendar/presentation/http"
	familyHTTP "github.com/carolinadevia11/Bridge/internal/pkg/family/presentation/http"
	messagingHTTP "github.com/carolinadevia11/Bridge/internal/pkg/messaging/presentation/http"
)

// RegisterRoutes mounts all version 1 API routes under /api/v1
func RegisterRoutes(r *gin.Engine, pool *pgxpool.Pool, cache cacheport.Cache, queue qport.Client, hub *realtime.Hub, tokens *token.Manager) {
	v1 := r.Group("/api/v1")
	// Pass the shared infrastructure down to each module's HTTP layer
	authHTTP.RegisterRoutes(v1, pool, tokens)
	familyHTTP.RegisterRoutes(v1, pool, cache, tokens)
	calendarHTTP.RegisterRoutes(v1, pool, cache, tokens)
	messagingHTTP.RegisterRoutes(v1, pool, cache, queue, hub, tokens)
	adminHTTP.RegisterRoutes(v1, pool, tokens)
}
