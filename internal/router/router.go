package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/spqrod/dr-watson-dashboard-server/internal/handler"
	"github.com/spqrod/dr-watson-dashboard-server/internal/middleware"
)

// Handler registers a set of routes on a group.
type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Config struct {
	RateLimit rate.Limit
	RateBurst int
}

type Router struct {
	engine  *gin.Engine
	auth    *middleware.AuthMiddleware
	health  *handler.HealthHandler
	config  Config
	open    []Handler // authenticated routes
	guarded []Handler // director-only routes
}

func NewRouter(auth *middleware.AuthMiddleware, health *handler.HealthHandler, config Config) *Router {
	gin.SetMode(gin.ReleaseMode)

	return &Router{
		engine: gin.New(),
		auth:   auth,
		health: health,
		config: config,
	}
}

// Register adds handlers reachable with any valid token.
func (r *Router) Register(handlers ...Handler) {
	r.open = append(r.open, handlers...)
}

// RegisterDirectorOnly adds handlers gated to the director access level.
func (r *Router) RegisterDirectorOnly(handlers ...Handler) {
	r.guarded = append(r.guarded, handlers...)
}

func (r *Router) Setup() {
	limiter := middleware.NewRateLimiter(r.config.RateLimit, r.config.RateBurst)

	r.engine.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(middleware.DefaultCORSConfig()),
		limiter.RateLimit(),
	)

	r.engine.GET("/health", r.health.Health)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.engine.Group("/api/v1")
	api.Use(r.auth.Authenticate())
	for _, h := range r.open {
		h.RegisterRoutes(api)
	}

	guarded := r.engine.Group("/api/v1")
	guarded.Use(r.auth.Authenticate(), r.auth.RequireAccessLevel(middleware.AccessLevelDirector))
	for _, h := range r.guarded {
		h.RegisterRoutes(guarded)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
