package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dtroode/gophfeed-server/internal/api/graphql"
	"github.com/dtroode/gophfeed-server/internal/api/http/handler"
	"github.com/dtroode/gophfeed-server/internal/api/http/middleware"
	"github.com/dtroode/gophfeed-server/internal/logger"
	"github.com/dtroode/gophfeed-server/internal/metrics"
	"github.com/dtroode/gophfeed-server/internal/model"
)

// Options configures cross-cutting HTTP behaviour.
type Options struct {
	AllowedOrigins []string
	MaxUploadBytes int64
	RateLimitRPS   float64
	RateLimitBurst int
}

// Router represents the HTTP router for gophfeed.
// It wires middleware, the GraphQL endpoint and the image routes.
type Router struct {
	resolver       *graphql.Resolver
	imageService   handler.ImageService
	images         model.ImageStore
	db             handler.Pinger
	tokenManager   model.TokenManager
	contextManager model.ContextManager
	metrics        *metrics.Metrics
	options        Options
	logger         *logger.Logger
}

// New creates new Router instance.
func New(
	resolver *graphql.Resolver,
	imageService handler.ImageService,
	images model.ImageStore,
	db handler.Pinger,
	tokenManager model.TokenManager,
	contextManager model.ContextManager,
	metrics *metrics.Metrics,
	options Options,
	logger *logger.Logger,
) *Router {
	return &Router{
		resolver:       resolver,
		imageService:   imageService,
		images:         images,
		db:             db,
		tokenManager:   tokenManager,
		contextManager: contextManager,
		metrics:        metrics,
		options:        options,
		logger:         logger,
	}
}

// Register builds the gin engine with all middleware and routes.
//
// Middleware order: metrics, logging, rate limit, CORS, authentication.
// Authentication never rejects; resolvers and handlers decide what needs a user.
func (r *Router) Register() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.Use(middleware.NewMetrics(r.metrics).Handle)
	engine.Use(middleware.NewLogging(r.logger).Handle)
	if r.options.RateLimitRPS > 0 {
		engine.Use(middleware.NewRateLimit(r.options.RateLimitRPS, r.options.RateLimitBurst).Handle)
	}
	engine.Use(cors.New(corsConfig(r.options.AllowedOrigins)))
	engine.Use(middleware.NewAuthenticate(r.tokenManager, r.contextManager, r.logger).Handle)

	r.registerGraphQLRoutes(engine)
	r.registerImageRoutes(engine)
	r.registerServiceRoutes(engine)

	return engine
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{
			http.MethodOptions, http.MethodGet, http.MethodPost,
			http.MethodPut, http.MethodPatch, http.MethodDelete,
		},
		AllowHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func (r *Router) registerGraphQLRoutes(engine *gin.Engine) {
	gql := graphql.NewHandler(r.resolver, r.metrics, r.logger)
	engine.POST("/graphql", gql.Serve)
}

func (r *Router) registerImageRoutes(engine *gin.Engine) {
	images := handler.NewImage(r.imageService, r.images, r.contextManager, r.options.MaxUploadBytes, r.logger)
	engine.PUT("/post-image", images.Upload)
	engine.GET("/images/*name", images.Download)
}

func (r *Router) registerServiceRoutes(engine *gin.Engine) {
	health := handler.NewHealth(r.db, r.logger)
	engine.GET("/healthz", health.Check)
	engine.GET("/metrics", gin.WrapH(r.metrics.Handler()))
}
