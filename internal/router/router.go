// Package router wires the HTTP transport to the services, middleware and
// handlers. Middleware order:
//  1. OpenTelemetry
//  2. RequestID
//  3. Logger
//  4. Recovery
//  5. Body size limit
//  6. Metrics
//  7. CORS
//  8. Rate limiter (per user when a valid token is present, else per IP)
//  9. Security headers
//  10. Gzip
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"gamecatalog/backend/docs"
	"gamecatalog/backend/internal/auth"
	"gamecatalog/backend/internal/config"
	"gamecatalog/backend/internal/handler"
	"gamecatalog/backend/internal/middleware"
	"gamecatalog/backend/internal/service"
	"gamecatalog/backend/pkg/jwt"
)

const maxBodyBytes = 1 << 20

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status" example:"OK"`
	Message string `json:"message" example:"Server is running"`
}

// New returns an engine with every route registered.
func New(db *gorm.DB, cfg config.Config) *gin.Engine {
	r := gin.New()
	RegisterRoutes(r, db, cfg)
	return r
}

// RegisterRoutes attaches middleware and endpoints to r. A nil db means no
// store is configured: store-backed routes answer 503 and /auth/me answers
// from the token alone.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true
	storeConfigured := db != nil
	tokens := jwt.NewManager(cfg.EffectiveJWTSecret(), cfg.TokenTTL)

	if cfg.OTEL.Enabled {
		r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	}
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(limitBody(maxBodyBytes))

	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// CORS runs first so throttled responses still carry the allow headers.
	r.Use(corsMiddleware(cfg.AllowedOrigins()))
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	r.Use(auth.OptionalAuthMiddleware(tokens), rl.Handler())

	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.EnableHSTS,
		HSTSMaxAge:   cfg.HSTSMaxAge,
		EnablePolicy: true,
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics", "/swagger"})))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handler.ErrorResponse{Error: "Route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, handler.ErrorResponse{Error: "Method not allowed"})
	})

	r.GET("/health", health)

	if cfg.SwaggerEnabled {
		docs.SwaggerInfo.BasePath = cfg.APIBasePath
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	h := handler.New(
		service.NewUserService(db, cfg.BcryptCost, cfg.StoreTimeout),
		service.NewCatalogService(db, cfg.StoreTimeout),
		service.NewFavoriteService(db, cfg.StoreTimeout),
		tokens,
		storeConfigured,
	)

	requireStore := auth.RequireStore(storeConfigured)
	requireAuth := auth.AuthMiddleware(tokens)

	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", requireStore, h.Register)
			authRoutes.POST("/login", requireStore, h.Login)
			authRoutes.GET("/me", requireAuth, h.Me)
		}

		gameRoutes := api.Group("/games")
		gameRoutes.Use(requireStore, requireAuth)
		{
			gameRoutes.GET("", h.GetGames)
			gameRoutes.GET("/sports", h.GetSports)
			gameRoutes.GET("/providers", h.GetProviders)
			gameRoutes.GET("/:id", h.GetGameByID)
		}

		favoriteRoutes := api.Group("/favorites")
		favoriteRoutes.Use(requireStore, requireAuth)
		{
			favoriteRoutes.GET("", h.GetFavorites)
			favoriteRoutes.POST("/:gameId", h.AddFavorite)
			favoriteRoutes.DELETE("/:gameId", h.RemoveFavorite)
		}
	}
}

// health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /health [get]
func health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "OK", Message: "Server is running"})
}

// corsMiddleware allows every origin when none are configured, otherwise
// only the listed ones.
func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders:    []string{middleware.HeaderRequestID, "Content-Length", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

// limitBody caps request bodies at maxBytes. Reads past the cap fail, which
// the JSON handlers report as an invalid body.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
