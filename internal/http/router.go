// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, CORS,
// security headers, compression, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

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

	_ "github.com/moovio/go-cinema-backend/docs" // swagger spec registration

	"github.com/moovio/go-cinema-backend/internal/config"
	"github.com/moovio/go-cinema-backend/internal/http/handlers"
	"github.com/moovio/go-cinema-backend/internal/http/middleware"
	"github.com/moovio/go-cinema-backend/internal/notify"
	"github.com/moovio/go-cinema-backend/internal/services"
	"github.com/moovio/go-cinema-backend/internal/storage"
)

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), rate limiting,
// CORS and security headers, compression, static upload serving, health and
// metrics endpoints, and then mounts the versioned public API under /api/v*.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access logs
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. Gzip compression
//  8. Rate limiter (per user/IP)
//  9. CORS and Security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, gw notify.Gateway, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured access logging
	r.Use(middleware.Logger())

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (32 MiB; uploads carry poster images)
	r.Use(limitBody(32 << 20))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Response compression (JSON catalogs compress well)
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 8) Token-bucket rate limiter per user/IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	r.Use(rl.Handler())

	// 9) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps tests and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist (in addition to gin-contrib/cors).
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Swagger UI (opt-in)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Uploaded media served statically under the public path.
	r.Static(cfg.UploadsPublicPath, cfg.UploadsDir)

	// Dependency injection: services ← repo/db/gateway
	movieSvc := services.NewMovieService(db, gw, cfg.PublicBaseURL)
	genreSvc := services.NewGenreService(db)
	if cfg.CollectionPolicy != "" {
		genreSvc.Policy = services.CollectionPolicy(cfg.CollectionPolicy)
	}
	actorSvc := services.NewActorService(db)
	userSvc := services.NewUserService(db)
	files := storage.NewFileStore(cfg.UploadsDir, cfg.UploadsPublicPath)

	h := handlers.New(movieSvc, genreSvc, actorSvc, userSvc, files)

	// Public API
	apiBase := cfg.APIBasePath // e.g. "/api/v1"
	api := groupWithPrefix(r, apiBase)
	{
		// Movies (public)
		api.GET("/movies", h.ListMovies)
		api.GET("/movies/by-slug/:slug", h.GetMovieBySlug)
		api.GET("/movies/by-actor/:actorId", h.GetMovieByActor)
		api.POST("/movies/by-genres", h.GetMoviesByGenres)
		api.GET("/movies/most-popular", h.GetMostPopular)
		api.PUT("/movies/count-opened", h.UpdateCountOpened)
		api.PATCH("/movies/:id/rating", h.UpdateMovieRating)

		// Genres (public)
		api.GET("/genres", h.ListGenres)
		api.GET("/genres/by-slug/:slug", h.GetGenreBySlug)
		api.GET("/genres/collections", h.GetCollections)

		// Actors (public)
		api.GET("/actors", h.ListActors)
		api.GET("/actors/by-slug/:slug", h.GetActorBySlug)

		// Users (profile of the requesting identity)
		api.GET("/users/profile", h.GetProfile)
		api.PUT("/users/profile", h.UpdateProfile)
		api.GET("/users/profile/favorites", h.ListFavorites)
		api.PUT("/users/profile/favorites", h.ToggleFavorite)

		// Administrative surface
		admin := api.Group("", adminOnly(userSvc))
		{
			admin.GET("/movies/:id", h.GetMovieByID)
			admin.POST("/movies", h.CreateMovie)
			admin.PUT("/movies/:id", h.UpdateMovie)
			admin.DELETE("/movies/:id", h.DeleteMovie)

			admin.GET("/genres/:id", h.GetGenreByID)
			admin.POST("/genres", h.CreateGenre)
			admin.PUT("/genres/:id", h.UpdateGenre)
			admin.DELETE("/genres/:id", h.DeleteGenre)

			admin.GET("/actors/:id", h.GetActorByID)
			admin.POST("/actors", h.CreateActor)
			admin.PUT("/actors/:id", h.UpdateActor)
			admin.DELETE("/actors/:id", h.DeleteActor)

			admin.POST("/files", h.UploadFiles)
		}
	}
}

// adminOnly gates a route group on the caller's admin flag. Unknown users and
// non-admins receive 403; the existence check rides on the profile lookup.
func adminOnly(userSvc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, err := userSvc.IsAdmin(c.Request.Context(), handlers.UserID(c))
		if err != nil || !isAdmin {
			handlers.Fail(c, http.StatusForbidden, handlers.ErrCodeForbidden, "admin access required")
			return
		}
		c.Next()
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
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
