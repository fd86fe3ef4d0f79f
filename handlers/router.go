package handlers

import (
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"sqlgate/config"
	_ "sqlgate/docs" // Swagger docs
	"sqlgate/telemetry"
)

// NewRouter builds the gin engine with every route mounted.
func NewRouter(cfg *config.Config, h *Handlers, metrics *telemetry.Registry) *gin.Engine {
	r := gin.New()
	r.Use(Recovery(), RequestLogger(metrics))
	r.Use(cors.New(corsConfig(cfg.CORS.AllowOrigins)))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if metrics.Enabled() && cfg.Prometheus.Path != "" {
		r.GET(cfg.Prometheus.Path, gin.WrapH(metrics.Handler()))
	}

	r.GET("/health", h.HealthHandler)

	api := r.Group("/api")
	{
		api.POST("/query", h.QueryHandler)
		api.GET("/tables", h.TablesHandler)
		api.POST("/translate", h.TranslateHandler)
		api.GET("/translations", h.TranslationsHandler)
	}

	// Unprefixed aliases for older clients.
	r.POST("/query", h.QueryHandler)
	r.GET("/tables", h.TablesHandler)

	if cfg.PublicDir != "" {
		mountPublic(r, cfg.PublicDir)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        24 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}

func mountPublic(r *gin.Engine, dir string) {
	index := filepath.Join(dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		log.Warn().Str("dir", dir).Msg("Public directory has no index.html, static files disabled")
		return
	}
	r.StaticFile("/", index)
	r.Static("/static", filepath.Join(dir, "static"))
	r.NoRoute(func(c *gin.Context) {
		c.File(index)
	})
}
