package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"workblox-site/pkg/config"
	"workblox-site/pkg/handlers"
	"workblox-site/pkg/metrics"
	"workblox-site/pkg/middleware"
	"workblox-site/pkg/services"
)

func main() {
	// Initialize config
	config.Init()

	logger := setupLogger(config.LogLevel)
	metrics.Init("workblox-site", "1.0.0", getEnv("ENVIRONMENT", "production"))

	// Catalog: a YAML file when configured, the embedded seed otherwise.
	catalog, err := loadCatalog(logger)
	if err != nil {
		logger.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}
	logger.Info("catalog loaded", "articles", catalog.Len())

	if config.WaitlistURL == "" {
		logger.Warn("WAITLIST_URL not set; waitlist submissions will fail")
	}
	waitlist := services.NewWaitlistClient(config.WaitlistURL, logger)

	api := handlers.NewAPI(catalog, waitlist, logger)

	r := gin.Default()

	// Session Setup
	store := cookie.NewStore([]byte(config.SessionSecret()))
	r.Use(sessions.Sessions("workblox_session", store))

	// CORS for the browser frontend
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = config.CORSOrigins
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	r.Use(middleware.PrometheusMiddleware("workblox-site"))

	// Health & metrics
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "workblox-site"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/articles", api.ListArticles)
		apiGroup.GET("/articles/featured", api.FeaturedArticles)
		apiGroup.GET("/articles/:id", api.GetArticle)
		apiGroup.GET("/articles/:id/related", api.RelatedArticles)
		apiGroup.GET("/categories", api.ListCategories)
		apiGroup.POST("/waitlist", api.SubmitWaitlist)
		apiGroup.GET("/navigation", api.CurrentPage)
		apiGroup.POST("/navigation/visit", api.Visit)
		apiGroup.POST("/navigation/back", api.GoBack)
	}

	logger.Info("starting server", "addr", config.ListenAddr)
	if err := r.Run(config.ListenAddr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadCatalog(logger *slog.Logger) (*services.Catalog, error) {
	if config.CatalogPath != "" {
		logger.Info("loading catalog from file", "path", config.CatalogPath)
		return services.LoadCatalog(config.CatalogPath)
	}
	return services.NewCatalog(services.DefaultCatalog())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
