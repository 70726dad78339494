package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"workblox-site/pkg/metrics"
	"workblox-site/pkg/models"
	"workblox-site/pkg/services"
)

// API holds the handler dependencies.
type API struct {
	catalog  *services.Catalog
	waitlist services.Submitter
	logger   *slog.Logger
}

func NewAPI(catalog *services.Catalog, waitlist services.Submitter, logger *slog.Logger) *API {
	return &API{
		catalog:  catalog,
		waitlist: waitlist,
		logger:   logger.With("component", "api"),
	}
}

// ListArticles handles GET /api/articles?q=&type=&category=.
func (a *API) ListArticles(c *gin.Context) {
	query := c.Query("q")
	typeFilter := c.Query("type")
	categoryFilter := c.Query("category")

	articles := a.catalog.Filter(query, typeFilter, categoryFilter)
	metrics.ArticlesServed.WithLabelValues("list").Add(float64(len(articles)))

	c.JSON(http.StatusOK, gin.H{"articles": articles, "total": len(articles)})
}

// FeaturedArticles handles GET /api/articles/featured.
func (a *API) FeaturedArticles(c *gin.Context) {
	articles := a.catalog.Featured()
	metrics.ArticlesServed.WithLabelValues("featured").Add(float64(len(articles)))

	c.JSON(http.StatusOK, gin.H{"articles": articles, "total": len(articles)})
}

// GetArticle handles GET /api/articles/:id. An unknown id is a 404, which
// the frontend renders as its not-found state.
func (a *API) GetArticle(c *gin.Context) {
	id := c.Param("id")

	article, ok := a.catalog.ArticleByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	metrics.ArticlesServed.WithLabelValues("detail").Inc()
	c.JSON(http.StatusOK, article)
}

// RelatedArticles handles GET /api/articles/:id/related?limit=. An unknown id
// yields an empty list, not an error.
func (a *API) RelatedArticles(c *gin.Context) {
	id := c.Param("id")

	limit := services.DefaultRelatedLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	articles := a.catalog.Related(id, limit)
	metrics.ArticlesServed.WithLabelValues("related").Add(float64(len(articles)))

	c.JSON(http.StatusOK, gin.H{"articles": articles, "total": len(articles)})
}

// ListCategories handles GET /api/categories.
func (a *API) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": a.catalog.Categories()})
}

// SubmitWaitlist handles POST /api/waitlist. The signup is proxied straight
// to the marketing upstream; any upstream failure comes back as a 500.
func (a *API) SubmitWaitlist(c *gin.Context) {
	var req struct {
		Email     string            `json:"email" binding:"required,email"`
		Questions []models.Question `json:"questions"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if err := a.waitlist.Submit(c.Request.Context(), req.Email, req.Questions); err != nil {
		metrics.WaitlistSubmissions.WithLabelValues("error").Inc()
		a.logger.Error("waitlist submission failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit", "details": err.Error()})
		return
	}

	metrics.WaitlistSubmissions.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, gin.H{"success": true})
}
