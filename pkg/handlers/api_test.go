package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"workblox-site/pkg/models"
	"workblox-site/pkg/services"
	"workblox-site/pkg/services/mocks"
)

func newTestRouter(t *testing.T, submitter services.Submitter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog, err := services.NewCatalog(services.DefaultCatalog())
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := NewAPI(catalog, submitter, logger)

	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("workblox_session", store))

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
	return r
}

type articleListResponse struct {
	Articles []models.Article `json:"articles"`
	Total    int              `json:"total"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListArticles(t *testing.T) {
	r := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodGet, "/api/articles", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp articleListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 6, resp.Total)
	assert.Equal(t, "1", resp.Articles[0].ID)
}

func TestListArticlesFiltered(t *testing.T) {
	r := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodGet, "/api/articles?q=automation&type=guide&category=Guides", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp articleListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "6", resp.Articles[0].ID)
}

func TestFeaturedArticles(t *testing.T) {
	r := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodGet, "/api/articles/featured", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp articleListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Total)
}

func TestGetArticle(t *testing.T) {
	r := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodGet, "/api/articles/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var article models.Article
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &article))
	assert.Equal(t, "Introducing Workblox AI Assist", article.Title)
}

func TestGetArticleNotFound(t *testing.T) {
	r := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodGet, "/api/articles/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestRelatedArticles(t *testing.T) {
	r := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodGet, "/api/articles/1/related", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp articleListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 3, resp.Total)
	assert.Equal(t, "5", resp.Articles[0].ID)
}

func TestRelatedArticlesUnknownID(t *testing.T) {
	r := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodGet, "/api/articles/999/related", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp articleListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Total)
}

func TestRelatedArticlesInvalidLimit(t *testing.T) {
	r := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodGet, "/api/articles/1/related?limit=bogus", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListCategories(t *testing.T) {
	r := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Categories []string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Features", "Guides", "Company", "Releases"}, resp.Categories)
}

func TestSubmitWaitlist(t *testing.T) {
	ctrl := gomock.NewController(t)
	submitter := mocks.NewMockSubmitter(ctrl)
	submitter.EXPECT().
		Submit(gomock.Any(), "maya@example.com", gomock.Len(1)).
		Return(nil)

	r := newTestRouter(t, submitter)

	body := `{"email":"maya@example.com","questions":[{"question":"Team size?","answer":"10-50"}]}`
	w := doJSON(t, r, http.MethodPost, "/api/waitlist", body)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestSubmitWaitlistUpstreamFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	submitter := mocks.NewMockSubmitter(ctrl)
	submitter.EXPECT().
		Submit(gomock.Any(), "maya@example.com", gomock.Any()).
		Return(errors.New("upstream returned 502"))

	r := newTestRouter(t, submitter)

	w := doJSON(t, r, http.MethodPost, "/api/waitlist", `{"email":"maya@example.com","questions":[]}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "upstream returned 502")
}

func TestSubmitWaitlistInvalidEmail(t *testing.T) {
	r := newTestRouter(t, mocks.NewMockSubmitter(gomock.NewController(t)))

	w := doJSON(t, r, http.MethodPost, "/api/waitlist", `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
