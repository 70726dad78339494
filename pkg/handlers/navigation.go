package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"workblox-site/pkg/services"
)

const historySessionKey = "navigation"

// Visit handles POST /api/navigation/visit and pushes a new entry onto the
// session's history stack.
func (a *API) Visit(c *gin.Context) {
	var req struct {
		Page      string `json:"page" binding:"required"`
		ArticleID string `json:"articleId"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	history := loadHistory(c)
	history.Visit(req.Page, req.ArticleID)
	if err := saveHistory(c, history); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"current": history.Current(), "depth": history.Depth()})
}

// GoBack handles POST /api/navigation/back. Backing out of the initial entry
// is a no-op.
func (a *API) GoBack(c *gin.Context) {
	history := loadHistory(c)
	history.Back()
	if err := saveHistory(c, history); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"current": history.Current(), "depth": history.Depth()})
}

// CurrentPage handles GET /api/navigation.
func (a *API) CurrentPage(c *gin.Context) {
	history := loadHistory(c)
	c.JSON(http.StatusOK, gin.H{"current": history.Current(), "depth": history.Depth()})
}

// The stack is stored in the cookie session as a JSON string so the cookie
// store never needs gob registration for domain types.
func loadHistory(c *gin.Context) *services.History {
	session := sessions.Default(c)

	raw, ok := session.Get(historySessionKey).(string)
	if !ok || raw == "" {
		return services.NewHistory()
	}

	var history services.History
	if err := json.Unmarshal([]byte(raw), &history); err != nil || len(history.Entries) == 0 {
		return services.NewHistory()
	}
	return &history
}

func saveHistory(c *gin.Context, history *services.History) error {
	raw, err := json.Marshal(history)
	if err != nil {
		return err
	}

	session := sessions.Default(c)
	session.Set(historySessionKey, string(raw))
	return session.Save()
}
