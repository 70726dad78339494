package models

// NavigationEntry is one visited screen. ArticleID is set only when Page
// refers to an article detail view.
type NavigationEntry struct {
	Page      string `json:"page"`
	ArticleID string `json:"articleId,omitempty"`
}
