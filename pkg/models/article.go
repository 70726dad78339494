package models

// ArticleType classifies a catalog entry.
type ArticleType string

const (
	TypeProductUpdate ArticleType = "product-update"
	TypeArticle       ArticleType = "article"
	TypeGuide         ArticleType = "guide"
	TypeReleaseNotes  ArticleType = "release-notes"
)

// ArticleTypes returns all valid types in canonical order.
func ArticleTypes() []ArticleType {
	return []ArticleType{TypeProductUpdate, TypeArticle, TypeGuide, TypeReleaseNotes}
}

func (t ArticleType) Valid() bool {
	switch t {
	case TypeProductUpdate, TypeArticle, TypeGuide, TypeReleaseNotes:
		return true
	}
	return false
}

// Status is the publication state of an article. The public catalog does not
// filter on it; it is carried for completeness.
type Status string

const (
	StatusPublished Status = "published"
	StatusScheduled Status = "scheduled"
	StatusDraft     Status = "draft"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPublished, StatusScheduled, StatusDraft:
		return true
	}
	return false
}

// Badge is an optional promotional label on an article.
type Badge string

const (
	BadgeNew      Badge = "new"
	BadgeImproved Badge = "improved"
	BadgeBreaking Badge = "breaking"
	BadgePopular  Badge = "popular"
)

func (b Badge) Valid() bool {
	switch b {
	case BadgeNew, BadgeImproved, BadgeBreaking, BadgePopular:
		return true
	}
	return false
}

// Author is the byline shown on an article card.
type Author struct {
	Name           string `json:"name" yaml:"name"`
	AvatarInitials string `json:"avatarInitials" yaml:"avatar_initials"`
	Role           string `json:"role" yaml:"role"`
}

type Section struct {
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

// Content is the article body. Sections may be empty.
type Content struct {
	Introduction string    `json:"introduction" yaml:"introduction"`
	Sections     []Section `json:"sections" yaml:"sections"`
	Conclusion   string    `json:"conclusion" yaml:"conclusion"`
}

// Article is one published piece of content in the catalog. Articles are
// immutable once the catalog is built.
type Article struct {
	ID              string      `json:"id" yaml:"id"`
	Title           string      `json:"title" yaml:"title"`
	Type            ArticleType `json:"type" yaml:"type"`
	Status          Status      `json:"status" yaml:"status"`
	Author          Author      `json:"author" yaml:"author"`
	PublishedDate   string      `json:"publishedDate" yaml:"published_date"`
	ReadTimeMinutes int         `json:"readTimeMinutes" yaml:"read_time_minutes"`
	Views           int         `json:"views" yaml:"views"`
	Reactions       int         `json:"reactions" yaml:"reactions"`
	Badge           Badge       `json:"badge,omitempty" yaml:"badge,omitempty"`
	Excerpt         string      `json:"excerpt" yaml:"excerpt"`
	Content         Content     `json:"content" yaml:"content"`
	Tags            []string    `json:"tags" yaml:"tags"`
	Category        string      `json:"category" yaml:"category"`
	Featured        bool        `json:"featured" yaml:"featured"`
	ImageURL        string      `json:"imageUrl,omitempty" yaml:"image_url,omitempty"`
}
