package services

import (
	"fmt"
	"sort"
	"strings"

	"workblox-site/pkg/models"
)

// FilterAll is the sentinel accepted by Filter for "no restriction". An empty
// filter value means the same thing.
const FilterAll = "all"

// DefaultRelatedLimit caps Related results when the caller passes limit <= 0.
const DefaultRelatedLimit = 3

// Relatedness weights: sharing a category counts most, then type, then one
// point per shared tag.
const (
	categoryWeight = 3
	typeWeight     = 2
	tagWeight      = 1
)

// Catalog is the read-only article collection. It is never mutated after
// NewCatalog returns, so it is safe to share across goroutines without
// locking.
type Catalog struct {
	articles []models.Article
	index    map[string]int
}

// NewCatalog validates and indexes the given articles. Catalog order follows
// the slice order and is preserved by every query.
func NewCatalog(articles []models.Article) (*Catalog, error) {
	index := make(map[string]int, len(articles))
	for i, a := range articles {
		if a.ID == "" {
			return nil, fmt.Errorf("article at position %d has empty id", i)
		}
		if _, ok := index[a.ID]; ok {
			return nil, fmt.Errorf("duplicate article id %q", a.ID)
		}
		if !a.Type.Valid() {
			return nil, fmt.Errorf("article %q: unknown type %q", a.ID, a.Type)
		}
		if !a.Status.Valid() {
			return nil, fmt.Errorf("article %q: unknown status %q", a.ID, a.Status)
		}
		if a.Badge != "" && !a.Badge.Valid() {
			return nil, fmt.Errorf("article %q: unknown badge %q", a.ID, a.Badge)
		}
		index[a.ID] = i
	}

	return &Catalog{articles: articles, index: index}, nil
}

// Len returns the number of articles in the catalog.
func (c *Catalog) Len() int {
	return len(c.articles)
}

// ArticleByID looks up a single article. The second return is false when the
// id is unknown; callers render a not-found state rather than failing.
func (c *Catalog) ArticleByID(id string) (models.Article, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.Article{}, false
	}
	return c.articles[i], true
}

// Filter returns the articles matching all three predicates, in catalog
// order. The query is a case-insensitive substring match against title,
// excerpt and each tag; typeFilter and categoryFilter accept FilterAll (or
// empty) to match everything.
func (c *Catalog) Filter(query, typeFilter, categoryFilter string) []models.Article {
	q := strings.ToLower(strings.TrimSpace(query))

	out := []models.Article{}
	for _, a := range c.articles {
		if !matchesQuery(a, q) {
			continue
		}
		if !isAll(typeFilter) && string(a.Type) != typeFilter {
			continue
		}
		if !isAll(categoryFilter) && a.Category != categoryFilter {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Featured returns the featured articles in catalog order. No limit is
// applied; truncation is a display concern.
func (c *Catalog) Featured() []models.Article {
	out := []models.Article{}
	for _, a := range c.articles {
		if a.Featured {
			out = append(out, a)
		}
	}
	return out
}

// ByType returns the articles of exactly the given type, in catalog order.
func (c *Catalog) ByType(t models.ArticleType) []models.Article {
	out := []models.Article{}
	for _, a := range c.articles {
		if a.Type == t {
			out = append(out, a)
		}
	}
	return out
}

// Categories returns the distinct categories in order of first appearance.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range c.articles {
		if !seen[a.Category] {
			seen[a.Category] = true
			out = append(out, a.Category)
		}
	}
	return out
}

// Related ranks every other article by overlap with the target: +3 for a
// shared category, +2 for a shared type, +1 per shared tag. Articles scoring
// zero are dropped, ties keep catalog order, and at most limit articles are
// returned (DefaultRelatedLimit when limit <= 0). An unknown id yields an
// empty list.
func (c *Catalog) Related(id string, limit int) []models.Article {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	target, ok := c.ArticleByID(id)
	if !ok {
		return []models.Article{}
	}

	type candidate struct {
		article models.Article
		score   int
	}

	var candidates []candidate
	for _, a := range c.articles {
		if a.ID == target.ID {
			continue
		}
		score := relatednessScore(target, a)
		if score == 0 {
			continue
		}
		candidates = append(candidates, candidate{article: a, score: score})
	}

	// Stable keeps catalog order within equal scores, which callers and
	// fixtures rely on.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]models.Article, len(candidates))
	for i, cand := range candidates {
		out[i] = cand.article
	}
	return out
}

func relatednessScore(target, other models.Article) int {
	score := 0
	if other.Category == target.Category {
		score += categoryWeight
	}
	if other.Type == target.Type {
		score += typeWeight
	}
	for _, tag := range other.Tags {
		for _, targetTag := range target.Tags {
			if tag == targetTag {
				score += tagWeight
				break
			}
		}
	}
	return score
}

func matchesQuery(a models.Article, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(a.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Excerpt), q) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func isAll(filter string) bool {
	return filter == "" || strings.EqualFold(filter, FilterAll)
}
