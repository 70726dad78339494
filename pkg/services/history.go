package services

import "workblox-site/pkg/models"

// PageHome is the page every history starts on.
const PageHome = "home"

// History is the per-session navigation stack. The current entry is always
// the last one and the stack never shrinks below the initial entry. Growth is
// unbounded; a marketing-site session is short-lived enough that no cap is
// applied. Each session must own its own History.
type History struct {
	Entries []models.NavigationEntry `json:"entries"`
}

// NewHistory returns a history positioned on the home page.
func NewHistory() *History {
	return &History{Entries: []models.NavigationEntry{{Page: PageHome}}}
}

// Visit pushes a new entry, making it current.
func (h *History) Visit(page, articleID string) {
	h.Entries = append(h.Entries, models.NavigationEntry{Page: page, ArticleID: articleID})
}

// Back pops the current entry. At the initial entry it is a no-op.
func (h *History) Back() {
	if len(h.Entries) <= 1 {
		return
	}
	h.Entries = h.Entries[:len(h.Entries)-1]
}

// Current returns the entry on top of the stack. A history that was
// deserialized empty snaps back to home.
func (h *History) Current() models.NavigationEntry {
	if len(h.Entries) == 0 {
		h.Entries = []models.NavigationEntry{{Page: PageHome}}
	}
	return h.Entries[len(h.Entries)-1]
}

// Depth returns how many entries the stack holds.
func (h *History) Depth() int {
	return len(h.Entries)
}
