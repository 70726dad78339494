package services

import "testing"

func TestHistoryStartsAtHome(t *testing.T) {
	h := NewHistory()
	if h.Current().Page != PageHome {
		t.Errorf("expected home, got %s", h.Current().Page)
	}
	if h.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", h.Depth())
	}
}

func TestHistoryVisitAndBack(t *testing.T) {
	h := NewHistory()
	h.Visit("articles", "")
	h.Visit("article", "5")

	current := h.Current()
	if current.Page != "article" || current.ArticleID != "5" {
		t.Errorf("unexpected current entry: %+v", current)
	}

	h.Back()
	current = h.Current()
	if current.Page != "articles" || current.ArticleID != "" {
		t.Errorf("expected to land on articles, got %+v", current)
	}
	if h.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", h.Depth())
	}
}

func TestHistoryBackAtRootIsNoOp(t *testing.T) {
	h := NewHistory()
	h.Back()
	h.Back()

	if h.Depth() != 1 {
		t.Errorf("expected depth to stay 1, got %d", h.Depth())
	}
	if h.Current().Page != PageHome {
		t.Errorf("expected home, got %s", h.Current().Page)
	}
}

func TestHistoryDepthNeverBelowOne(t *testing.T) {
	h := NewHistory()
	h.Visit("articles", "")
	for i := 0; i < 5; i++ {
		h.Back()
	}
	if h.Depth() < 1 {
		t.Errorf("depth fell below 1: %d", h.Depth())
	}
}

func TestHistoryRecoversFromEmptyState(t *testing.T) {
	// A history deserialized from a corrupted session has no entries; Current
	// must snap back to home rather than panic.
	h := &History{}
	if h.Current().Page != PageHome {
		t.Errorf("expected home, got %s", h.Current().Page)
	}
	if h.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", h.Depth())
	}
}
