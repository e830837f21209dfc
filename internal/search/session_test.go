package search

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
)

func rowsOf(n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{Account: &domain.Account{ID: string(rune('a' + i%26))}}
	}
	return rows
}

func filtersFor(platform string) domain.Filters {
	return domain.Filters{
		Platforms: []string{platform},
		Likes:     domain.FullRange(),
		Posts:     domain.FullRange(),
		Followers: domain.FullRange(),
	}
}

func TestRequestTracker(t *testing.T) {
	tracker := NewRequestTracker()

	first := tracker.Begin(SlotResults)
	second := tracker.Begin(SlotResults)
	keywords := tracker.Begin(SlotKeywords)

	assert.False(t, tracker.IsLatest(first))
	assert.True(t, tracker.IsLatest(second))
	assert.True(t, tracker.IsLatest(keywords), "slots são independentes")

	applied := false
	assert.False(t, tracker.Apply(first, func() { applied = true }))
	assert.False(t, applied)
	assert.True(t, tracker.Apply(second, func() { applied = true }))
	assert.True(t, applied)
}

func TestRequestTracker_Concurrent(t *testing.T) {
	tracker := NewRequestTracker()

	var wg sync.WaitGroup
	tokens := make(chan Token, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tokens <- tracker.Begin(SlotResults)
		}()
	}
	wg.Wait()
	close(tokens)

	latest := 0
	seen := make(map[uint64]struct{})
	for tok := range tokens {
		seen[tok.Seq] = struct{}{}
		if tracker.IsLatest(tok) {
			latest++
		}
	}

	assert.Len(t, seen, 100)
	assert.Equal(t, 1, latest)
}

func TestSession_ApplyResults(t *testing.T) {
	session := NewSession()

	tok := session.Begin(SlotResults)
	page, ok := session.ApplyResults(tok, filtersFor("instagram"), rowsOf(35), 3)
	assert.True(t, ok)
	assert.Equal(t, 3, page.Page, "página pedida vale mesmo em sessão nova")

	tok = session.Begin(SlotResults)
	page, ok = session.ApplyResults(tok, filtersFor("instagram"), rowsOf(35), 4)
	assert.True(t, ok)
	assert.Equal(t, 4, page.Page)
	assert.Len(t, page.Items, 5)

	// Sem página pedida, filtro diferente volta para a página 1
	tok = session.Begin(SlotResults)
	page, ok = session.ApplyResults(tok, filtersFor("tiktok"), rowsOf(35), 0)
	assert.True(t, ok)
	assert.Equal(t, 1, page.Page)

	// Sem página pedida e mesmo filtro, mantém a página atual
	session.ApplyResults(session.Begin(SlotResults), filtersFor("tiktok"), rowsOf(35), 2)
	page, _ = session.ApplyResults(session.Begin(SlotResults), filtersFor("tiktok"), rowsOf(35), 0)
	assert.Equal(t, 2, page.Page)
}

func TestSession_InterleavedFiltersKeepRequestedPage(t *testing.T) {
	session := NewSession()

	page, _ := session.ApplyResults(session.Begin(SlotResults), filtersFor("instagram"), rowsOf(35), 2)
	assert.Equal(t, 2, page.Page)

	page, _ = session.ApplyResults(session.Begin(SlotResults), filtersFor("tiktok"), rowsOf(35), 3)
	assert.Equal(t, 3, page.Page)

	page, _ = session.ApplyResults(session.Begin(SlotResults), filtersFor("instagram"), rowsOf(35), 2)
	assert.Equal(t, 2, page.Page)

	// Página pedida além do total é limitada
	page, _ = session.ApplyResults(session.Begin(SlotResults), filtersFor("youtube"), rowsOf(12), 9)
	assert.Equal(t, 2, page.Page)
}

func TestSession_ClampsPageWhenResultsShrink(t *testing.T) {
	session := NewSession()
	filters := filtersFor("x")

	session.ApplyResults(session.Begin(SlotResults), filters, rowsOf(50), 0)
	session.ApplyResults(session.Begin(SlotResults), filters, rowsOf(50), 5)
	assert.Equal(t, 5, session.CurrentPage())

	page, ok := session.ApplyResults(session.Begin(SlotResults), filters, rowsOf(12), 0)
	assert.True(t, ok)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, session.CurrentPage())
}

func TestSession_DiscardsStaleResponse(t *testing.T) {
	session := NewSession()

	slow := session.Begin(SlotResults)
	fast := session.Begin(SlotResults)

	_, ok := session.ApplyResults(fast, filtersFor("youtube"), rowsOf(3), 0)
	assert.True(t, ok)

	_, ok = session.ApplyResults(slow, filtersFor("instagram"), rowsOf(40), 0)
	assert.False(t, ok)
	assert.Equal(t, 1, session.CurrentPage())
}

func TestSessionStore_For(t *testing.T) {
	store := NewSessionStore()

	a := store.For("user-a")
	assert.Same(t, a, store.For("user-a"))
	assert.NotSame(t, a, store.For("user-b"))
}
