package search

import (
	"sync"

	"github.com/vfg2006/influencer-hub-api/internal/domain"
)

// Session é o estado de busca de um usuário: filtros ativos, página corrente
// e o total da última resposta aplicada.
type Session struct {
	tracker *RequestTracker

	mu      sync.Mutex
	filters *domain.Filters
	page    int
	count   int
}

func NewSession() *Session {
	return &Session{
		tracker: NewRequestTracker(),
		page:    1,
	}
}

func (s *Session) Begin(slot Slot) Token {
	return s.tracker.Begin(slot)
}

func (s *Session) IsLatest(tok Token) bool {
	return s.tracker.IsLatest(tok)
}

// ApplyResults aplica o resultado de uma busca se o token ainda for o mais recente.
// Uma página explícita (requestedPage > 0) sempre vale. Sem página, a atual é
// mantida, ou volta para 1 se os filtros mudaram.
// Retorna false quando a resposta é obsoleta e foi descartada.
func (s *Session) ApplyResults(tok Token, filters domain.Filters, rows []Row, requestedPage int) (Page[Row], bool) {
	var page Page[Row]

	applied := s.tracker.Apply(tok, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		switch {
		case requestedPage > 0:
			s.page = requestedPage
		case s.filters == nil || !s.filters.Equal(filters):
			s.page = 1
		}

		f := filters
		s.filters = &f
		s.count = len(rows)
		s.page = ClampPage(s.page, s.count)

		page = Paginate(rows, s.page)
	})

	return page, applied
}

// CurrentPage retorna a página atual já limitada ao total conhecido
func (s *Session) CurrentPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return ClampPage(s.page, s.count)
}

// SessionStore mantém uma sessão de busca por usuário
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

func (s *SessionStore) For(userID string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[userID]
	if !ok {
		session = NewSession()
		s.sessions[userID] = session
	}
	return session
}
