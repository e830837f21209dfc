package search

import "sync"

type Slot string

const (
	SlotResults   Slot = "results"
	SlotKeywords  Slot = "keywords"
	SlotCampaigns Slot = "campaigns"
)

// Token identifica uma requisição dentro de um slot de estado
type Token struct {
	Slot Slot
	Seq  uint64
}

// RequestTracker emite tokens crescentes por slot. Uma resposta só deve ser
// aplicada se o seu token ainda for o último emitido para aquele slot.
type RequestTracker struct {
	mu     sync.Mutex
	latest map[Slot]uint64
}

func NewRequestTracker() *RequestTracker {
	return &RequestTracker{latest: make(map[Slot]uint64)}
}

func (t *RequestTracker) Begin(slot Slot) Token {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.latest[slot]++
	return Token{Slot: slot, Seq: t.latest[slot]}
}

func (t *RequestTracker) IsLatest(tok Token) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.latest[tok.Slot] == tok.Seq
}

// Apply executa fn somente se o token ainda for o mais recente do slot.
// fn roda com o lock do tracker, então nenhum token novo é emitido durante a aplicação.
func (t *RequestTracker) Apply(tok Token, fn func()) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.latest[tok.Slot] != tok.Seq {
		return false
	}
	if fn != nil {
		fn()
	}
	return true
}
