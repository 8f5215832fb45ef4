package analyzer

import (
	"sort"
	"sync"

	"StockScope/internal/model"
)

// Store holds the latest analysis snapshot per symbol. Snapshots are
// immutable; the store only swaps pointers.
type Store struct {
	mu       sync.RWMutex
	bySymbol map[string]*model.Analysis
}

func NewStore() *Store {
	return &Store{bySymbol: make(map[string]*model.Analysis)}
}

func (s *Store) Put(a *model.Analysis) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bySymbol[a.Symbol] = a
}

func (s *Store) Get(symbol string) (*model.Analysis, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.bySymbol[symbol]
	return a, ok
}

func (s *Store) Symbols() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	symbols := make([]string, 0, len(s.bySymbol))
	for sym := range s.bySymbol {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)
	return symbols
}
