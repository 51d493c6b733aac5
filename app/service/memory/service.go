package memory

import (
	"sync"

	"github.com/samber/do"
)

// Service owns per-conversation state, keyed by chat id. Records are created
// lazily on first sight and live for the process lifetime; nothing is
// persisted. Only the turn currently holding a conversation's queue slot may
// mutate its record.
type Service struct {
	mu       sync.RWMutex
	contexts map[int64]*Context
}

func New(_ *do.Injector) (*Service, error) {
	return &Service{
		contexts: make(map[int64]*Context),
	}, nil
}

// Get returns a snapshot of the conversation's context, creating it with no
// pending slot if absent. Mutations go through SetPending and ClearPending.
func (s *Service) Get(chatID int64) Context {
	s.mu.RLock()
	ctx, ok := s.contexts[chatID]
	s.mu.RUnlock()

	if ok {
		return *ctx
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, ok = s.contexts[chatID]
	if !ok {
		ctx = &Context{}
		s.contexts[chatID] = ctx
	}

	return *ctx
}

func (s *Service) SetPending(chatID int64, slot PendingSlot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, ok := s.contexts[chatID]
	if !ok {
		ctx = &Context{}
		s.contexts[chatID] = ctx
	}

	ctx.Pending = slot
}

func (s *Service) ClearPending(chatID int64) {
	s.SetPending(chatID, SlotNone)
}
