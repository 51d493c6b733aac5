package queue

import (
	"context"
	"log/slog"
	"sync"

	"github.com/samber/do"
)

const mailboxSize = 16

var _ do.Shutdownable = (*Service)(nil)

// Handler processes one turn. Turns sharing a chat id are invoked strictly
// one at a time, in arrival order.
type Handler func(ctx context.Context, turn Turn)

type Turn struct {
	ChatID int64
	// Command name without the slash, empty for plain messages
	Command string
	// Message text, or command arguments when Command is set
	Text string
}

// Service fans inbound messages out to one serial mailbox per chat id. A
// chat's worker is created on its first message and drains turns one by one,
// so two turns of the same chat never run concurrently while different chats
// proceed in parallel.
type Service struct {
	appCtx context.Context

	mu        sync.Mutex
	handler   Handler
	closed    bool
	mailboxes map[int64]chan Turn

	wg sync.WaitGroup
}

func New(di *do.Injector) (*Service, error) {
	return &Service{
		appCtx:    do.MustInvoke[context.Context](di),
		mailboxes: make(map[int64]chan Turn),
	}, nil
}

// SetHandler must be called before the first Add.
func (s *Service) SetHandler(handler Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.handler = handler
}

func (s *Service) Add(turn Turn) {
	defer func() {
		if r := recover(); r != nil {

		}
	}()

	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()
		return
	}

	box, ok := s.mailboxes[turn.ChatID]
	if !ok {
		box = make(chan Turn, mailboxSize)
		s.mailboxes[turn.ChatID] = box

		s.wg.Add(1)
		go s.drain(box)
	}

	s.mu.Unlock()

	select {
	case box <- turn:
	default:
		slog.Warn("conversation mailbox is full", "chat_id", turn.ChatID)
	}
}

func (s *Service) drain(box <-chan Turn) {
	defer s.wg.Done()

	for turn := range box {
		s.mu.Lock()
		handler := s.handler
		s.mu.Unlock()

		if handler == nil {
			continue
		}

		handler(s.appCtx, turn)
	}
}

func (s *Service) Shutdown() error {
	s.mu.Lock()
	s.closed = true

	for _, box := range s.mailboxes {
		close(box)
	}
	s.mu.Unlock()

	s.wg.Wait()

	return nil
}
