package engine

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"smalltalk/app/client/telegram"
	"smalltalk/app/config"
	"smalltalk/app/service/conversation"
	"smalltalk/app/service/queue"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samber/do"
)

type Service struct {
	cfg             *config.Config
	telegramClient  *telegram.Client
	conversationSvc *conversation.Service
	queueSvc        *queue.Service
}

func New(di *do.Injector) (*Service, error) {
	s := &Service{
		cfg:             do.MustInvoke[*config.Config](di),
		telegramClient:  do.MustInvoke[*telegram.Client](di),
		conversationSvc: do.MustInvoke[*conversation.Service](di),
		queueSvc:        do.MustInvoke[*queue.Service](di),
	}

	s.queueSvc.SetHandler(s.handleTurn)

	return s, nil
}

func (s *Service) Run(ctx context.Context) {
	updates := s.telegramClient.Updates()

	for {
		select {
		case <-ctx.Done():
			s.telegramClient.Stop()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}

			s.handleUpdate(update)
		}
	}
}

// handleUpdate only routes; provider calls and state mutations happen on the
// chat's serial mailbox, never on the update loop.
func (s *Service) handleUpdate(update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.Text == "" {
		return
	}

	if msg.IsCommand() {
		s.queueSvc.Add(queue.Turn{
			ChatID:  msg.Chat.ID,
			Command: msg.Command(),
			Text:    msg.CommandArguments(),
		})

		return
	}

	text := msg.Text

	if msg.Chat.IsGroup() || msg.Chat.IsSuperGroup() {
		// In groups only reply when mentioned, with the mention stripped.
		if !strings.Contains(text, s.cfg.Telegram.Username) {
			return
		}

		text = strings.TrimSpace(strings.ReplaceAll(text, s.cfg.Telegram.Username, ""))
	}

	s.queueSvc.Add(queue.Turn{
		ChatID: msg.Chat.ID,
		Text:   text,
	})
}

func (s *Service) handleTurn(ctx context.Context, turn queue.Turn) {
	start := time.Now()

	var reply string

	switch turn.Command {
	case "":
		reply = s.conversationSvc.Respond(ctx, turn.ChatID, turn.Text)
	case "start":
		reply = "Hello, I am SmallTalk Bot, how can I help you?"
	case "help":
		reply = "I can chat, tell jokes, share quotes and report the weather. " +
			"Try /joke, /quote [category] or /weather [city]."
	case "joke":
		reply = s.conversationSvc.JokeCommand(ctx)
	case "quote":
		reply = s.conversationSvc.QuoteCommand(ctx, turn.Text)
	case "weather":
		reply = s.conversationSvc.WeatherCommand(ctx, turn.ChatID, turn.Text)
	default:
		return
	}

	if err := s.telegramClient.SendMessage(turn.ChatID, reply); err != nil {
		slog.Error("Failed to send reply",
			"chat_id", turn.ChatID,
			"error", err,
		)

		return
	}

	slog.Info("Processed message",
		"chat_id", turn.ChatID,
		"command", turn.Command,
		"duration", time.Since(start),
	)
}
