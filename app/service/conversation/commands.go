package conversation

import (
	"context"
	"log/slog"
	"strings"

	"smalltalk/app/service/memory"
)

// Slash commands from the transport route through the same providers and
// state machine as free text.

func (s *Service) JokeCommand(ctx context.Context) string {
	return s.fetchJoke(ctx)
}

func (s *Service) QuoteCommand(ctx context.Context, category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return s.fetchQuote(ctx)
	}

	quote, err := s.quoteProvider.ByCategory(ctx, category)
	if err != nil {
		slog.Error("Failed to fetch quote", "category", category, "error", err)
		return apologyQuote
	}

	return quote
}

// WeatherCommand reports the weather for the given city; with no city it
// asks for one and resolves the answer on the next message.
func (s *Service) WeatherCommand(ctx context.Context, chatID int64, city string) string {
	city = strings.TrimSpace(city)
	if city == "" {
		s.memorySvc.SetPending(chatID, memory.SlotAwaitingCity)
		return replyWeatherPrompt
	}

	return s.fetchWeather(ctx, city)
}
