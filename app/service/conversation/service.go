package conversation

import (
	"context"
	"log/slog"
	"strings"

	"smalltalk/app/client/jokes"
	"smalltalk/app/client/quotes"
	"smalltalk/app/client/weather"
	"smalltalk/app/service/memory"
	"smalltalk/app/service/nlp"

	"github.com/samber/do"
)

// Service composes replies: it classifies one message, resolves or sets the
// conversation's pending slot and renders the final string. Every path
// returns a user-facing reply.
type Service struct {
	memorySvc *memory.Service
	analyzer  *nlp.Analyzer

	weatherProvider WeatherProvider
	jokeProvider    JokeProvider
	quoteProvider   QuoteProvider
}

func New(di *do.Injector) (*Service, error) {
	return newService(
		do.MustInvoke[*memory.Service](di),
		do.MustInvoke[*weather.Client](di),
		do.MustInvoke[*jokes.Client](di),
		do.MustInvoke[*quotes.Client](di),
	), nil
}

func newService(memorySvc *memory.Service, w WeatherProvider, j JokeProvider, q QuoteProvider) *Service {
	return &Service{
		memorySvc:       memorySvc,
		analyzer:        nlp.NewAnalyzer(),
		weatherProvider: w,
		jokeProvider:    j,
		quoteProvider:   q,
	}
}

// Respond runs one turn of the state machine. The caller must serialize
// turns per chat id (queue service); that discipline is what keeps
// pending-slot updates race-free.
func (s *Service) Respond(ctx context.Context, chatID int64, text string) string {
	sentiment := s.analyzer.AnalyzeSentiment(text)
	intent := nlp.RecognizeIntent(nlp.Normalize(text))

	mem := s.memorySvc.Get(chatID)

	// A pending follow-up takes priority over fresh intent classification.
	if reply, resolved := s.resolvePending(ctx, chatID, mem.Pending, intent, text); resolved {
		return reply
	}

	reply := s.baseReply(ctx, intent)

	switch {
	case intent == nlp.IntentWeather:
		s.memorySvc.SetPending(chatID, memory.SlotAwaitingCity)
	case intent == nlp.IntentSad && sentiment == nlp.SentimentNegative:
		s.memorySvc.SetPending(chatID, memory.SlotAwaitingJokeConfirmation)
	}

	return reply + overlay(intent, sentiment)
}

func (s *Service) resolvePending(
	ctx context.Context,
	chatID int64,
	slot memory.PendingSlot,
	intent nlp.Intent,
	text string,
) (string, bool) {
	switch slot {
	case memory.SlotAwaitingCity:
		// The whole trimmed message is the city name.
		s.memorySvc.ClearPending(chatID)
		return s.fetchWeather(ctx, strings.TrimSpace(text)), true

	case memory.SlotAwaitingJokeConfirmation:
		switch intent {
		case nlp.IntentYes:
			s.memorySvc.ClearPending(chatID)
			return s.fetchJoke(ctx), true
		case nlp.IntentNo:
			s.memorySvc.ClearPending(chatID)
			return replyJokeDeclined, true
		default:
			return replyJokeReprompt, true
		}
	}

	return "", false
}

// baseReply maps a fresh intent to its base reply. Joke and Quote call their
// provider lazily, only once the intent is actually chosen.
func (s *Service) baseReply(ctx context.Context, intent nlp.Intent) string {
	switch intent {
	case nlp.IntentGreeting:
		return replyGreeting
	case nlp.IntentFarewell:
		return replyFarewell
	case nlp.IntentWeather:
		return replyWeatherPrompt
	case nlp.IntentJoke:
		return s.fetchJoke(ctx)
	case nlp.IntentQuote:
		return s.fetchQuote(ctx)
	case nlp.IntentSad:
		return replySad
	case nlp.IntentYes:
		return replyYes
	case nlp.IntentNo:
		return replyNo
	case nlp.IntentQuestion:
		return replyQuestion
	default:
		return replyUnknown
	}
}

// overlay appends a sentiment suffix to base replies that did not already
// address the user's mood or fetch external content.
func overlay(intent nlp.Intent, sentiment nlp.Sentiment) string {
	switch sentiment {
	case nlp.SentimentPositive:
		switch intent {
		case nlp.IntentJoke, nlp.IntentQuote, nlp.IntentWeather:
			return ""
		default:
			return suffixPositive
		}
	case nlp.SentimentNegative:
		switch intent {
		case nlp.IntentSad, nlp.IntentJoke, nlp.IntentQuote, nlp.IntentWeather:
			return ""
		default:
			return suffixNegative
		}
	default:
		return ""
	}
}

func (s *Service) fetchWeather(ctx context.Context, city string) string {
	report, err := s.weatherProvider.GetWeather(ctx, city)
	if err != nil {
		slog.Error("Failed to fetch weather", "city", city, "error", err)
		return apologyWeather
	}

	return report
}

func (s *Service) fetchJoke(ctx context.Context) string {
	joke, err := s.jokeProvider.GetJoke(ctx)
	if err != nil {
		slog.Error("Failed to fetch joke", "error", err)
		return apologyJoke
	}

	return joke
}

func (s *Service) fetchQuote(ctx context.Context) string {
	quote, err := s.quoteProvider.Random(ctx)
	if err != nil {
		slog.Error("Failed to fetch quote", "error", err)
		return apologyQuote
	}

	return quote
}
