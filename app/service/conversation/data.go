package conversation

import "context"

// Providers supply external content. Any call may fail; the composer renders
// every failure as a user-facing string, never a raw error.
type WeatherProvider interface {
	GetWeather(ctx context.Context, city string) (string, error)
}

type JokeProvider interface {
	GetJoke(ctx context.Context) (string, error)
}

type QuoteProvider interface {
	Random(ctx context.Context) (string, error)
	ByCategory(ctx context.Context, category string) (string, error)
}

const (
	replyGreeting = "Hello, how are you?"
	replyFarewell = "Goodbye, have a great day!"
	replySad      = "I'm sorry to hear that you're feeling down. Want a joke to cheer up?"
	replyYes      = "Great! What can I do for you?"
	replyNo       = "Alright. What else can I do for you?"
	replyQuestion = "I am here to help you with anything you need, just ask me!"
	replyUnknown  = "I'm not sure what you mean. How can I assist?"

	replyWeatherPrompt = "Which city would you like the weather for?"
	replyJokeDeclined  = "Okay, let me know how I can help!"
	replyJokeReprompt  = "Please say 'yes' or 'no'. Want a joke to cheer up?"

	suffixPositive = " Glad to hear you're in a good mood!"
	suffixNegative = " You seem a bit down. Want a joke to cheer up?"

	apologyJoke    = "Sorry, I couldn't fetch a joke right now."
	apologyQuote   = "Sorry, I couldn't fetch a quote right now."
	apologyWeather = "Sorry, I couldn't fetch the weather right now."
)
