package conversation

import (
	"context"
	"errors"
	"testing"

	"smalltalk/app/service/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWeather struct {
	report   string
	err      error
	lastCity string
	calls    int
}

func (f *fakeWeather) GetWeather(_ context.Context, city string) (string, error) {
	f.lastCity = city
	f.calls++

	return f.report, f.err
}

type fakeJokes struct {
	joke  string
	err   error
	calls int
}

func (f *fakeJokes) GetJoke(_ context.Context) (string, error) {
	f.calls++

	return f.joke, f.err
}

type fakeQuotes struct {
	quote        string
	err          error
	lastCategory string
	randomCalls  int
}

func (f *fakeQuotes) Random(_ context.Context) (string, error) {
	f.randomCalls++

	return f.quote, f.err
}

func (f *fakeQuotes) ByCategory(_ context.Context, category string) (string, error) {
	f.lastCategory = category

	return f.quote, f.err
}

type fixture struct {
	svc     *Service
	store   *memory.Service
	weather *fakeWeather
	jokes   *fakeJokes
	quotes  *fakeQuotes
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store, err := memory.New(nil)
	require.NoError(t, err)

	w := &fakeWeather{report: "Sunny, 21°C"}
	j := &fakeJokes{joke: "Why did the scarecrow win an award? He was outstanding in his field."}
	q := &fakeQuotes{quote: "\"Be yourself\"\n— Oscar Wilde"}

	return &fixture{
		svc:     newService(store, w, j, q),
		store:   store,
		weather: w,
		jokes:   j,
		quotes:  q,
	}
}

const chatID = int64(100)

func TestWeatherIntentAsksForCity(t *testing.T) {
	f := newFixture(t)

	reply := f.svc.Respond(context.Background(), chatID, "weather")

	assert.Equal(t, replyWeatherPrompt, reply)
	assert.Equal(t, memory.SlotAwaitingCity, f.store.Get(chatID).Pending)
	assert.Zero(t, f.weather.calls, "provider must not be called before a city is known")
}

func TestAwaitingCityResolvesWithWholeMessage(t *testing.T) {
	f := newFixture(t)

	f.svc.Respond(context.Background(), chatID, "weather")
	reply := f.svc.Respond(context.Background(), chatID, "  Denver ")

	assert.Equal(t, "Sunny, 21°C", reply)
	assert.Equal(t, "Denver", f.weather.lastCity)
	assert.Equal(t, memory.SlotNone, f.store.Get(chatID).Pending)
}

func TestSadMessageOffersJoke(t *testing.T) {
	f := newFixture(t)

	reply := f.svc.Respond(context.Background(), chatID, "I feel sad today")

	assert.Equal(t, replySad, reply)
	assert.Equal(t, memory.SlotAwaitingJokeConfirmation, f.store.Get(chatID).Pending)
}

func TestJokeConfirmationYes(t *testing.T) {
	f := newFixture(t)

	f.svc.Respond(context.Background(), chatID, "I feel sad today")
	reply := f.svc.Respond(context.Background(), chatID, "yes")

	assert.Equal(t, f.jokes.joke, reply)
	assert.Equal(t, memory.SlotNone, f.store.Get(chatID).Pending)
}

func TestJokeConfirmationNo(t *testing.T) {
	f := newFixture(t)

	f.svc.Respond(context.Background(), chatID, "I feel sad today")
	reply := f.svc.Respond(context.Background(), chatID, "nah")

	assert.Equal(t, replyJokeDeclined, reply)
	assert.Equal(t, memory.SlotNone, f.store.Get(chatID).Pending)
	assert.Zero(t, f.jokes.calls)
}

func TestJokeConfirmationReprompt(t *testing.T) {
	f := newFixture(t)

	f.svc.Respond(context.Background(), chatID, "I feel sad today")
	reply := f.svc.Respond(context.Background(), chatID, "maybe")

	assert.Equal(t, replyJokeReprompt, reply)
	assert.Equal(t, memory.SlotAwaitingJokeConfirmation, f.store.Get(chatID).Pending,
		"slot must stay pending until a yes or no")
}

func TestProviderFailureStillClearsSlot(t *testing.T) {
	f := newFixture(t)
	f.jokes.err = errors.New("connection refused")

	f.svc.Respond(context.Background(), chatID, "I feel sad today")
	reply := f.svc.Respond(context.Background(), chatID, "yes")

	assert.Equal(t, apologyJoke, reply)
	assert.Equal(t, memory.SlotNone, f.store.Get(chatID).Pending)
}

func TestWeatherFailureIsUserFacing(t *testing.T) {
	f := newFixture(t)
	f.weather.err = errors.New("timeout")

	f.svc.Respond(context.Background(), chatID, "weather")
	reply := f.svc.Respond(context.Background(), chatID, "Denver")

	assert.Equal(t, apologyWeather, reply)
	assert.Equal(t, memory.SlotNone, f.store.Get(chatID).Pending)
}

func TestPositiveOverlayOnGreeting(t *testing.T) {
	f := newFixture(t)

	reply := f.svc.Respond(context.Background(), chatID, "hello, I love this wonderful day!")

	assert.Equal(t, replyGreeting+suffixPositive, reply)
}

func TestNoOverlayOnJoke(t *testing.T) {
	f := newFixture(t)

	reply := f.svc.Respond(context.Background(), chatID, "tell me an awesome joke, I love jokes")

	assert.Equal(t, f.jokes.joke, reply)
}

func TestEmptyInputFallsBackToUnknown(t *testing.T) {
	f := newFixture(t)

	reply := f.svc.Respond(context.Background(), chatID, "   ")

	assert.Equal(t, replyUnknown, reply)
	assert.Equal(t, memory.SlotNone, f.store.Get(chatID).Pending)
}

func TestQuoteIntentFetchesEagerly(t *testing.T) {
	f := newFixture(t)

	reply := f.svc.Respond(context.Background(), chatID, "inspire me")

	assert.Equal(t, f.quotes.quote, reply)
	assert.Equal(t, 1, f.quotes.randomCalls)
}

func TestWeatherCommandWithoutCityAsksForOne(t *testing.T) {
	f := newFixture(t)

	reply := f.svc.WeatherCommand(context.Background(), chatID, "  ")

	assert.Equal(t, replyWeatherPrompt, reply)
	assert.Equal(t, memory.SlotAwaitingCity, f.store.Get(chatID).Pending)
}

func TestWeatherCommandWithCity(t *testing.T) {
	f := newFixture(t)

	reply := f.svc.WeatherCommand(context.Background(), chatID, "Denver")

	assert.Equal(t, "Sunny, 21°C", reply)
	assert.Equal(t, memory.SlotNone, f.store.Get(chatID).Pending)
}

func TestQuoteCommandRoutesCategory(t *testing.T) {
	f := newFixture(t)

	f.svc.QuoteCommand(context.Background(), "love")
	assert.Equal(t, "love", f.quotes.lastCategory)

	f.svc.QuoteCommand(context.Background(), "")
	assert.Equal(t, 1, f.quotes.randomCalls)
}
