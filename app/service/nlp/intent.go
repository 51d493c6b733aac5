package nlp

import (
	"strings"

	"github.com/elliotchance/pie/v2"
)

// Intent is the discrete purpose label assigned to one user message.
type Intent string

const (
	IntentGreeting Intent = "greeting"
	IntentFarewell Intent = "farewell"
	IntentWeather  Intent = "weather"
	IntentJoke     Intent = "joke"
	IntentQuote    Intent = "quote"
	IntentSad      Intent = "sad"
	IntentYes      Intent = "yes"
	IntentNo       Intent = "no"
	IntentQuestion Intent = "question"
	IntentUnknown  Intent = "unknown"
)

// keywordRule matches when any keyword equals a token, or any multi-word
// phrase occurs as a substring of the normalized text.
type keywordRule struct {
	intent   Intent
	keywords []string
	phrases  []string
}

// Rule order is the tie-break policy: first match wins, so a message mixing
// keyword sets always resolves to the earliest-listed intent.
var keywordRules = []keywordRule{
	{IntentGreeting, []string{"hello", "hi", "hey"}, nil},
	{IntentFarewell, []string{"goodbye", "bye"}, []string{"see you"}},
	{IntentWeather, []string{"weather", "temperature", "forecast"}, nil},
	{IntentJoke, []string{"joke", "funny", "humor"}, nil},
	{IntentQuote, []string{"quote", "inspire", "motivate"}, nil},
	{IntentSad, []string{"sad", "down", "unhappy"}, nil},
	{IntentYes, []string{"yes", "yeah", "sure"}, nil},
	{IntentNo, []string{"no", "nah", "nope"}, nil},
}

var whWords = []string{"what", "who", "where", "when", "why", "how"}

// whTags are the Penn Treebank wh-family tags: pronoun, possessive pronoun,
// determiner and adverb.
var whTags = []string{"WP", "WP$", "WDT", "WRB"}

// RecognizeIntent maps a normalized token sequence to exactly one intent.
// Keyword rules run first in fixed order; a POS-based question check is the
// fallback before IntentUnknown.
func RecognizeIntent(tokens []Token) Intent {
	words := pie.Map(tokens, func(t Token) string { return t.Text })
	text := strings.Join(words, " ")

	for _, rule := range keywordRules {
		matched := pie.Any(words, func(w string) bool {
			return pie.Contains(rule.keywords, w)
		})

		if !matched {
			matched = pie.Any(rule.phrases, func(p string) bool {
				return strings.Contains(text, p)
			})
		}

		if matched {
			return rule.intent
		}
	}

	for _, tok := range tokens {
		if pie.Contains(whTags, tok.Tag) {
			return IntentQuestion
		}

		if tok.Tag == "PRP" && pie.Contains(whWords, tok.Text) {
			return IntentQuestion
		}
	}

	return IntentUnknown
}
