package nlp

import (
	"github.com/jonreiter/govader"
)

// Sentiment is the 3-way polarity category of one user message.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

const sentimentThreshold = 0.1

// Analyzer wraps the VADER lexicon model. The model itself is the swappable
// part; the fixed score-to-category thresholds are the contract.
type Analyzer struct {
	vader *govader.SentimentIntensityAnalyzer
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		vader: govader.NewSentimentIntensityAnalyzer(),
	}
}

// AnalyzeSentiment maps text to a category via the compound polarity score
// in [-1, 1]. Scores of exactly ±0.1 are Neutral.
func (a *Analyzer) AnalyzeSentiment(text string) Sentiment {
	return categorize(a.vader.PolarityScores(text).Compound)
}

func categorize(score float64) Sentiment {
	switch {
	case score > sentimentThreshold:
		return SentimentPositive
	case score < -sentimentThreshold:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}
