package nlp

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

// Token is one word of normalized input with its Penn Treebank POS tag.
type Token struct {
	Text string
	Tag  string
}

// Normalize lowercases and trims the input, then tokenizes it with POS tags.
// Empty or punctuation-only input yields an empty or punctuation-only
// sequence, never an error.
func Normalize(text string) []Token {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil
	}

	docTokens := doc.Tokens()
	result := make([]Token, 0, len(docTokens))

	for _, tok := range docTokens {
		result = append(result, Token{Text: tok.Text, Tag: tok.Tag})
	}

	return result
}
