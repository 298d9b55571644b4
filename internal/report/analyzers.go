//go:generate go run go.uber.org/mock/mockgen -source=analyzers.go -destination=../mocks/mock_analyzers.go -package=mocks
package report

import "github.com/spacesedan/sentiscope/internal/models"

type LanguageDetector interface {
	Detect(text string) (string, error)
}

type PolarityScorer interface {
	Polarity(text string) models.PolarityScores
}

// CompoundScorer returns VADER-style scores keyed by name; only "compound" is read.
type CompoundScorer interface {
	PolarityScores(text string) map[string]float64
}

type EmotionScorer interface {
	RawEmotionScores(text string) map[string]int
}

type KeywordRanker interface {
	RankedPhrases(text string) []string
}

type ProfanityFilter interface {
	ContainsProfanity(text string) bool
	Censor(text string) string
}

type Analyzers struct {
	Language  LanguageDetector
	Polarity  PolarityScorer
	Compound  CompoundScorer
	Emotions  EmotionScorer
	Keywords  KeywordRanker
	Profanity ProfanityFilter
}
