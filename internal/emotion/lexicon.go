package emotion

import (
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/lo"
)

//go:embed data/emotion_lexicon.tsv
var emotionLexiconTSV string

var ErrUnknownCategory = errors.New("unknown emotion category")

// Categories are the NRC affect categories: eight emotions plus the two sentiments.
var Categories = []string{
	"anger",
	"anticipation",
	"disgust",
	"fear",
	"joy",
	"negative",
	"positive",
	"sadness",
	"surprise",
	"trust",
}

var wordPattern = regexp.MustCompile(`\p{L}+(?:'\p{L}+)*`)

// LexiconScorer counts, per affect category, how many words of the text carry it.
type LexiconScorer struct {
	lexicon map[string][]string
}

func NewLexiconScorer() (*LexiconScorer, error) {
	lexicon, err := parseEmotionLexicon(emotionLexiconTSV)
	if err != nil {
		return nil, err
	}
	return &LexiconScorer{lexicon: lexicon}, nil
}

// RawEmotionScores only contains categories that were hit at least once.
func (s *LexiconScorer) RawEmotionScores(text string) map[string]int {
	scores := make(map[string]int)
	for _, word := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		for _, category := range s.lexicon[word] {
			scores[category]++
		}
	}
	return scores
}

func parseEmotionLexicon(raw string) (map[string][]string, error) {
	lexicon := make(map[string][]string, 256)

	for n, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}

		word, cats, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("emotion lexicon line %d: missing categories", n+1)
		}

		categories := lo.Uniq(lo.Map(strings.Split(cats, ","), func(c string, _ int) string {
			return strings.TrimSpace(c)
		}))
		for _, c := range categories {
			if !lo.Contains(Categories, c) {
				return nil, fmt.Errorf("emotion lexicon line %d: %w %q", n+1, ErrUnknownCategory, c)
			}
		}

		lexicon[strings.ToLower(strings.TrimSpace(word))] = categories
	}

	return lexicon, nil
}
