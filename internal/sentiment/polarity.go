package sentiment

import (
	_ "embed"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/spacesedan/sentiscope/internal/models"
)

const (
	NEGATION_WINDOW     = 3
	NEGATION_FACTOR     = -0.5
	EXCLAMATION_FACTOR  = 1.25
	lexiconColumnsCount = 4
)

//go:embed data/polarity_lexicon.tsv
var polarityLexiconTSV string

var polarityTokenPattern = regexp.MustCompile(`\p{L}+(?:'\p{L}+)*|!`)

var negations = map[string]bool{
	"not":     true,
	"no":      true,
	"never":   true,
	"nor":     true,
	"neither": true,
	"nothing": true,
	"nobody":  true,
	"none":    true,
	"cannot":  true,
}

type lexiconEntry struct {
	polarity     float64
	subjectivity float64
	intensity    float64
}

// A zero-polarity entry with a non-unit intensity only scales the next word.
func (e lexiconEntry) isModifier() bool {
	return e.polarity == 0 && e.intensity != 1
}

type assessment struct {
	polarity     float64
	subjectivity float64
	position     int
}

// PolarityAnalyzer averages the polarity and subjectivity of every lexicon
// word found in the text, adjusting for modifiers, negation and exclamation.
type PolarityAnalyzer struct {
	lexicon map[string]lexiconEntry
}

func NewPolarityAnalyzer() (*PolarityAnalyzer, error) {
	lexicon, err := parsePolarityLexicon(polarityLexiconTSV)
	if err != nil {
		return nil, err
	}
	return &PolarityAnalyzer{lexicon: lexicon}, nil
}

func (a *PolarityAnalyzer) Polarity(text string) models.PolarityScores {
	tokens := polarityTokenPattern.FindAllString(strings.ToLower(text), -1)

	var assessments []assessment
	modifier := 1.0
	negatedAt := -1

	for i, tok := range tokens {
		if tok == "!" {
			if n := len(assessments); n > 0 && assessments[n-1].position == i-1 {
				assessments[n-1].polarity = clamp(assessments[n-1].polarity*EXCLAMATION_FACTOR, -1, 1)
			}
			continue
		}

		if isNegation(tok) {
			negatedAt = i
			modifier = 1
			continue
		}

		entry, ok := a.lexicon[tok]
		if !ok {
			modifier = 1
			continue
		}
		if entry.isModifier() {
			modifier *= entry.intensity
			continue
		}

		polarity := entry.polarity * modifier
		subjectivity := math.Min(entry.subjectivity*modifier, 1)
		if negatedAt >= 0 && i-negatedAt <= NEGATION_WINDOW {
			polarity *= NEGATION_FACTOR
			negatedAt = -1
		}

		assessments = append(assessments, assessment{
			polarity:     clamp(polarity, -1, 1),
			subjectivity: subjectivity,
			position:     i,
		})
		modifier = 1
	}

	if len(assessments) == 0 {
		return models.PolarityScores{}
	}

	var polaritySum, subjectivitySum float64
	for _, as := range assessments {
		polaritySum += as.polarity
		subjectivitySum += as.subjectivity
	}
	n := float64(len(assessments))

	return models.PolarityScores{
		Polarity:     clamp(polaritySum/n, -1, 1),
		Subjectivity: clamp(subjectivitySum/n, 0, 1),
	}
}

func isNegation(tok string) bool {
	return negations[tok] || strings.HasSuffix(tok, "n't")
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// parsePolarityLexicon reads "word<TAB>polarity<TAB>subjectivity<TAB>intensity" lines.
func parsePolarityLexicon(raw string) (map[string]lexiconEntry, error) {
	lexicon := make(map[string]lexiconEntry, 256)

	for n, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}

		parts := strings.Split(line, "\t")
		if len(parts) != lexiconColumnsCount {
			return nil, fmt.Errorf("polarity lexicon line %d: expected %d columns, got %d", n+1, lexiconColumnsCount, len(parts))
		}

		values := make([]float64, 0, 3)
		for _, col := range parts[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(col), 64)
			if err != nil {
				return nil, fmt.Errorf("polarity lexicon line %d: %w", n+1, err)
			}
			values = append(values, v)
		}

		lexicon[strings.ToLower(strings.TrimSpace(parts[0]))] = lexiconEntry{
			polarity:     values[0],
			subjectivity: values[1],
			intensity:    values[2],
		}
	}

	return lexicon, nil
}
