package sentiment

import (
	"html"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]*>`)
)

// VaderScorer wraps a single govader analyzer; the lexicon is loaded once.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderScorer) PolarityScores(text string) map[string]float64 {
	sentiment := v.analyzer.PolarityScores(text)

	return map[string]float64{
		"neg":      sentiment.Negative,
		"neu":      sentiment.Neutral,
		"pos":      sentiment.Positive,
		"compound": sentiment.Compound,
	}
}

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text
	input = urlPattern.ReplaceAllString(input, "")

	return input
}

// ConvertMarkdownToText renders markdown and drops the markup, links and URLs,
// leaving single-spaced plain text.
func ConvertMarkdownToText(input string) string {
	input = RemoveLinks(input)
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := tagPattern.ReplaceAllString(string(output), " ")
	plainText = strings.Join(strings.Fields(plainText), " ")

	return html.UnescapeString(plainText)
}
