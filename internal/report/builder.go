package report

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"github.com/spacesedan/sentiscope/internal/models"
)

const MAX_KEYWORDS = 8

var ErrMissingAnalyzer = errors.New("missing analyzer")

// Builder turns raw text into an AnalysisReport. It only holds references to
// analyzers built at startup and is safe for concurrent use.
type Builder struct {
	analyzers Analyzers
}

func NewBuilder(analyzers Analyzers) (*Builder, error) {
	missing := lo.Compact([]string{
		lo.Ternary(analyzers.Language == nil, "language", ""),
		lo.Ternary(analyzers.Polarity == nil, "polarity", ""),
		lo.Ternary(analyzers.Compound == nil, "compound", ""),
		lo.Ternary(analyzers.Emotions == nil, "emotions", ""),
		lo.Ternary(analyzers.Keywords == nil, "keywords", ""),
		lo.Ternary(analyzers.Profanity == nil, "profanity", ""),
	})
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingAnalyzer, strings.Join(missing, ", "))
	}

	return &Builder{analyzers: analyzers}, nil
}

// Build returns the empty report, without calling any analyzer, when the
// trimmed text is empty.
func (b *Builder) Build(raw string) (models.AnalysisReport, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return models.AnalysisReport{}, nil
	}

	lang, err := b.analyzers.Language.Detect(text)
	if err != nil {
		slog.Debug("[ReportBuilder] Language detection failed, using sentinel",
			slog.String("error", err.Error()))
		lang = models.UNKNOWN_LANGUAGE
	}

	polarity := b.analyzers.Polarity.Polarity(text)
	tbPolarity := Round4(polarity.Polarity)
	tbSubjectivity := Round4(polarity.Subjectivity)

	vaderCompound := Round4(b.analyzers.Compound.PolarityScores(text)["compound"])

	emotions := NormalizeEmotions(b.analyzers.Emotions.RawEmotionScores(text))

	keywords := b.analyzers.Keywords.RankedPhrases(text)
	if len(keywords) > MAX_KEYWORDS {
		keywords = keywords[:MAX_KEYWORDS]
	}
	keywords = append([]string{}, keywords...)

	containsProfanity := b.analyzers.Profanity.ContainsProfanity(text)
	censored := text
	if containsProfanity {
		censored = b.analyzers.Profanity.Censor(text)
	}

	return models.AnalysisReport{
		Text:                 text,
		Language:             lang,
		TextBlobPolarity:     tbPolarity,
		TextBlobSubjectivity: tbSubjectivity,
		VaderCompound:        vaderCompound,
		NRCEmotions:          emotions,
		Keywords:             keywords,
		ContainsProfanity:    containsProfanity,
		CensoredText:         censored,
		FinalLabel:           DeriveLabel(vaderCompound, tbPolarity),
	}, nil
}
