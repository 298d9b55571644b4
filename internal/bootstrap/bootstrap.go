// Package bootstrap builds the long-lived analyzers once at startup and hands
// out a ready ReportBuilder.
package bootstrap

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/spacesedan/sentiscope/config"
	"github.com/spacesedan/sentiscope/internal/emotion"
	"github.com/spacesedan/sentiscope/internal/keywords"
	"github.com/spacesedan/sentiscope/internal/language"
	"github.com/spacesedan/sentiscope/internal/models"
	"github.com/spacesedan/sentiscope/internal/monitoring"
	"github.com/spacesedan/sentiscope/internal/profanity"
	"github.com/spacesedan/sentiscope/internal/report"
	"github.com/spacesedan/sentiscope/internal/sentiment"
)

const PROBE_TEXT = "The service is up and the analyzers look good."

func NewAnalyzers(cfg config.Config) (report.Analyzers, error) {
	start := time.Now()

	polarity, err := sentiment.NewPolarityAnalyzer()
	if err != nil {
		return report.Analyzers{}, fmt.Errorf("failed to load polarity lexicon: %w", err)
	}

	emotions, err := emotion.NewLexiconScorer()
	if err != nil {
		return report.Analyzers{}, fmt.Errorf("failed to load emotion lexicon: %w", err)
	}

	ranker, err := keywords.NewRanker()
	if err != nil {
		return report.Analyzers{}, fmt.Errorf("failed to load sentence tokenizer: %w", err)
	}

	filter, err := profanity.NewDefaultFilter(cfg.CensorRune(), cfg.ProfanityMaskLength)
	if err != nil {
		return report.Analyzers{}, fmt.Errorf("failed to build profanity filter: %w", err)
	}

	slog.Info("[Bootstrap] Analyzers loaded", slog.Duration("elapsed", time.Since(start)))

	return report.Analyzers{
		Language:  language.NewDetector(cfg.LanguageMinConfidence),
		Polarity:  polarity,
		Compound:  sentiment.NewVaderScorer(),
		Emotions:  emotions,
		Keywords:  ranker,
		Profanity: filter,
	}, nil
}

func NewReportBuilder(cfg config.Config) (*report.Builder, error) {
	analyzers, err := NewAnalyzers(cfg)
	if err != nil {
		return nil, err
	}
	return report.NewBuilder(analyzers)
}

// ReportBuilderProbe passes when a canned sentence yields a labelled report.
func ReportBuilderProbe(b *report.Builder) monitoring.Probe {
	return func() bool {
		r, err := b.Build(PROBE_TEXT)
		if err != nil {
			slog.Warn("[Bootstrap] Probe report failed", slog.String("error", err.Error()))
			return false
		}
		return !r.IsEmpty() && slices.Contains(models.Labels, r.FinalLabel)
	}
}
