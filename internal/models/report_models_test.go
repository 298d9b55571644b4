package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalysisReport_IsEmpty(t *testing.T) {
	req := require.New(t)

	req.True(AnalysisReport{}.IsEmpty())
	req.False(AnalysisReport{Text: "hello"}.IsEmpty())
}

func TestAnalysisReport_ProjectedEmotions(t *testing.T) {
	req := require.New(t)
	report := AnalysisReport{
		Text: "x",
		NRCEmotions: map[string]float64{
			"joy":      0.5,
			"trust":    0.25,
			"positive": 0.25,
		},
	}

	shares := report.ProjectedEmotions()

	req.Len(shares, len(EmotionCategories))
	for i, share := range shares {
		req.Equal(EmotionCategories[i], share.Name)
	}
	req.Equal(0.5, shares[4].Weight)
	req.Equal(0.25, shares[7].Weight)
	req.Zero(shares[0].Weight)

	var total float64
	for _, share := range shares {
		total += share.Weight
	}
	req.InDelta(0.75, total, 1e-9, "positive/negative are dropped by the projection")
}

func TestAnalysisReport_JSONFieldNames(t *testing.T) {
	req := require.New(t)
	raw, err := json.Marshal(AnalysisReport{Text: "hi", FinalLabel: LabelNeutralMixed})
	req.NoError(err)

	var fields map[string]any
	req.NoError(json.Unmarshal(raw, &fields))
	for _, key := range []string{"text", "language", "textblob_polarity", "textblob_subjectivity",
		"vader_compound", "nrc_emotions", "keywords", "contains_profanity", "censored_text", "final_label"} {
		req.Contains(fields, key)
	}
	req.Equal("Neutral/Mixed", fields["final_label"])
}
