package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spacesedan/sentiscope/internal/models"
	"github.com/stretchr/testify/require"
)

func TestRenderReport(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer

	renderReport(&buf, models.AnalysisReport{
		Text:              "damn, I love this",
		Language:          "en",
		TextBlobPolarity:  0.5,
		VaderCompound:     0.6369,
		NRCEmotions:       map[string]float64{"joy": 1},
		Keywords:          []string{"love", "damn"},
		ContainsProfanity: true,
		CensoredText:      "****, I love this",
		FinalLabel:        models.LabelStrongPositive,
	}, false)

	out := buf.String()
	req.Contains(out, "Strong Positive")
	req.Contains(out, "0.6369")
	req.Contains(out, "****, I love this")
	req.Contains(out, "love, damn")
	req.Contains(out, "anticipation")
	req.Contains(out, "1.0000")
	req.NotContains(out, "\x1b[")
}

func TestRenderReport_Empty(t *testing.T) {
	var buf bytes.Buffer

	renderReport(&buf, models.AnalysisReport{}, true)

	require.Equal(t, EMPTY_MESSAGE+"\n", buf.String())
}

func TestReadText(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{"arguments joined", []string{"I", "love", "this"}, "ignored", "I love this"},
		{"stdin fallback", nil, "from stdin\n", "from stdin\n"},
		{"nothing", nil, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readText(tt.args, strings.NewReader(tt.stdin))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestLabelStyle_CoversEveryLabel(t *testing.T) {
	for _, label := range models.Labels {
		require.NotEmpty(t, labelStyle(label).Render(string(label)))
	}
}
