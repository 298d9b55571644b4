package report

import (
	"math/rand"
	"testing"

	"github.com/samber/lo"
	"github.com/spacesedan/sentiscope/internal/models"
	"github.com/stretchr/testify/require"
)

func TestDeriveLabel(t *testing.T) {
	tests := []struct {
		name     string
		compound float64
		polarity float64
		expected models.Label
	}{
		{"compound at strong positive threshold", 0.5, 0, models.LabelStrongPositive},
		{"polarity at strong positive threshold", 0, 0.5, models.LabelStrongPositive},
		{"positive wins over strong negative", 0.6, -0.9, models.LabelStrongPositive},
		{"compound just above positive threshold", 0.2001, 0, models.LabelPositive},
		{"compound at positive threshold is not positive", 0.2, 0, models.LabelNeutralMixed},
		{"polarity just above positive threshold", 0, 0.21, models.LabelPositive},
		{"positive checked before negative", 0.3, -0.6, models.LabelPositive},
		{"compound at -0.5 is only negative", -0.5, 0, models.LabelNegative},
		{"polarity at -0.5 is strong negative", 0, -0.5, models.LabelStrongNegative},
		{"compound below -0.5", -0.5001, 0, models.LabelStrongNegative},
		{"compound at -0.2 is neutral", -0.2, 0, models.LabelNeutralMixed},
		{"polarity at -0.2 is neutral", 0, -0.2, models.LabelNeutralMixed},
		{"polarity just below -0.2", 0, -0.2001, models.LabelNegative},
		{"both zero", 0, 0, models.LabelNeutralMixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, DeriveLabel(tt.compound, tt.polarity))
		})
	}
}

func TestDeriveLabel_Totality(t *testing.T) {
	req := require.New(t)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 10_000; i++ {
		compound := Round4(rng.Float64()*2 - 1)
		polarity := Round4(rng.Float64()*2 - 1)
		req.True(lo.Contains(models.Labels, DeriveLabel(compound, polarity)))
	}
}
