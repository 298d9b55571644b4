package report

import "github.com/spacesedan/sentiscope/internal/models"

// DeriveLabel applies the decision table top to bottom; the first match wins.
// The operators differ between the two scores on purpose and must stay as is.
func DeriveLabel(vaderCompound, tbPolarity float64) models.Label {
	switch {
	case vaderCompound >= 0.5 || tbPolarity >= 0.5:
		return models.LabelStrongPositive
	case vaderCompound > 0.2 || tbPolarity > 0.2:
		return models.LabelPositive
	case vaderCompound < -0.5 || tbPolarity <= -0.5:
		return models.LabelStrongNegative
	case vaderCompound < -0.2 || tbPolarity < -0.2:
		return models.LabelNegative
	default:
		return models.LabelNeutralMixed
	}
}
