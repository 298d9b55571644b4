package language

import (
	"errors"
	"fmt"

	"github.com/abadojack/whatlanggo"
)

var (
	ErrLanguageUndetermined = errors.New("language could not be determined")
	ErrLowConfidence        = errors.New("language detection confidence too low")
)

// Detector returns ISO 639-1 codes, or ISO 639-3 for languages without one.
type Detector struct {
	minConfidence float64
}

func NewDetector(minConfidence float64) *Detector {
	return &Detector{minConfidence: minConfidence}
}

func (d *Detector) Detect(text string) (string, error) {
	info := whatlanggo.Detect(text)
	if info.Script == nil || info.Lang < 0 {
		return "", ErrLanguageUndetermined
	}

	if info.Confidence < d.minConfidence {
		return "", fmt.Errorf("%w: %.2f < %.2f", ErrLowConfidence, info.Confidence, d.minConfidence)
	}

	code := info.Lang.Iso6391()
	if code == "" {
		code = info.Lang.Iso6393()
	}
	if code == "" {
		return "", ErrLanguageUndetermined
	}
	return code, nil
}
