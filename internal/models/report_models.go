package models

type Label string

const (
	LabelStrongPositive Label = "Strong Positive"
	LabelPositive       Label = "Positive"
	LabelStrongNegative Label = "Strong Negative"
	LabelNegative       Label = "Negative"
	LabelNeutralMixed   Label = "Neutral/Mixed"
)

// Labels lists every label the decision table can produce, in rule order.
var Labels = []Label{
	LabelStrongPositive,
	LabelPositive,
	LabelStrongNegative,
	LabelNegative,
	LabelNeutralMixed,
}

const UNKNOWN_LANGUAGE = "unknown"

// EmotionCategories is the fixed set the presentation layer charts.
var EmotionCategories = []string{
	"anger",
	"anticipation",
	"disgust",
	"fear",
	"joy",
	"sadness",
	"surprise",
	"trust",
}

type PolarityScores struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// AnalysisReport is built once per request and never mutated afterwards.
// The zero value is the empty report returned for blank input.
type AnalysisReport struct {
	Text                 string             `json:"text"`
	Language             string             `json:"language"`
	TextBlobPolarity     float64            `json:"textblob_polarity"`
	TextBlobSubjectivity float64            `json:"textblob_subjectivity"`
	VaderCompound        float64            `json:"vader_compound"`
	NRCEmotions          map[string]float64 `json:"nrc_emotions"`
	Keywords             []string           `json:"keywords"`
	ContainsProfanity    bool               `json:"contains_profanity"`
	CensoredText         string             `json:"censored_text"`
	FinalLabel           Label              `json:"final_label"`
}

func (r AnalysisReport) IsEmpty() bool {
	return r.Text == ""
}

type EmotionShare struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// ProjectedEmotions maps the raw distribution onto EmotionCategories,
// using 0 for categories the scorer did not report.
func (r AnalysisReport) ProjectedEmotions() []EmotionShare {
	shares := make([]EmotionShare, 0, len(EmotionCategories))
	for _, name := range EmotionCategories {
		shares = append(shares, EmotionShare{
			Name:   name,
			Weight: r.NRCEmotions[name],
		})
	}
	return shares
}
