package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spacesedan/sentiscope/internal/models"
)

const EMPTY_MESSAGE = "Nothing to analyze."

func renderReport(w io.Writer, report models.AnalysisReport, colours bool) {
	if report.IsEmpty() {
		fmt.Fprintln(w, EMPTY_MESSAGE)
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Field", "Value"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	label := string(report.FinalLabel)
	if colours {
		label = labelStyle(report.FinalLabel).Render(label)
	}

	table.Append([]string{"Label", label})
	table.Append([]string{"Language", report.Language})
	table.Append([]string{"VADER compound", formatScore(report.VaderCompound)})
	table.Append([]string{"Polarity", formatScore(report.TextBlobPolarity)})
	table.Append([]string{"Subjectivity", formatScore(report.TextBlobSubjectivity)})
	table.Append([]string{"Profanity", yesNo(report.ContainsProfanity)})
	if report.ContainsProfanity {
		table.Append([]string{"Censored", report.CensoredText})
	}
	table.Append([]string{"Keywords", strings.Join(report.Keywords, ", ")})
	for _, share := range report.ProjectedEmotions() {
		table.Append([]string{share.Name, formatScore(share.Weight)})
	}

	table.Render()
}

func labelStyle(label models.Label) color.Style {
	switch label {
	case models.LabelStrongPositive:
		return color.New(color.FgGreen, color.OpBold)
	case models.LabelPositive:
		return color.New(color.FgGreen)
	case models.LabelStrongNegative:
		return color.New(color.FgRed, color.OpBold)
	case models.LabelNegative:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgYellow)
	}
}

func formatScore(v float64) string {
	return fmt.Sprintf("%.4f", v)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
