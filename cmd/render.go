package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/cyranoaladin/nexus-scoring/internal/scoring"
	"github.com/cyranoaladin/nexus-scoring/internal/stage"
)

// Palette for the --pretty summaries.
var (
	colorPrimary = lipgloss.Color("#8B5CF6")
	colorGood    = lipgloss.Color("#22C55E")
	colorWarn    = lipgloss.Color("#F97316")
	colorBad     = lipgloss.Color("#F43F5E")
	colorDim     = lipgloss.Color("#94A3B8")

	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	styleLabel = lipgloss.NewStyle().Foreground(colorDim)
	styleValue = lipgloss.NewStyle().Bold(true)
)

// renderScoringSummary lays out the index table, the recommendation, and the
// per-domain rows for terminal display.
func renderScoringSummary(r *scoring.Result) string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Bilan diagnostique"))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"Mastery", fmt.Sprintf("%d%%", r.MasteryIndex)},
		{"Coverage", fmt.Sprintf("%d%%", r.CoverageIndex)},
		{"Exam readiness", fmt.Sprintf("%d%%", r.ExamReadinessIndex)},
		{"Readiness", fmt.Sprintf("%d%%", r.ReadinessScore)},
		{"Risk", fmt.Sprintf("%d%%", r.RiskIndex)},
		{"Trust", fmt.Sprintf("%d%% (%s)", r.TrustScore, r.TrustLevel)},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			styleLabel.Render(fmt.Sprintf("%-16s", row.label)),
			styleValue.Render(row.value)))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s\n",
		styleLabel.Render(fmt.Sprintf("%-16s", "Recommendation")),
		recommendationStyle(r.Recommendation).Render(string(r.Recommendation))))
	b.WriteString("  " + styleLabel.Render(r.RecommendationMessage) + "\n")

	if len(r.DomainScores) > 0 {
		b.WriteString("\n" + styleTitle.Render("Domaines") + "\n")
		for _, d := range r.DomainScores {
			b.WriteString(fmt.Sprintf("  %s %s  %s\n",
				styleLabel.Render(fmt.Sprintf("%-16s", d.Domain)),
				styleValue.Render(fmt.Sprintf("%3d%%", d.Score)),
				priorityStyle(d.Priority).Render(string(d.Priority))))
		}
	}

	if len(r.Alerts) > 0 {
		b.WriteString("\n" + styleTitle.Render("Alertes") + "\n")
		for _, a := range r.Alerts {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				alertStyle(a.Type).Render(fmt.Sprintf("[%s]", a.Code)),
				a.Message))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderStageSummary lays out the stage indices and category rows.
func renderStageSummary(r *stage.Result) string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Score de stage"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s %s\n",
		styleLabel.Render(fmt.Sprintf("%-16s", "Global")),
		styleValue.Render(fmt.Sprintf("%d/100", r.GlobalScore))))
	b.WriteString(fmt.Sprintf("  %s %s\n",
		styleLabel.Render(fmt.Sprintf("%-16s", "Confiance")),
		styleValue.Render(fmt.Sprintf("%d%%", r.ConfidenceIndex))))
	b.WriteString(fmt.Sprintf("  %s %s\n",
		styleLabel.Render(fmt.Sprintf("%-16s", "Précision")),
		styleValue.Render(fmt.Sprintf("%d%%", r.PrecisionIndex))))

	if len(r.CategoryScores) > 0 {
		b.WriteString("\n" + styleTitle.Render("Catégories") + "\n")
		for _, c := range r.CategoryScores {
			b.WriteString(fmt.Sprintf("  %s %s  %s\n",
				styleLabel.Render(fmt.Sprintf("%-16s", c.Category)),
				styleValue.Render(fmt.Sprintf("%3d%%", c.Precision)),
				tagStyle(c.Tag).Render(string(c.Tag))))
		}
	}

	b.WriteString("\n" + styleLabel.Render(r.DiagnosticText))
	return b.String()
}

func recommendationStyle(rec scoring.Recommendation) lipgloss.Style {
	switch rec {
	case scoring.Pallier2Confirmed:
		return lipgloss.NewStyle().Bold(true).Foreground(colorGood)
	case scoring.Pallier2Conditional:
		return lipgloss.NewStyle().Bold(true).Foreground(colorWarn)
	default:
		return lipgloss.NewStyle().Bold(true).Foreground(colorBad)
	}
}

func priorityStyle(p scoring.Priority) lipgloss.Style {
	switch p {
	case scoring.PriorityCritical, scoring.PriorityHigh:
		return lipgloss.NewStyle().Foreground(colorBad)
	case scoring.PriorityMedium:
		return lipgloss.NewStyle().Foreground(colorWarn)
	default:
		return lipgloss.NewStyle().Foreground(colorGood)
	}
}

func alertStyle(t scoring.AlertType) lipgloss.Style {
	switch t {
	case scoring.AlertDanger:
		return lipgloss.NewStyle().Bold(true).Foreground(colorBad)
	case scoring.AlertWarning:
		return lipgloss.NewStyle().Foreground(colorWarn)
	default:
		return lipgloss.NewStyle().Foreground(colorDim)
	}
}

func tagStyle(t stage.Tag) lipgloss.Style {
	switch t {
	case stage.TagMaitrise:
		return lipgloss.NewStyle().Foreground(colorGood)
	case stage.TagBasesFragiles, stage.TagConfusions:
		return lipgloss.NewStyle().Foreground(colorBad)
	default:
		return lipgloss.NewStyle().Foreground(colorWarn)
	}
}
