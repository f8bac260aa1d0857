package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/earcraft/earcraft/internal/domain"
)

// RenderMixReport formats an evaluated mix submission for terminal output.
func RenderMixReport(challenge domain.Challenge, result domain.ProductionScoreResult) string {
	var b strings.Builder

	title := headerStyle.Render(challenge.Title)
	subtitle := dimStyle.Render(fmt.Sprintf("%s · %s mix", challenge.Module, result.Mode))
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(scoreColor(result.Overall)).
		Render(fmt.Sprintf("%d / 100", result.Overall))
	stars := starStyle.Render(starString(result.Stars))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + stars))
	b.WriteString("\n\n")

	switch result.Mode {
	case domain.ModeReference:
		for _, layer := range result.LayerScores {
			renderLayerScore(&b, layer)
		}
	case domain.ModeGoal:
		for _, cond := range result.ConditionResults {
			renderConditionResult(&b, cond)
		}
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	for _, line := range result.Feedback {
		b.WriteString("  " + titleStyle.Render(line) + "\n")
	}
	if result.Passed {
		b.WriteString("  " + passStyle.Render("Challenge passed.") + "\n")
	} else {
		b.WriteString("  " + failStyle.Render("Not passed yet.") + "\n")
	}
	return b.String()
}

func renderLayerScore(b *strings.Builder, layer domain.LayerScore) {
	name := layer.Name
	if name == "" {
		name = layer.LayerID
	}
	bar := coloredBar(layer.Score, 20)
	value := lipgloss.NewStyle().Bold(true).Foreground(scoreColor(layer.Score)).Render(fmt.Sprintf("%3d", layer.Score))
	fmt.Fprintf(b, "  %s %s  %s\n", titleStyle.Render(padRight(name, 12)), bar, value)
}

func renderConditionResult(b *strings.Builder, cond domain.ConditionResult) {
	mark := failStyle.Render("✗")
	if cond.Passed {
		mark = passStyle.Render("✓")
	}
	fmt.Fprintf(b, "  %s %s\n", mark, dimStyle.Render(cond.Description))
}
