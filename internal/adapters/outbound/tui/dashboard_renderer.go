package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/earcraft/earcraft/internal/domain/curriculum"
)

// RenderSkills formats the learner's skill profile, weakest first.
func RenderSkills(skills []curriculum.SkillScore) string {
	if len(skills) == 0 {
		return "  " + dimStyle.Render("No skill data yet. Grade a few challenges first.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Skills") + "\n")
	b.WriteString("  " + separatorLine + "\n\n")

	for _, skill := range skills {
		score := int(skill.Score + 0.5)
		bar := coloredBar(score, 20)
		value := lipgloss.NewStyle().Bold(true).Foreground(scoreColor(score)).Render(fmt.Sprintf("%3d", score))
		samples := dimStyle.Render(fmt.Sprintf("%d samples", skill.SampleCount))
		fmt.Fprintf(&b, "  %s %s  %s  %s\n",
			titleStyle.Render(padRight(skill.Label, 20)), bar, value, samples)
	}
	return b.String()
}

// RenderRecommendations formats the practice queue.
func RenderRecommendations(recs []curriculum.Recommendation) string {
	if len(recs) == 0 {
		return "  " + passStyle.Render("Nothing urgent to practice. Keep exploring.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Recommended next") + "\n")
	b.WriteString("  " + separatorLine + "\n\n")

	for i, rec := range recs {
		fmt.Fprintf(&b, "  %s %s %s\n",
			dimStyle.Render(fmt.Sprintf("%d.", i+1)),
			titleStyle.Render(padRight(rec.Title, 24)),
			dimStyle.Render(rec.ChallengeID))
		fmt.Fprintf(&b, "     %s\n", faintStyle.Render(rec.Reason))
	}
	return b.String()
}
