package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/earcraft/earcraft/internal/domain"
)

// ── Warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	lime    = lipgloss.Color("#A3E635")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(60)

	dimStyle   = lipgloss.NewStyle().Foreground(dim)
	faintStyle = lipgloss.NewStyle().Foreground(faint)
	passStyle  = lipgloss.NewStyle().Foreground(success)
	failStyle  = lipgloss.NewStyle().Foreground(danger)
	starStyle  = lipgloss.NewStyle().Foreground(warning)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)

	separatorLine = faintStyle.Render(strings.Repeat("─", 56))
)

// RenderScoreCard formats a graded sound submission for terminal output.
func RenderScoreCard(challenge domain.Challenge, result domain.ScoreResult, progress domain.ChallengeProgress) string {
	var b strings.Builder

	title := headerStyle.Render(challenge.Title)
	subtitle := dimStyle.Render(fmt.Sprintf("%s · %s", challenge.Module, challenge.Track))
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(scoreColor(result.Overall)).
		Render(fmt.Sprintf("%d / 100", result.Overall))
	stars := starStyle.Render(starString(result.Stars))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + stars))
	b.WriteString("\n\n")

	for _, entry := range result.Breakdown {
		renderBreakdownEntry(&b, entry)
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

	b.WriteString("  " + dimStyle.Render(fmt.Sprintf("Best %d · attempt %d", progress.BestScore, progress.Attempts)) + "\n")
	return b.String()
}

func renderBreakdownEntry(b *strings.Builder, entry domain.BreakdownEntry) {
	score := entry.Score
	name := titleStyle.Render(padRight(entry.Name, 12))
	bar := coloredBar(score, 20)
	value := lipgloss.NewStyle().Bold(true).Foreground(scoreColor(score)).Render(fmt.Sprintf("%3d", score))

	fmt.Fprintf(b, "  %s %s  %s\n", name, bar, value)
	if entry.Feedback != "" {
		fmt.Fprintf(b, "    %s\n", faintStyle.Render(entry.Feedback))
	}
}

// RenderProgress formats the per-challenge progress table.
func RenderProgress(catalog *domain.Catalog, progress map[string]domain.ChallengeProgress) string {
	if len(progress) == 0 {
		return "  " + dimStyle.Render("No attempts recorded yet.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Progress") + "\n")
	b.WriteString("  " + separatorLine + "\n\n")

	ids := make([]string, 0, len(progress))
	for id := range progress {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		p := progress[id]
		title := id
		if challenge := catalog.ByID(id); challenge != nil {
			title = challenge.Title
		}

		scoreStyled := lipgloss.NewStyle().
			Foreground(scoreColor(p.BestScore)).
			Render(fmt.Sprintf("%3d/100", p.BestScore))

		state := failStyle.Render("open")
		if p.Completed {
			state = passStyle.Render("done")
		}

		fmt.Fprintf(&b, "  %s %s  %s  %s  %s\n",
			titleStyle.Render(padRight(title, 24)),
			scoreStyled,
			starStyle.Render(starString(p.Stars)),
			state,
			dimStyle.Render(fmt.Sprintf("%d attempts", p.Attempts)))
	}
	return b.String()
}

// RenderChallengeList formats the pack catalog with completion markers.
func RenderChallengeList(catalog *domain.Catalog, progress map[string]domain.ChallengeProgress) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render(catalog.Pack) + dimStyle.Render(fmt.Sprintf("  %d challenges", len(catalog.Challenges))) + "\n")
	b.WriteString("  " + separatorLine + "\n\n")

	for _, challenge := range catalog.Challenges {
		marker := faintStyle.Render("○")
		detail := ""
		if p, ok := progress[challenge.ID]; ok {
			if p.Completed {
				marker = passStyle.Render("●")
			} else {
				marker = warnStyleDot()
			}
			detail = "  " + starStyle.Render(starString(p.Stars))
		}
		fmt.Fprintf(&b, "  %s %s %s %s%s\n",
			marker,
			dimStyle.Render(padRight(challenge.ID, 10)),
			titleStyle.Render(padRight(challenge.Title, 24)),
			dimStyle.Render(string(challenge.Track)),
			detail)
	}
	return b.String()
}

func warnStyleDot() string {
	return lipgloss.NewStyle().Foreground(warning).Render("◐")
}

func starString(stars int) string {
	if stars < 0 {
		stars = 0
	}
	if stars > 3 {
		stars = 3
	}
	return strings.Repeat("★", stars) + strings.Repeat("☆", 3-stars)
}

func coloredBar(score, width int) string {
	filled := max(0, min(score*width/100, width))
	empty := width - filled

	color := scoreColor(score)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= domain.TwoStarThreshold:
		return success
	case score >= domain.PassThreshold:
		return lime
	case score >= 40:
		return warning
	default:
		return danger
	}
}

func padRight(s string, width int) string {
	if len([]rune(s)) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len([]rune(s)))
}
