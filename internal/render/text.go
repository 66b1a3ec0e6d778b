// Package render draws roster views for a terminal and exports derived
// stats as spreadsheets.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/mercdex/internal/engine"
	"github.com/KirkDiggler/mercdex/internal/entities"
	"github.com/KirkDiggler/mercdex/internal/errors"
	"github.com/KirkDiggler/mercdex/internal/session"
)

// Stat names shown on the stat line
const (
	StatHealth = "health"
	StatAttack = "attack"
)

const emptyName = "—"

var factionColors = map[string]lipgloss.Color{
	"Peacekeeper": lipgloss.Color("39"),
	"Freemen":     lipgloss.Color("214"),
	"Syndicate":   lipgloss.Color("160"),
}

var fallbackFactionColor = lipgloss.Color("245")

func factionStyle(r *lipgloss.Renderer, faction string) lipgloss.Style {
	color, ok := factionColors[faction]
	if !ok {
		color = fallbackFactionColor
	}
	return r.NewStyle().Bold(true).Foreground(color)
}

// entryStyle dims mercenaries that do not match the active filters
func entryStyle(r *lipgloss.Renderer, matched bool) lipgloss.Style {
	if matched {
		return r.NewStyle()
	}
	return r.NewStyle().Faint(true)
}

// Roster writes one heading per faction followed by its members. Members
// missing from matches are dimmed; a nil matches map dims nothing.
func Roster(w io.Writer, groups map[string][]*entities.Mercenary, factions []string, matches map[string]bool) error {
	r := lipgloss.NewRenderer(w)

	var b strings.Builder
	for _, faction := range factions {
		b.WriteString(factionStyle(r, faction).Render(faction))
		b.WriteString("\n")
		for _, m := range groups[faction] {
			matched := matches == nil || matches[m.Name]
			b.WriteString("  ")
			b.WriteString(entryStyle(r, matched).Render(m.Name))
			b.WriteString("\n")
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Wrap(err, "failed to write roster")
	}
	return nil
}

// StatLine formats health and attack rounded half-up. Missing stats show 0.
func StatLine(stats engine.Stats) string {
	return fmt.Sprintf("❤️ %s | ⚔️ %s",
		engine.FormatRounded(stats[StatHealth]),
		engine.FormatRounded(stats[StatAttack]))
}

// Detail writes the full view of one mercenary at a selection
func Detail(w io.Writer, d *session.Detail) error {
	if d == nil || d.Mercenary == nil {
		return errors.InvalidArgument("detail is required")
	}
	r := lipgloss.NewRenderer(w)
	m := d.Mercenary

	name := m.Name
	if name == "" {
		name = emptyName
	}

	var b strings.Builder
	b.WriteString(factionStyle(r, m.Faction).Render(name))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s · %s · %s\n", m.Faction, m.AttackType, m.Subclass)
	fmt.Fprintf(&b, "Level %d · Reboot %d\n", d.Progression.Level, d.Progression.Reboot)

	for _, text := range []string{m.Description, m.Summary, m.TipsAndTricks} {
		if text != "" {
			b.WriteString("\n")
			b.WriteString(text)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(StatLine(d.Stats))
	b.WriteString("\n")

	panel := r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	title := r.NewStyle().Bold(true)
	tooltip := r.NewStyle().Faint(true).Italic(true)
	for _, skill := range d.Skills {
		lines := []string{
			title.Render(fmt.Sprintf("Skill %d", skill.Slot)),
			skill.Text,
		}
		if skill.Tooltip != "" {
			lines = append(lines, tooltip.Render(skill.Tooltip))
		}
		b.WriteString(panel.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Wrap(err, "failed to write detail")
	}
	return nil
}

// Ranges writes the selectable level and reboot domains
func Ranges(w io.Writer, levels, reboots []int) error {
	_, err := fmt.Fprintf(w, "levels: %s\nreboots: %s\n", joinInts(levels), joinInts(reboots))
	if err != nil {
		return errors.Wrap(err, "failed to write ranges")
	}
	return nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}
