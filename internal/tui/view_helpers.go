package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderPage stacks the title, a framed body and the key help.
func renderPage(title, body, help string) string {
	if strings.TrimSpace(body) == "" {
		body = "-"
	}

	blocks := []string{titleStyle.Render(title), frameStyle.Render(body)}
	if strings.TrimSpace(help) != "" {
		blocks = append(blocks, helpStyle.Render(help))
	}
	blocks = append(blocks, helpStyle.Render("ctrl+c: quit"))

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// fitText cuts v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
