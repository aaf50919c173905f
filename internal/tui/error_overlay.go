package tui

import "github.com/charmbracelet/lipgloss"

// errorOverlayModel is the box shown instead of the page while an error is
// pending. enter or esc dismisses it.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	return overlayBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		errorStyle.Render("Error"),
		"",
		m.message,
		"",
		helpStyle.UnsetMarginLeft().Render("enter / esc: close"),
	))
}
