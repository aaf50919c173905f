// Package tui is the interactive section browser of the selector CLI.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-toml-selector/internal/logger"
	"github.com/MKhiriev/go-toml-selector/models"
)

type TUI struct {
	backend   Backend
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(backend Backend, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{backend: backend, buildInfo: buildInfo, logger: logger}
}

// Run opens the browser and blocks until the user quits. With startNode set
// the section list of that node is shown first.
func (t *TUI) Run(ctx context.Context, startNode string) error {
	root := NewRootModel(newBrowserModel(ctx, t.backend, startNode), t.buildInfo)

	final, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}
	if result, ok := final.(RootModel); ok && result.quitByUser {
		t.logger.Debug().Msg("browser interrupted")
	}
	return nil
}
