package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-toml-selector/models"
)

// RootModel wraps the browser:
// 1) handles global Ctrl+C quit
// 2) toggles the build info window
// 3) delegates all other messages to the browser
type RootModel struct {
	current   tea.Model
	buildInfo models.AppBuildInfo

	quitByUser    bool
	showBuildInfo bool
}

func NewRootModel(current tea.Model, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{current: current, buildInfo: buildInfo}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.info) && !r.showBuildInfo:
			r.showBuildInfo = true
			return r, nil
		case key.Matches(keyMsg, keys.esc, keys.info) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}
	if r.current == nil {
		return appStyle.Render(renderPage("TOML SELECTOR", "", ""))
	}
	return appStyle.Render(r.current.View())
}
