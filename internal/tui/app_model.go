package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-toml-selector/internal/app"
	"github.com/MKhiriev/go-toml-selector/models"
)

var (
	statusTTL = 2 * time.Second

	// writeClipboard is swapped in tests.
	writeClipboard = clipboard.WriteAll
)

type screen int

const (
	screenNodes screen = iota
	screenSections
	screenDetail
)

// browserModel walks node types, then sections, then one resolved section.
type browserModel struct {
	ctx     context.Context
	backend Backend

	currentScreen screen
	startNode     string

	nodes    listModel
	sections listModel
	decl     models.NodeDeclaration
	detail   detailModel

	loading bool
	spinner spinner.Model
	status  string
	err     error
}

func newBrowserModel(ctx context.Context, backend Backend, startNode string) browserModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return browserModel{
		ctx:       ctx,
		backend:   backend,
		startNode: startNode,
		loading:   true,
		spinner:   s,
	}
}

func (m browserModel) Init() tea.Cmd {
	if m.startNode != "" {
		return tea.Batch(m.spinner.Tick, m.cmdLoadDeclaration(m.startNode))
	}
	return tea.Batch(m.spinner.Tick, m.cmdLoadNodes())
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case nodesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		names := make([]string, len(msg.decls))
		notes := make([]string, len(msg.decls))
		for i, d := range msg.decls {
			names[i] = d.Name
			notes[i] = d.DisplayName
		}
		m.nodes = newListModel("NODES", names, notes)
		m.currentScreen = screenNodes
		return m, nil

	case declarationLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		previous, _ := m.sections.current()
		m.decl = msg.decl
		m.sections = newListModel(msg.decl.DisplayName, msg.decl.Sections, nil)
		m.sections.selectItem(previous)
		if m.currentScreen == screenNodes {
			m.currentScreen = screenSections
		}
		if m.currentScreen == screenDetail {
			m.loading = true
			return m, m.cmdInvoke(m.detail.section)
		}
		return m, nil

	case invokedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.detail = detailModel{decl: m.decl, section: msg.section, out: msg.out}
		m.currentScreen = screenDetail
		return m, nil

	case reloadedMsg:
		if msg.err != nil {
			m.loading = false
			m.err = msg.err
			return m, nil
		}
		m.status = app.MsgConfigReloaded
		if m.currentScreen == screenNodes {
			return m, tea.Batch(m.cmdLoadNodes(), clearStatusAfter(statusTTL))
		}
		return m, tea.Batch(m.cmdLoadDeclaration(m.decl.Name), clearStatusAfter(statusTTL))

	case copiedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = app.MsgRecordCopied
		return m, clearStatusAfter(statusTTL)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m browserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.err != nil {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.err = nil
		}
		return m, nil
	}

	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}
	if m.loading {
		return m, nil
	}

	switch m.currentScreen {
	case screenNodes:
		switch {
		case key.Matches(msg, keys.up):
			m.nodes.up()
		case key.Matches(msg, keys.down):
			m.nodes.down()
		case key.Matches(msg, keys.reload):
			m.loading = true
			return m, m.cmdReload()
		case key.Matches(msg, keys.enter):
			if name, ok := m.nodes.current(); ok {
				m.loading = true
				return m, m.cmdLoadDeclaration(name)
			}
		}

	case screenSections:
		switch {
		case key.Matches(msg, keys.up):
			m.sections.up()
		case key.Matches(msg, keys.down):
			m.sections.down()
		case key.Matches(msg, keys.reload):
			m.loading = true
			return m, m.cmdReload()
		case key.Matches(msg, keys.esc):
			if len(m.nodes.items) == 0 {
				m.loading = true
				return m, m.cmdLoadNodes()
			}
			m.currentScreen = screenNodes
		case key.Matches(msg, keys.enter):
			if section, ok := m.sections.current(); ok {
				m.loading = true
				return m, m.cmdInvoke(section)
			}
		}

	case screenDetail:
		switch {
		case key.Matches(msg, keys.copy):
			return m, cmdCopy(m.detail.out.Record)
		case key.Matches(msg, keys.reload):
			m.loading = true
			return m, m.cmdReload()
		case key.Matches(msg, keys.esc):
			m.currentScreen = screenSections
		}
	}

	return m, nil
}

func (m browserModel) View() string {
	if m.err != nil {
		return errorOverlayModel{message: humanizeError(m.err)}.View()
	}

	var title, body, help string
	switch m.currentScreen {
	case screenNodes:
		title, body = m.nodes.title, m.nodes.body()
		help = "enter: sections  r: reload  v: about  q: quit"
	case screenSections:
		title, body = m.sections.title, m.sections.body()
		help = "enter: resolve  r: reload  esc: nodes  q: quit"
	case screenDetail:
		title, body = m.decl.DisplayName, m.detail.body()
		help = "c: copy record  r: reload  esc: sections  q: quit"
	}

	if title == "" {
		title = "TOML SELECTOR"
	}
	if m.loading {
		title += "  " + m.spinner.View()
	}
	if m.status != "" {
		body += "\n\n" + m.status
	}

	return renderPage(title, body, help)
}

func (m browserModel) cmdLoadNodes() tea.Cmd {
	return func() tea.Msg {
		decls, err := m.backend.Declarations(m.ctx)
		return nodesLoadedMsg{decls: decls, err: err}
	}
}

func (m browserModel) cmdLoadDeclaration(name string) tea.Cmd {
	return func() tea.Msg {
		decl, err := m.backend.Declaration(m.ctx, name)
		return declarationLoadedMsg{decl: decl, err: err}
	}
}

func (m browserModel) cmdInvoke(section string) tea.Cmd {
	name := m.decl.Name
	return func() tea.Msg {
		show := false
		out, err := m.backend.Invoke(m.ctx, name, models.Invocation{Section: section, ShowInfo: &show})
		return invokedMsg{section: section, out: out, err: err}
	}
}

func (m browserModel) cmdReload() tea.Cmd {
	return func() tea.Msg {
		return reloadedMsg{err: m.backend.Reload(m.ctx)}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
