package tui

import (
	"strings"
)

// listModel is a cursor over a list of names.
type listModel struct {
	title string
	items []string
	notes []string
	idx   int
}

func newListModel(title string, items, notes []string) listModel {
	return listModel{title: title, items: items, notes: notes}
}

func (m listModel) current() (string, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return "", false
	}
	return m.items[m.idx], true
}

func (m *listModel) up() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *listModel) down() {
	if m.idx < len(m.items)-1 {
		m.idx++
	}
}

// selectItem moves the cursor to name, keeping it in range when name is gone.
func (m *listModel) selectItem(name string) {
	for i, item := range m.items {
		if item == name {
			m.idx = i
			return
		}
	}
	if m.idx >= len(m.items) {
		m.idx = max(len(m.items)-1, 0)
	}
}

func (m listModel) body() string {
	if len(m.items) == 0 {
		return "nothing to select"
	}

	var b strings.Builder
	for i, item := range m.items {
		line := "  " + item
		if i < len(m.notes) && m.notes[i] != "" {
			line += "  " + typeStyle.Render(m.notes[i])
		}
		if i == m.idx {
			line = selectedStyle.Render("> " + item)
			if i < len(m.notes) && m.notes[i] != "" {
				line += "  " + typeStyle.Render(m.notes[i])
			}
		}
		b.WriteString(line)
		if i < len(m.items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
