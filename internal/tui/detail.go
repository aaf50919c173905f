package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-toml-selector/models"
)

const maxValueWidth = 48

type detailModel struct {
	decl    models.NodeDeclaration
	section string
	out     models.NodeOutput
}

// slotRow is one projection slot as shown to the user.
type slotRow struct {
	name  string
	typ   models.SlotType
	value string
}

func (m detailModel) rows() []slotRow {
	names, types := m.decl.SlotNames(), m.decl.SlotTypes()

	rows := make([]slotRow, len(m.out.Outputs))
	for i, v := range m.out.Outputs {
		row := slotRow{name: fmt.Sprintf("output_%d", i+1), value: v.String()}
		if i < len(names) {
			row.name = names[i]
		}
		if i < len(types) {
			row.typ = types[i]
		} else {
			row.typ = models.SlotTypeOf(v)
		}
		rows[i] = row
	}
	return rows
}

func (m detailModel) body() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("section: %s\n\n", m.section))

	rows := m.rows()
	width := 0
	for _, r := range rows {
		width = max(width, len(r.name))
	}
	for i, r := range rows {
		b.WriteString(fmt.Sprintf("%2d  %-*s  %-7s  %s\n", i, width, r.name, typeStyle.Render(string(r.typ)), fitText(r.value, maxValueWidth)))
	}
	if len(rows) == 0 {
		b.WriteString("no outputs\n")
	}

	if m.decl.RecordOutput {
		b.WriteString("\n")
		b.WriteString(m.out.Record)
	}

	return strings.TrimRight(b.String(), "\n")
}
