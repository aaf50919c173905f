package tui

import (
	"github.com/MKhiriev/go-toml-selector/models"
)

type nodesLoadedMsg struct {
	decls []models.NodeDeclaration
	err   error
}

type declarationLoadedMsg struct {
	decl models.NodeDeclaration
	err  error
}

type invokedMsg struct {
	section string
	out     models.NodeOutput
	err     error
}

type reloadedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
