package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-toml-selector/internal/logger"
	"github.com/MKhiriev/go-toml-selector/internal/node"
	"github.com/MKhiriev/go-toml-selector/models"
)

type nodeService struct {
	registry *node.Registry

	logger *logger.Logger
}

func NewNodeService(registry *node.Registry, log *logger.Logger) NodeService {
	return &nodeService{
		registry: registry,
		logger:   log,
	}
}

func (s *nodeService) NodeTypes() []string {
	return s.registry.Names()
}

func (s *nodeService) Declarations(ctx context.Context) []models.NodeDeclaration {
	nodes := s.registry.Nodes()
	out := make([]models.NodeDeclaration, len(nodes))
	for i, n := range nodes {
		out[i] = n.Declare(ctx)
	}
	return out
}

func (s *nodeService) Declaration(ctx context.Context, name string) (models.NodeDeclaration, error) {
	n, err := s.get(name)
	if err != nil {
		return models.NodeDeclaration{}, err
	}
	return n.Declare(ctx), nil
}

func (s *nodeService) Invoke(ctx context.Context, name string, inv models.Invocation) (models.NodeOutput, error) {
	n, err := s.get(name)
	if err != nil {
		return models.NodeOutput{}, err
	}
	return n.Invoke(ctx, inv), nil
}

func (s *nodeService) IsChanged(ctx context.Context, name, section string) (string, error) {
	n, err := s.get(name)
	if err != nil {
		return "", err
	}
	return n.IsChanged(ctx, section), nil
}

func (s *nodeService) get(name string) (*node.Node, error) {
	n, ok := s.registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, name)
	}
	return n, nil
}
