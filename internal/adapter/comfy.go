package adapter

import (
	"context"
	"fmt"

	"github.com/richinsley/comfy2go/client"
	"github.com/richinsley/comfy2go/graphapi"

	"github.com/MKhiriev/go-toml-selector/internal/config"
	"github.com/MKhiriev/go-toml-selector/internal/logger"
)

// sectionWidget is the widget index of the section input on every selector
// node.
const sectionWidget = 0

type comfyWorkflowAdapter struct {
	client    *client.ComfyClient
	nodeTypes map[string]struct{}
	logger    *logger.Logger
}

// NewComfyWorkflowAdapter returns a [WorkflowAdapter] for the ComfyUI
// instance at cfg.ComfyHost:cfg.ComfyPort. Only nodes whose type is one of
// nodeTypes are touched.
func NewComfyWorkflowAdapter(cfg config.ClientAdapter, nodeTypes []string, logger *logger.Logger) WorkflowAdapter {
	types := make(map[string]struct{}, len(nodeTypes))
	for _, t := range nodeTypes {
		types[t] = struct{}{}
	}

	return &comfyWorkflowAdapter{
		client:    client.NewComfyClient(cfg.ComfyHost, cfg.ComfyPort, nil),
		nodeTypes: types,
		logger:    logger,
	}
}

func (c *comfyWorkflowAdapter) Apply(ctx context.Context, workflowPath, section string) (int, error) {
	log := c.logger.ForSection(section).With().Str("workflow", workflowPath).Logger()

	if !c.client.IsInitialized() {
		if err := c.client.Init(); err != nil {
			return 0, fmt.Errorf("error initializing comfy client: %w", err)
		}
	}

	graph, _, err := c.client.NewGraphFromJsonFile(workflowPath)
	if err != nil {
		return 0, fmt.Errorf("error loading workflow: %w", err)
	}

	updated := applySection(graph.Nodes, c.nodeTypes, section)
	if updated == 0 {
		return 0, ErrNoSelectorNodes
	}
	log.Info().Int("nodes", updated).Msg("section applied")

	item, err := c.client.QueuePrompt(graph)
	if err != nil {
		return updated, fmt.Errorf("failed to queue prompt: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return updated, ctx.Err()
		case msg, ok := <-item.Messages:
			if !ok {
				return updated, nil
			}
			switch msg.Type {
			case "started":
				log.Info().Str("prompt_id", msg.ToPromptMessageStarted().PromptID).Msg("prompt started")
			case "executing":
				log.Debug().Str("node", msg.ToPromptMessageExecuting().Title).Msg("executing node")
			case "stopped":
				stopped := msg.ToPromptMessageStopped()
				if stopped.Exception != nil {
					return updated, fmt.Errorf("%w: %s: %s", ErrWorkflowException,
						stopped.Exception.ExceptionType, stopped.Exception.ExceptionMessage)
				}
				log.Info().Msg("prompt finished")
				return updated, nil
			}
		}
	}
}

// applySection writes section into the section widget of every node whose
// type is in types and returns how many nodes were changed.
func applySection(nodes []*graphapi.GraphNode, types map[string]struct{}, section string) int {
	updated := 0
	for _, node := range nodes {
		if node == nil {
			continue
		}
		if _, ok := types[node.Type]; !ok {
			continue
		}
		values, ok := node.WidgetValues.([]interface{})
		if !ok || len(values) <= sectionWidget {
			continue
		}
		values[sectionWidget] = section
		updated++
	}
	return updated
}
