package client

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-toml-selector/internal/adapter"
	"github.com/MKhiriev/go-toml-selector/internal/config"
	"github.com/MKhiriev/go-toml-selector/internal/logger"
	"github.com/MKhiriev/go-toml-selector/internal/node"
	"github.com/MKhiriev/go-toml-selector/internal/service"
	"github.com/MKhiriev/go-toml-selector/internal/store"
	"github.com/MKhiriev/go-toml-selector/models"
)

// App is the state shared by the commands. Config, logger and the backends
// are set up lazily, after cobra has parsed the flags.
type App struct {
	buildInfo models.AppBuildInfo
	stdout    io.Writer
	stderr    io.Writer

	opts rootOptions

	cfg    *config.ClientConfig
	logger *logger.Logger

	services *service.Services
	server   adapter.ServerAdapter
}

type rootOptions struct {
	configPath string
	sourcePath string
	static     bool
	serverAddr string
	verbose    bool
}

func NewApp(buildInfo models.AppBuildInfo, stdout, stderr io.Writer) *App {
	return &App{buildInfo: buildInfo, stdout: stdout, stderr: stderr}
}

func (a *App) Run(ctx context.Context, args []string) error {
	root := newRootCommand(a)
	root.SetArgs(args)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	return root.ExecuteContext(ctx)
}

// init loads the client config and applies the global flag overrides.
func (a *App) init() error {
	cfg, err := config.GetClientConfig(a.opts.configPath)
	if err != nil {
		return err
	}

	switch {
	case a.opts.static:
		cfg.Source = config.ClientSource{Kind: config.SourceKindStatic}
	case a.opts.sourcePath != "":
		cfg.Source = config.ClientSource{Kind: config.SourceKindTOML, Path: a.opts.sourcePath}
	}
	if a.opts.serverAddr != "" {
		cfg.Adapter.HTTPAddress = a.opts.serverAddr
	}

	level := zerolog.WarnLevel
	if a.opts.verbose {
		level = zerolog.DebugLevel
	}

	a.cfg = cfg
	a.logger = logger.NewCLILogger("selector", a.stderr, level)
	a.logger.Debug().Str("source", cfg.Source.Path).Str("kind", cfg.Source.Kind).Msg("client configured")
	return nil
}

// Services builds the in-process services over the configured source. The
// node cache lives in memory for the lifetime of the command.
func (a *App) Services() (*service.Services, error) {
	if a.services != nil {
		return a.services, nil
	}

	loader, err := store.NewSourceLoader(config.Source{Kind: a.cfg.Source.Kind, Path: a.cfg.Source.Path}, a.logger)
	if err != nil {
		return nil, err
	}
	cache := store.NewMemoryNodeCache()

	registry, err := node.NewDefaultRegistry(node.Deps{
		Static: store.NewStaticSource(config.SourceKindStatic, store.DefaultProfiles()),
		TOML:   loader,
	}, a.logger)
	if err != nil {
		return nil, fmt.Errorf("error building node registry: %w", err)
	}

	authCfg := config.App{
		TokenSignKey:  a.cfg.App.TokenSignKey,
		TokenIssuer:   a.cfg.App.TokenIssuer,
		TokenDuration: a.cfg.App.TokenDuration,
	}

	a.services = &service.Services{
		SectionService: service.NewSectionService(loader, cache, a.logger),
		NodeService:    service.NewNodeService(registry, a.logger),
		AuthService:    service.NewAuthService(authCfg, a.logger),
	}
	return a.services, nil
}

// Server returns the adapter for the configured selector server.
func (a *App) Server() (adapter.ServerAdapter, error) {
	if a.server != nil {
		return a.server, nil
	}

	server, err := adapter.NewHTTPServerAdapter(a.cfg.Adapter, a.cfg.App, a.logger)
	if err != nil {
		return nil, err
	}
	a.server = server
	return server, nil
}

// Workflow returns the ComfyUI adapter touching the given node types.
func (a *App) Workflow(nodeTypes []string) adapter.WorkflowAdapter {
	return adapter.NewComfyWorkflowAdapter(a.cfg.Adapter, nodeTypes, a.logger)
}
