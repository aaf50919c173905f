package client

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-toml-selector/internal/node"
)

func newRootCommand(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "selector",
		Short: "Browse and resolve sections of a selector configuration",
		Long: `selector resolves sections of a TOML configuration the same way the
selector nodes do, either in-process or against a running selector server.

It can also write a section into the selector nodes of a ComfyUI workflow
and queue it.`,
		Version:       a.buildInfo.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\n%s\nGo version: %s\nPlatform: %s/%s\n",
		strings.Join(a.buildInfo.Lines()[1:], "\n"), goVersion(), runtime.GOOS, runtime.GOARCH))

	flags := root.PersistentFlags()
	flags.StringVarP(&a.opts.configPath, "config", "c", "", "JSON config file")
	flags.StringVarP(&a.opts.sourcePath, "source", "s", "", "TOML source file (overrides the config)")
	flags.BoolVar(&a.opts.static, "static", false, "use the built-in profile table instead of a TOML file")
	flags.StringVar(&a.opts.serverAddr, "server", "", "selector server address for remote commands")
	flags.BoolVarP(&a.opts.verbose, "verbose", "v", false, "log per-field diagnostics")

	root.AddCommand(
		newSectionsCommand(a),
		newResolveCommand(a),
		newChangedCommand(a),
		newNodesCommand(a),
		newTokenCommand(a),
		newRemoteCommand(a),
		newBrowseCommand(a),
		newApplyCommand(a),
	)

	return root
}

func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}

// allNodeTypes lists every selector node type a workflow may contain.
func allNodeTypes() []string {
	return []string{
		node.ProfileSelector,
		node.TomlSelector,
		node.TomlSelectorPro,
		node.TomlSelectorBasic,
		node.TomlSelectorAdvanced,
		node.TomlSelectorDynamic,
		node.TomlSelectorFixed,
		node.TomlSelectorNamed,
		node.TomlSelectorUltra,
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
