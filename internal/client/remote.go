package client

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-toml-selector/internal/tui"
	"github.com/MKhiriev/go-toml-selector/models"
)

func newRemoteCommand(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Query a running selector server",
	}

	cmd.AddCommand(
		newRemoteGetSectionCommand(a),
		newRemoteGetConfigCommand(a),
		newRemoteReloadCommand(a),
		newRemoteVersionCommand(a),
	)
	return cmd
}

func newRemoteGetSectionCommand(a *App) *cobra.Command {
	var nodeID string

	cmd := &cobra.Command{
		Use:   "get-section <section>",
		Short: "Fetch the data of one section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := a.Server()
			if err != nil {
				return err
			}

			resp, err := server.GetSection(cmd.Context(), models.SectionRequest{Section: args[0], NodeID: nodeID})
			if err != nil {
				return err
			}
			if err = writeJSON(cmd.OutOrStdout(), resp); err != nil {
				return err
			}
			if !resp.Success {
				return errors.New(resp.Error)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&nodeID, "node-id", "", "cache the result under this host node id")
	return cmd
}

func newRemoteGetConfigCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get-config",
		Short: "Fetch the whole configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := a.Server()
			if err != nil {
				return err
			}

			resp, err := server.GetConfig(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), resp)
		},
	}
}

func newRemoteReloadCommand(a *App) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "reload",
		Short: "Ask the server to re-read its source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := a.Server()
			if err != nil {
				return err
			}
			if token != "" {
				server.SetToken(token)
			}

			resp, err := server.Reload(cmd.Context())
			if err != nil {
				if resp.Error != "" {
					return fmt.Errorf("%w: %s", err, resp.Error)
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "admin token (overrides the config)")
	return cmd
}

func newRemoteVersionCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := a.Server()
			if err != nil {
				return err
			}

			version, err := server.Version(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}
}

func newBrowseCommand(a *App) *cobra.Command {
	var (
		remote   bool
		nodeName string
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse nodes and sections interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var backend tui.Backend
			if remote {
				server, err := a.Server()
				if err != nil {
					return err
				}
				backend = tui.NewRemoteBackend(server)
			} else {
				services, err := a.Services()
				if err != nil {
					return err
				}
				backend = tui.NewLocalBackend(services)
			}

			return tui.New(backend, a.buildInfo, a.logger).Run(cmd.Context(), nodeName)
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "browse the source of the selector server")
	cmd.Flags().StringVarP(&nodeName, "node", "n", "", "open the sections of this node type first")
	return cmd
}

func newApplyCommand(a *App) *cobra.Command {
	var nodeTypes []string

	cmd := &cobra.Command{
		Use:   "apply <workflow.json> <section>",
		Short: "Set a section on the selector nodes of a ComfyUI workflow and queue it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := a.Workflow(nodeTypes).Apply(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "section %q applied to %d node(s)\n", args[1], updated)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&nodeTypes, "node-type", allNodeTypes(), "selector node types to update")
	return cmd
}
