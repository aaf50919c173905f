package client

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-toml-selector/internal/app"
	"github.com/MKhiriev/go-toml-selector/internal/node"
	"github.com/MKhiriev/go-toml-selector/models"
)

var ErrTokensDisabled = errors.New("token sign key is not configured")

func newSectionsCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List the sections of the source in file order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := a.Services()
			if err != nil {
				return err
			}

			resp := services.SectionService.GetConfig(cmd.Context())
			if !resp.Success {
				return errors.New(resp.Error)
			}
			if len(resp.Sections) == 0 {
				a.logger.Warn().Msg(app.MsgConfigNotFound)
				return nil
			}
			for _, name := range resp.Sections {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newResolveCommand(a *App) *cobra.Command {
	var (
		nodeName string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "resolve <section>",
		Short: "Print the outputs a selector node produces for a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := a.Services()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			decl, err := services.NodeService.Declaration(ctx, nodeName)
			if err != nil {
				return err
			}

			diagnostics := a.opts.verbose
			out, err := services.NodeService.Invoke(ctx, nodeName, models.Invocation{
				Section:  args[0],
				ShowInfo: &diagnostics,
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderOutputs(decl, out))
			if out.RecordOutput {
				fmt.Fprintln(cmd.OutOrStdout(), out.Record)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&nodeName, "node", "n", node.TomlSelectorDynamic, "selector node type")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the outputs as JSON")
	return cmd
}

func newChangedCommand(a *App) *cobra.Command {
	var nodeName string

	cmd := &cobra.Command{
		Use:   "changed <section>",
		Short: "Print the change token of a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := a.Services()
			if err != nil {
				return err
			}

			token, err := services.NodeService.IsChanged(cmd.Context(), nodeName, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVarP(&nodeName, "node", "n", node.TomlSelectorDynamic, "selector node type")
	return cmd
}

func newNodesCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "nodes",
		Short: "List the registered selector node types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := a.Services()
			if err != nil {
				return err
			}

			t := newTable("NODE", "TITLE", "SLOTS", "SECTIONS", "DEFAULT")
			for _, decl := range services.NodeService.Declarations(cmd.Context()) {
				t.Row(decl.Name, decl.DisplayName, strconv.Itoa(decl.Arity()),
					strconv.Itoa(len(decl.Sections)), decl.DefaultSection)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return nil
		},
	}
}

func newTokenCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "token <operator>",
		Short: "Issue an admin token for reload requests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := a.Services()
			if err != nil {
				return err
			}
			if !services.AuthService.Enabled() {
				return ErrTokensDisabled
			}

			token, err := services.AuthService.CreateToken(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token.SignedString)
			if left := token.ExpiresIn(time.Now()); left > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "valid for %s\n", left.Round(time.Second))
			}
			return nil
		},
	}
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}

// renderOutputs lays out the projection slots as name/type/value rows.
func renderOutputs(decl models.NodeDeclaration, out models.NodeOutput) string {
	names, types := decl.SlotNames(), decl.SlotTypes()

	t := newTable("#", "NAME", "TYPE", "VALUE")
	for i, v := range out.Outputs {
		var name, typ string
		if i < len(names) {
			name = names[i]
		}
		if i < len(types) {
			typ = string(types[i])
		}
		t.Row(strconv.Itoa(i), name, typ, v.String())
	}
	return t.String()
}
