package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewActionsCmd creates a command listing registered actions
func NewActionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List available actions",
		Long: `List available actions with the context keys they read and the result key they write.

Examples:
  s3flow actions
  s3flow actions --legacy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := newService(cmd)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ACTION\tMETHOD\tINPUT KEYS\tRESULT KEY")
			for _, anAction := range srv.Actions() {
				_, _ = fmt.Fprintf(w, "%s\t%s.%s\t%v\t%s\n", anAction.Name, anAction.Service, anAction.Method, anAction.Keys(), anAction.Result)
			}
			return w.Flush()
		},
	}
}
