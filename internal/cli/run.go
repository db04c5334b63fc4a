package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// RunFlags holds the flags for the run command
type RunFlags struct {
	Set       []string
	ValuesURL string
}

// NewRunCmd creates a command running a flow
func NewRunCmd() *cobra.Command {
	flags := &RunFlags{}
	cmd := &cobra.Command{
		Use:   "run <flow>",
		Short: "Run a flow",
		Long: `Run flow steps in order and print the resulting context as JSON. The flow
location can be any afs supported URL, ".yaml" is appended when it has no extension.
Values passed with --set or --values override the flow init.

Examples:
  s3flow run copy.yaml
  s3flow run flows/cleanup --set AWS.S3.BucketName=my-bucket`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := contextValues(cmd, flags.ValuesURL, flags.Set)
			if err != nil {
				return err
			}
			srv, err := newService(cmd)
			if err != nil {
				return err
			}
			aFlow, err := srv.LoadFlow(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, param := range aFlow.Init {
				if value, ok := values[param.Name]; ok {
					param.Value = value
				}
			}
			session := srv.NewState(values)
			executions, err := srv.Run(cmd.Context(), aFlow, session)
			slog.Debug("flow finished", "flow", aFlow.Name, "steps", len(executions))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), session.GetAll())
		},
	}
	cmd.Flags().StringArrayVarP(&flags.Set, "set", "s", nil, "Set context value (repeatable): --set key=value")
	cmd.Flags().StringVar(&flags.ValuesURL, "values", "", "Load context values from a YAML or JSON document")
	return cmd
}
