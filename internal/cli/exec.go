package cli

import (
	"github.com/spf13/cobra"
)

// ExecFlags holds the flags for the exec command
type ExecFlags struct {
	Set       []string
	ValuesURL string
}

// NewExecCmd creates a command running a single action
func NewExecCmd() *cobra.Command {
	flags := &ExecFlags{}
	cmd := &cobra.Command{
		Use:   "exec <action>",
		Short: "Execute a single action",
		Long: `Execute a single action and print the resulting context as JSON.

Examples:
  s3flow exec createBucket --set AWS.S3.BucketName=my-bucket
  s3flow exec getObject --set AWS.S3.BucketName=my-bucket --set AWS.S3.GetFileName=a.txt`,
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
			session := srv.NewState(values)
			if _, err = srv.Execute(cmd.Context(), args[0], session); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), session.GetAll())
		},
	}
	cmd.Flags().StringArrayVarP(&flags.Set, "set", "s", nil, "Set context value (repeatable): --set key=value")
	cmd.Flags().StringVar(&flags.ValuesURL, "values", "", "Load context values from a YAML or JSON document")
	return cmd
}

func contextValues(cmd *cobra.Command, valuesURL string, pairs []string) (map[string]interface{}, error) {
	var values map[string]interface{}
	if valuesURL != "" {
		loaded, err := LoadValues(cmd.Context(), valuesURL)
		if err != nil {
			return nil, err
		}
		values = loaded
	}
	set, err := ParseSet(pairs)
	if err != nil {
		return nil, err
	}
	return mergeValues(values, set), nil
}
