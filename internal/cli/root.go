package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/s3flow/tracing"
)

// NewRootCmd creates a new root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "s3flow",
		Short: "s3flow CLI",
		Long:  `s3flow runs named Amazon S3 actions against a key-value context.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				_ = os.Setenv("S3FLOW_LOG", "DEBUG")
			}
			InitLogging()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return tracing.Shutdown(cmd.Context())
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentFlags().String("config", "", "Config URL (YAML), any afs supported location")
	cmd.PersistentFlags().String("region", "", "AWS region")
	cmd.PersistentFlags().String("endpoint", "", "Custom S3 endpoint, e.g. http://localhost:4566")
	cmd.PersistentFlags().Bool("path-style", false, "Use path style bucket addressing")
	cmd.PersistentFlags().Bool("legacy", false, "Register legacy action names")
	cmd.PersistentFlags().String("trace-file", "", "Write OpenTelemetry spans to file")

	cmd.AddCommand(
		NewActionsCmd(),
		NewExecCmd(),
		NewRunCmd(),
	)
	return cmd
}
