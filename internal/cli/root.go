package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khulnasoft/startpage/internal/version"
)

// NewRootCmd builds the startpage command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "startpage",
		Short: "Serve the CyberPot landing page",
		Long: "startpage serves the dashboard landing page: a greeting, a clock and two\n" +
			"navigation lists, all driven by one landing document loaded at startup.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.Version = version.String()
	root.SetVersionTemplate("{{.Version}}\n")

	root.AddCommand(
		newServeCmd(),
		newValidateCmd(),
		newPrintCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print startpage version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return err
		},
	}
}
