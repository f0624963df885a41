package cli

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/khulnasoft/startpage/internal/app"
	"github.com/khulnasoft/startpage/internal/config"
)

func newServeCmd() *cobra.Command {
	var envFiles []string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long: "Load the landing document (STARTPAGE_DOCUMENT_FILE or the built-in default),\n" +
			"then serve it until SIGINT/SIGTERM. Settings come from STARTPAGE_* environment variables.",
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := loadEnvFiles(envFiles); err != nil {
				return err
			}

			a, err := app.New(config.Load())
			if err != nil {
				return err
			}
			return a.Run()
		},
	}

	cmd.Flags().StringSliceVar(&envFiles, "env-file", nil, "dotenv file(s) to load before reading the environment (existing variables win)")
	return cmd
}

func loadEnvFiles(paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("godotenv.Load for paths %v: %w", paths, err)
	}
	return nil
}
