package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khulnasoft/startpage/internal/landing"
	"github.com/khulnasoft/startpage/internal/sources/document"
)

const documentFileEnv = "STARTPAGE_DOCUMENT_FILE"

// documentPath picks the explicit path, then STARTPAGE_DOCUMENT_FILE. Empty means built-in.
func documentPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return os.Getenv(documentFileEnv)
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a landing document without serving it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}

			doc, source, err := document.Resolve(documentPath(path))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "✅ %s is valid (%d + %d links)\n",
				source, len(doc.Lists.FirstList), len(doc.Lists.SecondList))
			return err
		},
	}
}

// outputFormat is a pflag.Value restricted to the document encodings.
type outputFormat string

const (
	formatYAML   outputFormat = "yaml"
	formatJSON   outputFormat = "json"
	formatScript outputFormat = "js"
)

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Set(v string) error {
	switch outputFormat(strings.ToLower(v)) {
	case formatYAML, formatJSON, formatScript:
		*f = outputFormat(strings.ToLower(v))
		return nil
	default:
		return fmt.Errorf("must be one of yaml|json|js")
	}
}

func (f *outputFormat) Type() string { return "format" }

func (f outputFormat) encoder() func(*landing.Document) ([]byte, error) {
	switch f {
	case formatJSON:
		return landing.EncodeJSON
	case formatScript:
		return landing.EncodeScript
	default:
		return landing.EncodeYAML
	}
}

func newPrintCmd() *cobra.Command {
	var (
		file   string
		format = formatYAML
	)

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the effective landing document",
		Long: "Print the document the server would load, as YAML, JSON or the\n" +
			"`const CONFIG = {...};` script served at /config.js.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, _, err := document.Resolve(documentPath(file))
			if err != nil {
				return err
			}

			out, err := format.encoder()(doc)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "document file (default: $"+documentFileEnv+" or the built-in document)")
	cmd.Flags().VarP(&format, "format", "o", "output format: yaml|json|js")
	return cmd
}
