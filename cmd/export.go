package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/showroom-catalog/showroom/internal/export"
)

func newExportCmd() *cobra.Command {
	var output string
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog to a file",
		Example: `  # JSON to stdout
  showroom export

  # Format taken from the extension
  showroom export --output catalog.parquet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = "json"
				if output != "" {
					format = output
				}
			}
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			rt, err := newRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close(cmd.Context())

			var w io.Writer = os.Stdout
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer file.Close()
				w = file
			}

			products := rt.app.Products()
			if err := export.Write(w, f, products); err != nil {
				return err
			}

			if output != "" {
				fmt.Fprintf(os.Stderr, "Exported %d products to %s\n", len(products), output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "json, jsonl, yaml, parquet or csv (default from --output extension, else json)")

	return cmd
}
