package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/showroom-catalog/showroom/internal/export"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Add products from a JSON, JSONL, YAML or Parquet file",
		Long: `Adds the products found in a file to the front of the catalog.

Products whose id is already in the catalog are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := export.ReadFile(args[0])
			if err != nil {
				return err
			}

			rt, err := newRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close(cmd.Context())

			added := rt.app.Import(cmd.Context(), products)
			fmt.Printf("Imported %d of %d products\n", added, len(products))
			return nil
		},
	}
}
