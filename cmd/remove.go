package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a product from the catalog",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close(cmd.Context())

			if !rt.app.Remove(cmd.Context(), args[0]) {
				return fmt.Errorf("product not found: %s", args[0])
			}
			fmt.Printf("Removed %s\n", args[0])
			return nil
		},
	}
}
