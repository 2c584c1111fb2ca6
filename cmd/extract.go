package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/showroom-catalog/showroom/internal/showroom"
)

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "extract <url>",
		Short:   "Extract a listing and print it without saving",
		Args:    cobra.ExactArgs(1),
		Example: `  showroom extract https://www.avito.ma/fr/casablanca/velos/velo_route_123.htm`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close(cmd.Context())

			draft, err := rt.app.Submit(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", showroom.UserMessage(err), err)
			}
			rt.app.CancelDraft()

			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			if err := enc.Encode(draft); err != nil {
				return fmt.Errorf("failed to marshal YAML: %w", err)
			}
			return enc.Close()
		},
	}

	return cmd
}
