package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/showroom-catalog/showroom/internal/showroom"
)

func newAddCmd() *cobra.Command {
	var extraImages []string

	cmd := &cobra.Command{
		Use:   "add <url>",
		Short: "Extract a listing and publish it to the catalog",
		Args:  cobra.ExactArgs(1),
		Example: `  showroom add https://www.avito.ma/fr/rabat/meubles/canape_456.htm

  # Attach extra photos before publishing
  showroom add https://www.avito.ma/fr/rabat/meubles/canape_456.htm --image https://example.com/side.jpg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close(cmd.Context())

			if _, err := rt.app.Submit(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("%s: %w", showroom.UserMessage(err), err)
			}

			if len(extraImages) > 0 {
				if _, err := rt.app.AddDraftImages(extraImages); err != nil {
					return err
				}
			}

			p, err := rt.app.PublishDraft(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Published %s\n", p.ID)
			fmt.Printf("  Title:  %s\n", p.Title)
			fmt.Printf("  Price:  %s\n", p.Price)
			fmt.Printf("  Images: %d\n", len(p.Images))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&extraImages, "image", nil, "Extra image URL to attach (repeatable)")

	return cmd
}
