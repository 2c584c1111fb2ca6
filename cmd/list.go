package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var page int
	var width int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show one page of the catalog",
		Example: `  showroom list
  showroom list --page 2 --width 1280`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close(cmd.Context())

			rt.app.SetViewportWidth(width)
			for i := 1; i < page; i++ {
				if !rt.app.NextPage() {
					break
				}
			}

			view := rt.app.Page()
			if view.Total == 0 {
				fmt.Println("The catalog is empty.")
				return nil
			}

			fmt.Printf("Page %d of %d (%d products)\n", view.CurrentPage, view.TotalPages, view.Total)
			fmt.Println("========================================")
			for _, card := range view.Items {
				fmt.Printf("\n[%s] %s\n", card.ID, card.Title)
				fmt.Printf("  Price:  %s\n", card.Price)
				fmt.Printf("  Images: %d\n", len(card.Images))
				fmt.Printf("  Link:   %s\n", card.OriginalURL)
				if card.PhoneNumber != "" {
					fmt.Printf("  Phone:  %s\n", card.PhoneNumber)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page to show")
	cmd.Flags().IntVar(&width, "width", 0, "Viewport width in pixels, 1024 or more shows 12 per page")

	return cmd
}
