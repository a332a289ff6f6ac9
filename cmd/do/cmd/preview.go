package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/templui/folio/internal/config"
	"github.com/templui/folio/internal/ui"
	"github.com/templui/folio/internal/ui/components/navbar"
)

func PreviewCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render components to stdout",
	}

	cmd.AddCommand(previewNavbarCmd(cfg))
	return cmd
}

func previewNavbarCmd(cfg *config.Config) *cobra.Command {
	var class string

	cmd := &cobra.Command{
		Use:   "navbar",
		Short: "Render the navigation bar",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := navbar.Navbar(navbar.Props{
				Class:     class,
				GitHubURL: cfg.GitHubURL,
			})
			err := ui.Render(cmd.Context(), cmd.OutOrStdout(), c)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout())
			return err
		},
	}

	cmd.Flags().StringVar(&class, "class", "", "class for the <nav> element")
	return cmd
}
