package app

import (
	"github.com/spf13/cobra"

	"github.com/GoFrontPage/GoFrontPage/internal/daemon"
)

var (
	browseStatic bool //nolint:gochecknoglobals

	startCmd = &cobra.Command{ //nolint:gochecknoglobals
		Use:   "start",
		Short: "Start the GoFrontPage web service",
		RunE: func(_ *cobra.Command, _ []string) error {
			if browseStatic {
				cfg.Webserver.BrowseStatic = true
			}

			d, err := daemon.New(&cfg)
			if err != nil {
				return err //nolint:wrapcheck
			}

			return d.Start() //nolint:wrapcheck
		},
	}
)

func init() { //nolint:gochecknoinits
	startCmd.Flags().BoolVar(
		&browseStatic,
		"browse",
		false,
		"Enable static file browsing (for development purposes only)",
	)

	rootCmd.AddCommand(startCmd)
}
