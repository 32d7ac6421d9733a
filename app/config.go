package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoFrontPage/GoFrontPage/internal/config"
	"github.com/GoFrontPage/GoFrontPage/internal/db/controller/setting"
	"github.com/GoFrontPage/GoFrontPage/internal/db/open"
)

var (
	dumpJSON bool //nolint:gochecknoglobals

	configCmd = &cobra.Command{ //nolint:gochecknoglobals
		Use:   "config",
		Short: "Inspect the effective configuration and stored settings",
	}

	configDumpCmd = &cobra.Command{ //nolint:gochecknoglobals
		Use:   "dump",
		Short: "Print the configuration after defaults and overrides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dump := config.DumpConfig
			if dumpJSON {
				dump = config.DumpConfigJSON
			}

			out, err := dump(&cfg)
			if err != nil {
				return err //nolint:wrapcheck
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), out)

			return nil
		},
	}

	configSettingsCmd = &cobra.Command{ //nolint:gochecknoglobals
		Use:   "settings",
		Short: "List the options stored in the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := open.DB(&cfg)
			if err != nil {
				return err //nolint:wrapcheck
			}

			settings, err := setting.GetAll(cmdContext(cmd), db)
			if err != nil {
				return err //nolint:wrapcheck
			}

			for _, s := range settings {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s = %q\n", s.Name, s.Value)
			}

			return nil
		},
	}
)

func init() { //nolint:gochecknoinits
	configDumpCmd.Flags().BoolVar(&dumpJSON, "json", false, "Print JSON instead of TOML")

	configCmd.AddCommand(configDumpCmd, configSettingsCmd)
	rootCmd.AddCommand(configCmd)
}
