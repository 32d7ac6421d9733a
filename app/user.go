package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoFrontPage/GoFrontPage/internal/db/controller/user"
	"github.com/GoFrontPage/GoFrontPage/internal/db/open"
)

var (
	userCmd = &cobra.Command{ //nolint:gochecknoglobals
		Use:   "user",
		Short: "Manage administrator accounts",
	}

	userCreateCmd = &cobra.Command{ //nolint:gochecknoglobals
		Use:   "create <username> <password>",
		Short: "Create an administrator",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := open.DB(&cfg)
			if err != nil {
				return err //nolint:wrapcheck
			}

			u, err := user.Create(cmdContext(cmd), db, args[0], args[1])
			if err != nil {
				return err //nolint:wrapcheck
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created user %s\n", u.Username)

			return nil
		},
	}

	userEnableCmd = &cobra.Command{ //nolint:gochecknoglobals
		Use:   "enable <username>",
		Short: "Allow an administrator to log in",
		Args:  cobra.ExactArgs(1),
		RunE:  setUserActive(true),
	}

	userDisableCmd = &cobra.Command{ //nolint:gochecknoglobals
		Use:   "disable <username>",
		Short: "Stop an administrator from logging in",
		Args:  cobra.ExactArgs(1),
		RunE:  setUserActive(false),
	}

	userPasswordCmd = &cobra.Command{ //nolint:gochecknoglobals
		Use:   "password <username> <password>",
		Short: "Set the password of an administrator",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := open.DB(&cfg)
			if err != nil {
				return err //nolint:wrapcheck
			}

			if err = user.SetPassword(cmdContext(cmd), db, args[0], args[1]); err != nil {
				return err //nolint:wrapcheck
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "password of %s changed\n", args[0])

			return nil
		},
	}
)

func init() { //nolint:gochecknoinits
	userCmd.AddCommand(userCreateCmd, userPasswordCmd, userEnableCmd, userDisableCmd)
	rootCmd.AddCommand(userCmd)
}

func setUserActive(active bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		db, err := open.DB(&cfg)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if err = user.SetActive(cmdContext(cmd), db, args[0], active); err != nil {
			return err //nolint:wrapcheck
		}

		state := "disabled"
		if active {
			state = "enabled"
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "user %s %s\n", args[0], state)

		return nil
	}
}
