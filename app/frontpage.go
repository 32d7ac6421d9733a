package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/GoFrontPage/GoFrontPage/internal/db/controller/content"
	"github.com/GoFrontPage/GoFrontPage/internal/db/controller/setting"
	"github.com/GoFrontPage/GoFrontPage/internal/db/open"
	"github.com/GoFrontPage/GoFrontPage/internal/frontpage"
)

var (
	frontPageCmd = &cobra.Command{ //nolint:gochecknoglobals
		Use:   "front-page",
		Short: "Show or change the extended front page options",
		Long: `Show or change the extended front page options.

These commands write to the database directly. A running server caches the
options for Site.OptionsCacheTTL, so a change made here shows on "/" once that
cache expires. Changes saved from the reading settings screen show at once.`,
	}

	frontPageShowCmd = &cobra.Command{ //nolint:gochecknoglobals
		Use:   "show",
		Short: "Print the stored options and the resulting front page",
		Args:  cobra.NoArgs,
		RunE:  withStore(showFrontPage),
	}

	frontPageSetCmd = &cobra.Command{ //nolint:gochecknoglobals
		Use:   "set <item-id>",
		Short: "Choose the front page item and enable the override",
		Args:  cobra.ExactArgs(1),
		RunE:  withStore(setFrontPage),
	}

	frontPageEnableCmd = &cobra.Command{ //nolint:gochecknoglobals
		Use:   "enable",
		Short: "Enable the override, keeping the chosen item",
		Args:  cobra.NoArgs,
		RunE:  withStore(toggleFrontPage(true)),
	}

	frontPageDisableCmd = &cobra.Command{ //nolint:gochecknoglobals
		Use:   "disable",
		Short: "Disable the override, keeping the chosen item",
		Args:  cobra.NoArgs,
		RunE:  withStore(toggleFrontPage(false)),
	}

	frontPageResetCmd = &cobra.Command{ //nolint:gochecknoglobals
		Use:   "reset",
		Short: "Remove both stored options",
		Args:  cobra.NoArgs,
		RunE:  withStore(resetFrontPage),
	}
)

func init() { //nolint:gochecknoinits
	frontPageCmd.AddCommand(frontPageShowCmd, frontPageSetCmd, frontPageEnableCmd, frontPageDisableCmd, frontPageResetCmd)
	rootCmd.AddCommand(frontPageCmd)
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

type storeFunc func(cmd *cobra.Command, args []string, db *gorm.DB, store *frontpage.Store) error

func withStore(fn storeFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		db, err := open.DB(&cfg)
		if err != nil {
			return err //nolint:wrapcheck
		}

		return fn(cmd, args, db, frontpage.NewStore(db))
	}
}

func showFrontPage(cmd *cobra.Command, _ []string, db *gorm.DB, store *frontpage.Store) error {
	ctx := cmdContext(cmd)

	opts, err := store.Options(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "%s: %t\n", frontpage.OptionEnabled, opts.Enabled)
	_, _ = fmt.Fprintf(out, "%s: %d\n", frontpage.OptionTargetID, opts.TargetID)

	rule := frontpage.NewRule(store, content.NewResolver(db, &cfg))
	decision := rule.Evaluate(ctx, frontpage.Request{FrontPage: true, MainQuery: true})

	if !decision.Override {
		_, _ = fmt.Fprintf(out, "front page: default (%s)\n", decision.Reason)
		return nil
	}

	item, err := content.Get(ctx, db, decision.ItemID)
	if err != nil {
		return err //nolint:wrapcheck
	}

	_, _ = fmt.Fprintf(out, "front page: %s #%d %q\n", item.Type, item.ID, item.Title)

	return nil
}

func setFrontPage(cmd *cobra.Command, args []string, db *gorm.DB, store *frontpage.Store) error {
	ctx := cmdContext(cmd)

	opts := frontpage.SanitizeOptions("1", args[0])
	if opts.TargetID == 0 {
		return fmt.Errorf("invalid item id %q", args[0])
	}

	if _, err := content.Get(ctx, db, opts.TargetID); err != nil {
		return fmt.Errorf("item %s: %w", strconv.FormatUint(opts.TargetID, 10), err)
	}

	if err := store.Save(ctx, opts); err != nil {
		return err //nolint:wrapcheck
	}

	return showFrontPage(cmd, nil, db, store)
}

func toggleFrontPage(enabled bool) storeFunc {
	return func(cmd *cobra.Command, _ []string, db *gorm.DB, store *frontpage.Store) error {
		ctx := cmdContext(cmd)

		opts, err := store.Options(ctx)
		if err != nil {
			return err //nolint:wrapcheck
		}

		opts.Enabled = enabled

		if err = store.Save(ctx, opts); err != nil {
			return err //nolint:wrapcheck
		}

		return showFrontPage(cmd, nil, db, store)
	}
}

func resetFrontPage(cmd *cobra.Command, _ []string, db *gorm.DB, store *frontpage.Store) error {
	ctx := cmdContext(cmd)

	for _, name := range []string{frontpage.OptionEnabled, frontpage.OptionTargetID} {
		if err := setting.DeleteByName(ctx, db, name); err != nil && !errors.Is(err, setting.ErrSettingNotFound) {
			return err //nolint:wrapcheck
		}
	}

	return showFrontPage(cmd, nil, db, store)
}
