package app

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/GoFrontPage/GoFrontPage/internal/db/controller/content"
	"github.com/GoFrontPage/GoFrontPage/internal/db/models"
	"github.com/GoFrontPage/GoFrontPage/internal/db/open"
	"github.com/GoFrontPage/GoFrontPage/internal/frontpage"
)

var (
	listType   string //nolint:gochecknoglobals
	listStatus string //nolint:gochecknoglobals
	itemType   string //nolint:gochecknoglobals
	itemStatus string //nolint:gochecknoglobals
	itemTitle  string //nolint:gochecknoglobals
	itemBody   string //nolint:gochecknoglobals

	itemCmd = &cobra.Command{ //nolint:gochecknoglobals
		Use:   "item",
		Short: "List and create content items",
	}

	itemListCmd = &cobra.Command{ //nolint:gochecknoglobals
		Use:   "list",
		Short: "List content items, newest first",
		Args:  cobra.NoArgs,
		RunE:  listItems,
	}

	itemCreateCmd = &cobra.Command{ //nolint:gochecknoglobals
		Use:   "create",
		Short: "Create a content item",
		Args:  cobra.NoArgs,
		RunE:  createItem,
	}

	itemStatusCmd = &cobra.Command{ //nolint:gochecknoglobals
		Use:   "status <item-id> <publish|draft|private|trash>",
		Short: "Change the status of a content item",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE:  setItemStatus,
	}
)

func init() { //nolint:gochecknoinits
	itemListCmd.Flags().StringVar(&listType, "type", "", "Only list items of this content type")
	itemListCmd.Flags().StringVar(&listStatus, "status", "", "Only list items with this status")

	itemCreateCmd.Flags().StringVar(&itemType, "type", "post", "Content type")
	itemCreateCmd.Flags().StringVar(&itemStatus, "status", models.StatusPublish, "Status")
	itemCreateCmd.Flags().StringVar(&itemTitle, "title", "", "Title")
	itemCreateCmd.Flags().StringVar(&itemBody, "body", "", "Body text")
	_ = itemCreateCmd.MarkFlagRequired("title")

	itemCmd.AddCommand(itemListCmd, itemCreateCmd, itemStatusCmd)
	rootCmd.AddCommand(itemCmd)
}

func listItems(cmd *cobra.Command, _ []string) error {
	ctx := cmdContext(cmd)

	db, err := open.DB(&cfg)
	if err != nil {
		return err //nolint:wrapcheck
	}

	items, err := content.List(ctx, db, content.Filter{Type: listType, Status: listStatus})
	if err != nil {
		return err //nolint:wrapcheck
	}

	rule := frontpage.NewRule(frontpage.NewStore(db), content.NewResolver(db, &cfg))

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0) //nolint:mnd
	_, _ = fmt.Fprintln(w, "ID\tTYPE\tSTATUS\tTITLE\tSTATES")

	for _, item := range items {
		states := rule.DecorateStates(ctx, frontpage.StatusStates(item.Status), item.ID)

		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%v\n", item.ID, item.Type, item.Status, item.Title, states.Labels())
	}

	return w.Flush() //nolint:wrapcheck
}

func createItem(cmd *cobra.Command, _ []string) error {
	if _, ok := cfg.ContentType(itemType); !ok {
		return fmt.Errorf("unknown content type %q", itemType)
	}

	db, err := open.DB(&cfg)
	if err != nil {
		return err //nolint:wrapcheck
	}

	item := models.Item{Type: itemType, Status: itemStatus, Title: itemTitle, Body: itemBody}
	if err = content.Create(cmdContext(cmd), db, &item); err != nil {
		return err //nolint:wrapcheck
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created %s #%d %q\n", item.Type, item.ID, item.Title)

	return nil
}

func setItemStatus(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid item id %q", args[0])
	}

	db, err := open.DB(&cfg)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if err = content.SetStatus(cmdContext(cmd), db, id, args[1]); err != nil {
		return err //nolint:wrapcheck
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "item #%d is now %s\n", id, args[1])

	return nil
}
