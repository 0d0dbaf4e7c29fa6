package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/taxform/internal/catalog"
	"github.com/Veraticus/taxform/internal/cli"
	"github.com/Veraticus/taxform/internal/common"
	"github.com/Veraticus/taxform/internal/model"
	"github.com/Veraticus/taxform/internal/storage"
	"github.com/spf13/cobra"
)

func itemsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "List the item catalog",
		Long:  `Display every item a tax can apply to, grouped by category in catalog order.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			items, err := loadItems(ctx, cfg)
			if err != nil {
				return err
			}

			printItems(cmd.OutOrStdout(), items)
			return nil
		},
	}

	cmd.AddCommand(importItemsCmd())

	return cmd
}

func importItemsCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "import <items.json>",
		Short: "Load a JSON item list into the SQLite catalog",
		Long: `Replace the SQLite catalog with the items in a JSON file.

The file holds an array of {"id", "name", "category": {"name"}} objects. The
database defaults to catalog.path.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if dbPath == "" {
				dbPath = cfg.Catalog.Path
			}
			if dbPath == "" {
				return common.NewUserError("no catalog database; set catalog.path or pass --db", common.ErrMissingConfig)
			}

			items, err := catalog.FileSource{Path: args[0]}.Items(ctx)
			if err != nil {
				return err
			}

			store, err := storage.NewSQLiteStorage(dbPath)
			if err != nil {
				return fmt.Errorf("failed to open catalog database: %w", err)
			}
			defer store.Close()

			if err := store.Migrate(ctx); err != nil {
				return fmt.Errorf("failed to migrate catalog database: %w", err)
			}

			if err := store.ImportItems(ctx, items); err != nil {
				return fmt.Errorf("failed to import items: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Imported %d items into %s", len(items), store.Path())))
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "catalog database path (default: catalog.path)")

	return cmd
}

// printItems writes the catalog grouped the same way the form shows it.
func printItems(out io.Writer, items []model.Item) {
	if len(items) == 0 {
		fmt.Fprintln(out, cli.SubtleStyle.Render("The catalog has no items."))
		return
	}

	groups := catalog.GroupByCategory(items)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "%s\t%s\n",
		cli.TableHeaderStyle.Render("ID"),
		cli.TableHeaderStyle.Render("Name"))
	fmt.Fprintf(w, "%s\t%s\n",
		strings.Repeat("-", 6),
		strings.Repeat("-", 30))

	groups.Each(func(g catalog.Group) {
		fmt.Fprintf(w, "%s\t\n", cli.FormatCategory(g.Label, len(g.Items)))
		for _, item := range g.Items {
			fmt.Fprintf(w, "%d\t%s\n", item.ID, item.Name)
		}
	})
}
