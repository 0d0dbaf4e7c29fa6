package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Veraticus/taxform/internal/catalog"
	"github.com/Veraticus/taxform/internal/cli"
	"github.com/Veraticus/taxform/internal/common"
	"github.com/Veraticus/taxform/internal/model"
	"github.com/Veraticus/taxform/internal/taxform"
	"github.com/spf13/cobra"
)

func submitCmd() *cobra.Command {
	var (
		values   taxform.Values
		itemIDs  []int
		applyAll bool
		printOut bool
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a tax without opening the form",
		Long: `Validate a tax the same way the form does and hand it to the configured sink.

With --all the tax applies to every catalog item. Otherwise it applies to the
items named by --item, in the order given.`,
		Example: `  taxform submit --name VAT --rate 20 --all
  taxform submit --name "Luxury" --rate 7.5 --item 14864 --item 14873`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if applyAll && len(itemIDs) > 0 {
				return common.NewUserError("--all and --item cannot be combined", common.ErrInvalidConfig)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			state := catalog.ScopeState{
				Scope:     model.ApplySome,
				Selection: catalog.NewSelection(itemIDs...),
			}
			if applyAll {
				items, err := loadItems(ctx, cfg)
				if err != nil {
					return err
				}
				state.SwitchScope(model.ApplyAll, items)
			}

			form := taxform.NewFormWithValues(values)
			sub, err := form.Submit(state)
			if err != nil {
				printFieldErrors(cmd.ErrOrStderr(), err)
				return common.NewUserError("tax was not submitted", err)
			}

			s, closeSink, err := openSink(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = closeSink() }()

			if err := s.Submit(ctx, sub); err != nil {
				return fmt.Errorf("failed to submit tax: %w", err)
			}

			out := cmd.OutOrStdout()
			if printOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(sub)
			}
			fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Tax %q submitted for %d item(s)", sub.Name, len(sub.ApplicableItems))))
			return nil
		},
	}

	cmd.Flags().StringVar(&values.Name, "name", "", "tax name")
	cmd.Flags().StringVar(&values.Rate, "rate", "", "tax rate, a percentage from 0 to 100")
	cmd.Flags().StringVar(&values.Search, "search", "", "search text recorded with the submission")
	cmd.Flags().BoolVar(&applyAll, "all", false, "apply to all items in the collection")
	cmd.Flags().IntSliceVar(&itemIDs, "item", nil, "id of an item the tax applies to (repeatable)")
	cmd.Flags().BoolVar(&printOut, "print", false, "print the submitted payload as JSON")

	return cmd
}

func printFieldErrors(w io.Writer, err error) {
	var verr *common.ValidationError
	if !errors.As(err, &verr) {
		fmt.Fprintln(w, cli.FormatError(err.Error()))
		return
	}
	for _, fe := range verr.Fields {
		fmt.Fprintln(w, cli.FormatError(fmt.Sprintf("%s: %s", fe.Field, fe.Message)))
	}
}
