package main

import (
	"fmt"
	"io"

	"github.com/Veraticus/taxform/internal/cli"
	"github.com/Veraticus/taxform/internal/common"
	"github.com/Veraticus/taxform/internal/config"
	"github.com/Veraticus/taxform/internal/tui"
	"github.com/Veraticus/taxform/internal/tui/themes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Open the Add Tax form",
		Long: `Open the interactive Add Tax form.

Enter a name and a rate, choose whether the tax applies to every item in the
collection or to specific items, then submit.`,
		RunE: runAdd,
	}

	cmd.Flags().String("theme", "", "color theme (default, catppuccin-mocha)")
	_ = viper.BindPFlag("ui.theme", cmd.Flags().Lookup("theme"))

	return cmd
}

func runAdd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	items, err := loadItems(ctx, cfg)
	if err != nil {
		return err
	}

	s, closeSink, err := openSink(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeSink() }()

	release, err := holdFormLogs(cfg)
	if err != nil {
		return err
	}

	final, err := tui.Run(ctx,
		tui.WithItems(items),
		tui.WithSink(s),
		tui.WithTheme(themes.GetTheme(cfg.UI.Theme)),
	)
	if flushErr := release(cmd.ErrOrStderr()); flushErr != nil && err == nil {
		err = flushErr
	}
	if err != nil {
		return err
	}

	if sub, ok := final.LastSubmission(); ok {
		fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Tax %q submitted (%d submission(s) this session)", sub.Name, final.Submitted())))
	}
	return nil
}

// holdFormLogs keeps stderr logging off the alternate screen while the form
// runs. Logs written to logging.file need no holding.
func holdFormLogs(cfg config.Config) (func(io.Writer) error, error) {
	if cfg.Logging.File != "" {
		return func(io.Writer) error { return nil }, nil
	}

	level, err := common.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	return common.HoldLogs(level, cfg.Logging.Format)
}
