package main

import (
	"context"
	"fmt"

	"github.com/Veraticus/taxform/internal/catalog"
	"github.com/Veraticus/taxform/internal/common"
	"github.com/Veraticus/taxform/internal/config"
	"github.com/Veraticus/taxform/internal/model"
	"github.com/Veraticus/taxform/internal/service"
	"github.com/Veraticus/taxform/internal/sink"
	"github.com/spf13/viper"
)

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return config.Config{}, common.NewUserError("invalid configuration", err)
	}
	return cfg, nil
}

func loadItems(ctx context.Context, cfg config.Config) ([]model.Item, error) {
	items, err := catalog.Load(ctx, cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to load item catalog: %w", err)
	}
	common.LogDebug("catalog loaded", common.Fields{
		"source": cfg.Catalog.Source,
		"items":  len(items),
	})
	return items, nil
}

func openSink(cfg config.Config) (service.SubmissionSink, func() error, error) {
	s, closeSink, err := sink.New(cfg.Sink)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up %s sink: %w", cfg.Sink.Kind, err)
	}
	return s, closeSink, nil
}
