package config

import (
	"fmt"
	"time"

	"github.com/Veraticus/taxform/internal/catalog"
	"github.com/Veraticus/taxform/internal/common"
	"github.com/Veraticus/taxform/internal/sink"
	"github.com/spf13/viper"
)

// Config is the typed view of the taxform configuration keys.
type Config struct {
	Logging LoggingConfig
	UI      UIConfig
	Catalog catalog.Options
	Sink    sink.Config
}

// LoggingConfig controls the global logger.
type LoggingConfig struct {
	Level  string
	Format string
	File   string
}

// UIConfig controls the interactive form.
type UIConfig struct {
	Theme string
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", "")
	v.SetDefault("catalog.source", catalog.SourceFixture)
	v.SetDefault("catalog.path", "")
	v.SetDefault("sink.kind", sink.KindLog)
	v.SetDefault("sink.redis.addr", "localhost:6379")
	v.SetDefault("sink.redis.password", "")
	v.SetDefault("sink.redis.db", 0)
	v.SetDefault("sink.redis.key", sink.DefaultRedisKey)
	v.SetDefault("sink.redis.timeout", 5*time.Second)
	v.SetDefault("ui.theme", "default")
}

// Load reads the configuration from v and validates the enumerated keys.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
			File:   ExpandPath(v.GetString("logging.file")),
		},
		UI: UIConfig{
			Theme: v.GetString("ui.theme"),
		},
		Catalog: catalog.Options{
			Source: v.GetString("catalog.source"),
			Path:   ExpandPath(v.GetString("catalog.path")),
		},
		Sink: sink.Config{
			Kind: v.GetString("sink.kind"),
			Redis: sink.RedisConfig{
				Addr:     v.GetString("sink.redis.addr"),
				Password: v.GetString("sink.redis.password"),
				DB:       v.GetInt("sink.redis.db"),
				Key:      v.GetString("sink.redis.key"),
				Timeout:  v.GetDuration("sink.redis.timeout"),
			},
		},
	}

	if _, err := common.ParseLevel(cfg.Logging.Level); err != nil {
		return Config{}, err
	}

	switch cfg.Catalog.Source {
	case catalog.SourceFixture, catalog.SourceFile, catalog.SourceSQLite:
	default:
		return Config{}, fmt.Errorf("%w: catalog.source must be one of %s, %s, %s; got %q",
			common.ErrInvalidConfig, catalog.SourceFixture, catalog.SourceFile, catalog.SourceSQLite, cfg.Catalog.Source)
	}

	switch cfg.Sink.Kind {
	case sink.KindLog, sink.KindRedis:
	default:
		return Config{}, fmt.Errorf("%w: sink.kind must be %s or %s; got %q",
			common.ErrInvalidConfig, sink.KindLog, sink.KindRedis, cfg.Sink.Kind)
	}

	return cfg, nil
}
