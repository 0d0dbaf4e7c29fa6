// Package sink delivers validated tax submissions to their destination.
package sink

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/taxform/internal/common"
	"github.com/Veraticus/taxform/internal/model"
	"github.com/Veraticus/taxform/internal/service"
	"github.com/redis/go-redis/v9"
)

// Sink kinds accepted by sink.kind.
const (
	KindLog   = "log"
	KindRedis = "redis"
)

// Config selects and configures the submission sink.
type Config struct {
	Kind  string
	Redis RedisConfig
}

// RedisConfig configures the Redis list sink.
type RedisConfig struct {
	Addr     string
	Password string
	Key      string
	DB       int
	Timeout  time.Duration
}

// DefaultRedisKey is the list submissions are pushed onto.
const DefaultRedisKey = "taxform:submissions"

// New builds the configured sink. The returned close function is never nil.
func New(cfg Config) (service.SubmissionSink, func() error, error) {
	switch cfg.Kind {
	case KindLog, "":
		return NewLogSink(nil), func() error { return nil }, nil

	case KindRedis:
		if cfg.Redis.Addr == "" {
			return nil, nil, fmt.Errorf("%w: sink.redis.addr is required", common.ErrMissingConfig)
		}
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		s := NewRedisSink(client, cfg.Redis.Key)
		if cfg.Redis.Timeout > 0 {
			s.timeout = cfg.Redis.Timeout
		}
		return s, client.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: unknown sink kind %q", common.ErrInvalidConfig, cfg.Kind)
	}
}

// LogSink writes each submission to a structured logger.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a sink that logs to logger. A nil logger means whatever
// slog.Default is at the time of each submission.
func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Submit logs the payload.
func (s *LogSink) Submit(ctx context.Context, sub model.TaxSubmission) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	logger := s.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "tax submitted",
		"name", sub.Name,
		"rate", sub.Rate,
		"search", sub.Search,
		"applied_to", sub.AppliedTo.String(),
		"applicable_items", sub.ApplicableItems,
	)
	return nil
}

// Func adapts a function into a sink.
type Func func(ctx context.Context, sub model.TaxSubmission) error

// Submit calls f.
func (f Func) Submit(ctx context.Context, sub model.TaxSubmission) error {
	return f(ctx, sub)
}
