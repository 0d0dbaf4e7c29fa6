package sink

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/Veraticus/taxform/internal/common"
	"github.com/Veraticus/taxform/internal/model"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Envelope wraps a submission on the Redis list.
type Envelope struct {
	SubmittedAt time.Time           `json:"submitted_at"`
	ID          string              `json:"id"`
	Payload     model.TaxSubmission `json:"payload"`
}

// RedisSink pushes JSON envelopes onto a Redis list for a downstream consumer.
type RedisSink struct {
	client  *redis.Client
	now     func() time.Time
	newID   func() string
	key     string
	retry   common.RetryOptions
	timeout time.Duration
}

// NewRedisSink creates a sink pushing onto key, or DefaultRedisKey when empty.
func NewRedisSink(client *redis.Client, key string) *RedisSink {
	if client == nil {
		panic("sink.NewRedisSink: client is nil")
	}
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisSink{
		client:  client,
		key:     key,
		now:     time.Now,
		newID:   uuid.NewString,
		timeout: 3 * time.Second,
		retry: common.RetryOptions{
			MaxAttempts:  3,
			InitialDelay: 100 * time.Millisecond,
			MaxDelay:     time.Second,
		},
	}
}

// Key returns the list the sink pushes onto.
func (s *RedisSink) Key() string {
	return s.key
}

// Submit pushes one envelope, retrying connection failures.
func (s *RedisSink) Submit(ctx context.Context, sub model.TaxSubmission) error {
	env := Envelope{
		ID:          s.newID(),
		SubmittedAt: s.now().UTC(),
		Payload:     sub,
	}
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to encode submission: %w", err)
	}

	err = common.WithRetry(ctx, func() error {
		pushCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		return classify(s.client.RPush(pushCtx, s.key, data).Err())
	}, s.retry)
	if err != nil {
		return fmt.Errorf("failed to push submission %s: %w", env.ID, err)
	}

	common.LogDebug("pushed submission", common.Fields{"id": env.ID, "key": s.key})
	return nil
}

// classify marks network failures as retryable.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", common.ErrSinkUnavailable, err)
	}
	return err
}
