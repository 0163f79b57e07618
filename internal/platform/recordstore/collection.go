package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// Collection is a typed accessor for the document stored under one key.
// A missing or malformed document yields the fallback value. A failed read is
// returned so callers never write back over data they could not see.
type Collection[T any] struct {
	medium   Medium
	key      string
	fallback func() T
	logger   *zap.Logger
}

func NewCollection[T any](medium Medium, key string, fallback func() T, logger *zap.Logger) Collection[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Collection[T]{medium: medium, key: key, fallback: fallback, logger: logger}
}

func (c Collection[T]) Key() string { return c.key }

func (c Collection[T]) Get(ctx context.Context) (T, error) {
	raw, ok, err := c.medium.Get(ctx, c.key)
	if err != nil {
		var zero T
		c.logger.Error("record read failed", zap.String("key", c.key), zap.Error(err))
		return zero, err
	}
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return c.fallback(), nil
	}
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		c.logger.Warn("record malformed, using default", zap.String("key", c.key), zap.Error(err))
		return c.fallback(), nil
	}
	return value, nil
}

func (c Collection[T]) Set(ctx context.Context, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.medium.Set(ctx, c.key, raw); err != nil {
		return err
	}
	c.logger.Debug("record written", zap.String("key", c.key), zap.Int("bytes", len(raw)))
	return nil
}

func (c Collection[T]) Clear(ctx context.Context) error {
	return c.medium.Delete(ctx, c.key)
}

// List returns a fallback producing an empty, non-nil slice.
func List[T any]() func() []T {
	return func() []T { return []T{} }
}
