package cache

import (
	"context"
	"time"
)

// Noop satisfies Cache when no Redis is configured.
// Every read is a miss and writes are discarded.
type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (n *Noop) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}

func (n *Noop) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (n *Noop) Delete(ctx context.Context, keys ...string) error {
	return nil
}

func (n *Noop) Ping(ctx context.Context) error {
	return nil
}
