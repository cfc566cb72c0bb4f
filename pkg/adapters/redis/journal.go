// Package redis persists the command journal in Redis, for setups where
// several editor sessions or an external dashboard share one history.
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	backend "github.com/redis/go-redis/v9"

	"github.com/kuroyasouiti/unityforge/pkg/journal"
)

// Journal implements journal.Store on a Redis list.
type Journal struct {
	client *backend.Client
	key    string
	cap    int64
}

// Option configures a Journal.
type Option func(*Journal)

// WithKey overrides the Redis list key.
func WithKey(key string) Option {
	return func(j *Journal) { j.key = key }
}

// WithCapacity bounds the retained history.
func WithCapacity(n int64) Option {
	return func(j *Journal) { j.cap = n }
}

// New creates a journal talking to the given address.
func New(address string, opts ...Option) *Journal {
	return NewFromClient(backend.NewClient(&backend.Options{Addr: address}), opts...)
}

// NewFromClient creates a journal over an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Journal {
	j := &Journal{client: client, key: "unityforge:journal", cap: 1000}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Record pushes the entry and trims the list to capacity.
func (j *Journal) Record(ctx context.Context, e journal.Entry) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal journal entry: %w", err)
	}
	pipe := j.client.TxPipeline()
	pipe.LPush(ctx, j.key, raw)
	pipe.LTrim(ctx, j.key, 0, j.cap-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record journal entry: %w", err)
	}
	return nil
}

// Recent returns up to n entries, newest first.
func (j *Journal) Recent(ctx context.Context, n int) ([]journal.Entry, error) {
	if n <= 0 {
		n = int(j.cap)
	}
	raws, err := j.client.LRange(ctx, j.key, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	out := make([]journal.Entry, 0, len(raws))
	for _, raw := range raws {
		var e journal.Entry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
