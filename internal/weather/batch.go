package weather

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// BatchResult is the outcome for one key of a batch. Exactly one of Value
// and Error is set.
type BatchResult[T any] struct {
	Key   string `json:"key"`
	Value *T     `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

// OK reports whether the key resolved successfully.
func (r BatchResult[T]) OK() bool {
	return r.Value != nil
}

// ResolveFunc resolves a single key.
type ResolveFunc[T any] func(ctx context.Context, key string) (T, error)

// Aggregator resolves many keys independently. A failing key only affects its
// own BatchResult.
type Aggregator[T any] struct {
	resolve ResolveFunc[T]
	limit   int
	logger  *slog.Logger
}

// NewAggregator creates an Aggregator that runs at most limit resolves at a
// time. limit <= 0 means unbounded.
func NewAggregator[T any](resolve ResolveFunc[T], limit int, logger *slog.Logger) *Aggregator[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator[T]{resolve: resolve, limit: limit, logger: logger}
}

// ResolveBatch returns one result per key, in input order.
func (a *Aggregator[T]) ResolveBatch(ctx context.Context, keys []string) []BatchResult[T] {
	results := make([]BatchResult[T], len(keys))

	var g errgroup.Group
	if a.limit > 0 {
		g.SetLimit(a.limit)
	}
	for i, key := range keys {
		g.Go(func() error {
			results[i] = a.resolveOne(ctx, key)
			// Failures live in results[i]; the group itself never fails.
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (a *Aggregator[T]) resolveOne(ctx context.Context, key string) (res BatchResult[T]) {
	res.Key = key
	defer func() {
		if p := recover(); p != nil {
			a.logger.Error("batch item panicked", "key", key, "panic", p)
			res = BatchResult[T]{Key: key, Error: fmt.Sprintf("internal error resolving %q", key)}
		}
	}()

	v, err := a.resolve(ctx, key)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = KindOf(err).String()
		}
		a.logger.Debug("batch item failed", "key", key, "kind", KindOf(err).String(), "error", err)
		return BatchResult[T]{Key: key, Error: msg}
	}
	return BatchResult[T]{Key: key, Value: &v}
}
