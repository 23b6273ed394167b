package weather

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBatch_PreservesLengthAndOrder(t *testing.T) {
	keys := []string{"paris", "london", "tokyo", "oslo", "lima", "rome"}
	agg := NewAggregator(func(_ context.Context, key string) (string, error) {
		// Finish in reverse order to catch position mix-ups.
		time.Sleep(time.Duration(len(key)) * time.Millisecond)
		return "v-" + key, nil
	}, 0, nil)

	got := agg.ResolveBatch(context.Background(), keys)

	require.Len(t, got, len(keys))
	for i, k := range keys {
		assert.Equal(t, k, got[i].Key)
		require.NotNil(t, got[i].Value)
		assert.Equal(t, "v-"+k, *got[i].Value)
		assert.Empty(t, got[i].Error)
	}
}

func TestResolveBatch_IsolatesFailures(t *testing.T) {
	keys := []string{"a", "b", "bad", "c", "d"}
	agg := NewAggregator(func(_ context.Context, key string) (int, error) {
		if key == "bad" {
			return 0, NewError(KindNotFound, "test", `city "bad" not found`, nil)
		}
		return len(key), nil
	}, 2, nil)

	got := agg.ResolveBatch(context.Background(), keys)

	require.Len(t, got, 5)
	failures := 0
	for i, r := range got {
		assert.Equal(t, keys[i], r.Key)
		// Exactly one of value/error.
		assert.NotEqual(t, r.Value == nil, r.Error == "", "key %s", r.Key)
		if !r.OK() {
			failures++
			assert.Equal(t, "bad", r.Key)
			assert.Contains(t, r.Error, "not found")
		}
	}
	assert.Equal(t, 1, failures)
}

func TestResolveBatch_EmptyErrorMessageStillReported(t *testing.T) {
	agg := NewAggregator(func(_ context.Context, _ string) (int, error) {
		return 0, &Error{Kind: KindTimeout, Msg: ""}
	}, 0, nil)

	got := agg.ResolveBatch(context.Background(), []string{"x"})

	assert.Nil(t, got[0].Value)
	assert.Equal(t, "timeout", got[0].Error)
}

func TestResolveBatch_PanicIsContained(t *testing.T) {
	agg := NewAggregator(func(_ context.Context, key string) (int, error) {
		if key == "boom" {
			panic("unexpected")
		}
		return 1, nil
	}, 0, nil)

	got := agg.ResolveBatch(context.Background(), []string{"ok", "boom", "ok2"})

	assert.True(t, got[0].OK())
	assert.False(t, got[1].OK())
	assert.Contains(t, got[1].Error, "boom")
	assert.True(t, got[2].OK())
}

func TestResolveBatch_RespectsConcurrencyLimit(t *testing.T) {
	var inFlight, peak atomic.Int32
	agg := NewAggregator(func(_ context.Context, _ string) (int, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return 0, nil
	}, 3, nil)

	keys := make([]string, 20)
	for i := range keys {
		keys[i] = fmt.Sprint(i)
	}
	agg.ResolveBatch(context.Background(), keys)

	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestResolveBatch_Empty(t *testing.T) {
	agg := NewAggregator(func(_ context.Context, _ string) (int, error) {
		return 0, errors.New("never called")
	}, 0, nil)

	got := agg.ResolveBatch(context.Background(), nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
