package fifo

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
)

// SplitBy separates a mixed stream into one stream per value of the data
// field key (e.g. a ticker). Entries keep their relative order. Entries
// without the field are grouped under "".
//
// keys are returned in alphabetical order.
func SplitBy(entries []Entry, key string) (keys []string, streams map[string][]Entry) {
	streams = make(map[string][]Entry)
	for _, e := range entries {
		var k string
		if v, ok := e.Get(key); ok {
			k = fmt.Sprint(v)
		}
		if _, exists := streams[k]; !exists {
			keys = append(keys, k)
		}
		streams[k] = append(streams[k], e)
	}
	slices.Sort(keys)
	return keys, streams
}

// ComputeAll computes one FIFO per stream, concurrently. Each stream gets its
// own FIFO, nothing is shared between them.
//
// It stops starting new computations as soon as ctx is done.
func ComputeAll(ctx context.Context, streams map[string][]Entry) (map[string]*FIFO, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	var mu sync.Mutex
	results := make(map[string]*FIFO, len(streams))
	for key, entries := range streams {
		if gctx.Err() != nil {
			break
		}
		key, entries := key, entries
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			f := New(entries)
			mu.Lock()
			results[key] = f
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("computing streams: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("computing streams: %w", err)
	}
	return results, nil
}
