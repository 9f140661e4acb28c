//go:build inlinestr_pool

package heapstr

import "github.com/quickwritereader/InlineStr/utils"

// The pooled allocator recycles buffer storage through size classes. Built
// with -tags inlinestr_pool for hosts where allocation churn matters more
// than the pool's idle footprint. Behavior is identical to the default
// allocator; only where buffers come from changes.

var pool = utils.NewBufferPool()

func alloc(n int) []byte {
	if n <= 0 {
		return nil
	}
	return pool.Acquire(n)
}

func free(b []byte) {
	if cap(b) == 0 {
		return
	}
	pool.Release(b)
}
