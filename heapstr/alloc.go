//go:build !inlinestr_pool

package heapstr

// The default allocator leans on the runtime: plain make, GC reclaims.

func alloc(n int) []byte {
	if n <= 0 {
		return nil
	}
	return make([]byte, 0, n)
}

func free([]byte) {}
