package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeIndex(t *testing.T) {
	cases := []struct {
		n      int
		expect int
	}{
		{1, 0}, {35, 0}, {63, 0}, {64, 0}, {65, 1}, {127, 1}, {128, 1},
		{129, 2}, {255, 2}, {256, 2}, {257, 3}, {511, 3}, {512, 3},
		{1023, 4}, {1024, 4}, {2047, 5}, {2048, 5}, {4095, 6}, {4096, 6},
		{8191, 7}, {8192, 7}, {16383, 8}, {16384, 8}, {32767, 9}, {32768, 9},
		{32769, -1}, {0, -1},
	}

	for _, tc := range cases {
		idx := SizeIndex(tc.n)
		assert.Equal(t, tc.expect, idx, "SizeIndex(%d)", tc.n)

		if idx >= 0 {
			assert.GreaterOrEqual(t, BufferSizeClass[idx], tc.n, "BufferSizeClass[%d] too small for n=%d", idx, tc.n)
		}
	}
}

func TestBufferPool_AcquireRelease(t *testing.T) {
	bp := NewBufferPool()

	for _, size := range BufferSizeClass {
		buf := bp.Acquire(size - 1)
		assert.GreaterOrEqual(t, cap(buf), size-1)
		assert.Equal(t, 0, len(buf))

		buf = append(buf, 0xAA)
		bp.Release(buf)

		buf2 := bp.Acquire(size - 1)
		assert.GreaterOrEqual(t, cap(buf2), size-1)
		assert.Equal(t, 0, len(buf2))
	}
}

func TestBufferPool_Oversized(t *testing.T) {
	bp := NewBufferPool()
	oversized := 40000

	buf := bp.Acquire(oversized)
	assert.Equal(t, 0, len(buf))
	assert.GreaterOrEqual(t, cap(buf), oversized)

	bp.Release(buf) // should be safely ignored
}

func TestBufferPool_ExactClassReuse(t *testing.T) {
	bp := NewBufferPool()

	for _, size := range BufferSizeClass {
		buf := bp.Acquire(size)
		assert.Equal(t, size, cap(buf))

		bp.Release(buf)

		buf2 := bp.Acquire(size)
		assert.Equal(t, size, cap(buf2))
	}
}

func TestHasPrefixSuffix(t *testing.T) {
	b := []byte("inline string")
	assert.True(t, HasPrefix(b, "inline"))
	assert.False(t, HasPrefix(b, "inlined "))
	assert.True(t, HasSuffix(b, "string"))
	assert.False(t, HasSuffix(b, "strings"))
	assert.True(t, HasPrefix(b, ""))
	assert.True(t, HasSuffix(b, ""))
}

func TestB2S_S2B(t *testing.T) {
	s := "round trip"
	assert.Equal(t, s, B2S(S2B(s)))
	assert.Equal(t, "", B2S(nil))
	assert.Equal(t, 0, len(S2B("")))
}

func BenchmarkBufferPool_Acquire(b *testing.B) {
	bp := NewBufferPool()
	sizes := []int{64, 4096, 8192}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Acquire_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				buf := bp.Acquire(size)
				buf = append(buf, 0xAA)
				bp.Release(buf)
			}
		})
	}
}
