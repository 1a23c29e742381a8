package pool

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ByteBuffer tests
// =============================================================================

func TestNewByteBuffer(t *testing.T) {
	capacity := 1024
	bb := NewByteBuffer(capacity)

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, len(bb.B), "new buffer should have zero length")
	assert.Equal(t, capacity, cap(bb.B), "new buffer should have specified capacity")
}

func TestByteBuffer_Bytes(t *testing.T) {
	bb := NewByteBuffer(FrameBufferDefaultSize)
	bb.B = append(bb.B, []byte("hello")...)

	assert.Equal(t, []byte("hello"), bb.Bytes())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(FrameBufferDefaultSize)
	bb.MustWrite([]byte("connection.start"))
	require.NotZero(t, bb.Len())

	bb.Reset()

	assert.Equal(t, 0, bb.Len())
	assert.GreaterOrEqual(t, bb.Cap(), FrameBufferDefaultSize, "reset retains capacity")
}

func TestByteBuffer_MustWrite(t *testing.T) {
	bb := NewByteBuffer(FrameBufferDefaultSize)
	bb.MustWrite([]byte{0x00, 0x0A, 0x00, 0x0A})

	assert.Equal(t, []byte{0x00, 0x0A, 0x00, 0x0A}, bb.Bytes())
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(FrameBufferDefaultSize)
	n, err := bb.Write([]byte("amqp"))

	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte("amqp"), bb.Bytes())
}

func TestByteBuffer_Slice(t *testing.T) {
	bb := NewByteBuffer(FrameBufferDefaultSize)
	bb.MustWrite([]byte("abcdef"))

	assert.Equal(t, []byte("bcd"), bb.Slice(1, 4))
}

func TestByteBuffer_Slice_PanicsOnInvalidRange(t *testing.T) {
	bb := NewByteBuffer(FrameBufferDefaultSize)
	bb.MustWrite([]byte("abc"))

	assert.Panics(t, func() { bb.Slice(2, 1) })
	assert.Panics(t, func() { bb.Slice(0, FrameBufferDefaultSize+1) })
}

func TestByteBuffer_SetLength(t *testing.T) {
	bb := NewByteBuffer(FrameBufferDefaultSize)
	bb.MustWrite([]byte("abcdef"))

	bb.SetLength(3)

	assert.Equal(t, []byte("abc"), bb.Bytes())
}

func TestByteBuffer_SetLength_PanicsOnInvalid(t *testing.T) {
	bb := NewByteBuffer(FrameBufferDefaultSize)

	assert.Panics(t, func() { bb.SetLength(-1) })
	assert.Panics(t, func() { bb.SetLength(FrameBufferDefaultSize + 1) })
}

func TestByteBuffer_Extend(t *testing.T) {
	bb := NewByteBuffer(FrameBufferDefaultSize)

	ok := bb.Extend(10)

	assert.True(t, ok)
	assert.Equal(t, 10, bb.Len())
}

func TestByteBuffer_Extend_FailsWithoutCapacity(t *testing.T) {
	bb := NewByteBuffer(4)

	ok := bb.Extend(10)

	assert.False(t, ok)
	assert.Equal(t, 0, bb.Len())
}

func TestByteBuffer_ExtendOrGrow(t *testing.T) {
	bb := NewByteBuffer(4)

	bb.ExtendOrGrow(10)

	assert.Equal(t, 10, bb.Len())
	assert.GreaterOrEqual(t, bb.Cap(), 10)
}

// TestByteBuffer_Grow_NoReallocationWhenCapacitySuffices verifies Grow is a
// no-op when existing capacity already covers the request.
func TestByteBuffer_Grow_NoReallocationWhenCapacitySuffices(t *testing.T) {
	bb := NewByteBuffer(FrameBufferDefaultSize)
	before := bb.Cap()

	bb.Grow(FrameBufferDefaultSize / 2)

	assert.Equal(t, before, bb.Cap())
}

// TestByteBuffer_Grow_SmallBufferGrowsByAtLeastRequested verifies the small-
// buffer growth path grows by at least the requested size when the request
// exceeds the default increment.
func TestByteBuffer_Grow_SmallBufferGrowsByAtLeastRequested(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite(make([]byte, 4)) // fill to capacity

	bb.Grow(FrameBufferDefaultSize * 2)

	assert.GreaterOrEqual(t, bb.Cap(), 4+FrameBufferDefaultSize*2)
	assert.Equal(t, 4, bb.Len(), "length unaffected by Grow")
}

// TestByteBuffer_Grow_LargeBufferGrowsByQuarter verifies buffers already
// bigger than 4x the default increment grow proportionally instead.
func TestByteBuffer_Grow_LargeBufferGrowsByQuarter(t *testing.T) {
	large := 4*FrameBufferDefaultSize + 1024
	bb := NewByteBuffer(large)
	bb.MustWrite(make([]byte, large))

	bb.Grow(1)

	assert.Greater(t, bb.Cap(), large)
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(FrameBufferDefaultSize)
	bb.MustWrite([]byte("payload"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)

	require.NoError(t, err)
	assert.EqualValues(t, 7, n)
	assert.Equal(t, "payload", out.String())
}

// =============================================================================
// ByteBufferPool tests
// =============================================================================

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(64, 1024)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("x"))

	p.Put(bb)

	bb2 := p.Get()
	assert.Equal(t, 0, bb2.Len(), "Put resets the buffer before returning it to the pool")
}

func TestByteBufferPool_Put_NilIsNoOp(t *testing.T) {
	p := NewByteBufferPool(64, 1024)

	assert.NotPanics(t, func() { p.Put(nil) })
}

// TestByteBufferPool_Put_DiscardsOverThreshold verifies a buffer grown
// beyond maxThreshold is dropped rather than pooled, bounding how much
// memory a burst of large frames can pin in the pool.
func TestByteBufferPool_Put_DiscardsOverThreshold(t *testing.T) {
	p := NewByteBufferPool(64, 128)

	bb := p.Get()
	bb.Grow(256)
	require.Greater(t, bb.Cap(), 128)

	p.Put(bb)

	bb2 := p.Get()
	assert.LessOrEqual(t, bb2.Cap(), 64, "oversized buffer was discarded, not reused")
}

func TestByteBufferPool_ConcurrentUse(t *testing.T) {
	p := NewByteBufferPool(64, 1024)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			bb := p.Get()
			bb.MustWrite([]byte("concurrent"))
			p.Put(bb)
		}()
	}
	wg.Wait()
}

// =============================================================================
// Frame pool tests
// =============================================================================

// TestFrameBuffer_GetPut verifies the shared frame pool round-trips a
// buffer through Reset exactly like ByteBufferPool.Put does generally.
func TestFrameBuffer_GetPut(t *testing.T) {
	bb := GetFrameBuffer()
	require.NotNil(t, bb)
	assert.GreaterOrEqual(t, bb.Cap(), FrameBufferDefaultSize)

	bb.MustWrite([]byte{0x00, 0x0A, 0x00, 0x28})
	PutFrameBuffer(bb)

	bb2 := GetFrameBuffer()
	assert.Equal(t, 0, bb2.Len(), "pooled buffer comes back empty")
	PutFrameBuffer(bb2)
}

func TestPutFrameBuffer_NilIsNoOp(t *testing.T) {
	assert.NotPanics(t, func() { PutFrameBuffer(nil) })
}

// TestFrameBuffer_NestedGetPut exercises the same get/put pattern
// encodeTable uses for a nested field table: a scratch buffer borrowed and
// returned before the outer buffer's own Put.
func TestFrameBuffer_NestedGetPut(t *testing.T) {
	outer := GetFrameBuffer()
	defer PutFrameBuffer(outer)

	inner := GetFrameBuffer()
	inner.MustWrite([]byte("nested-table-body"))
	outer.MustWrite(inner.Bytes())
	PutFrameBuffer(inner)

	assert.Equal(t, "nested-table-body", string(outer.Bytes()))
}
