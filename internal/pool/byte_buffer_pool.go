// Package pool provides pooled, amortized-growth byte buffers for the
// dictionary encoder, the one construction path whose output size (a
// compressed payload) is not known up front.
package pool

import "sync"

const (
	// DictBufferDefaultSize is the initial capacity of pooled dictionary
	// buffers; dictionaries of short strings rarely exceed a few KiB.
	DictBufferDefaultSize = 1024 * 4 // 4KiB

	// DictBufferMaxThreshold caps the capacity of buffers returned to the
	// pool, so one oversized dictionary does not pin memory forever.
	DictBufferMaxThreshold = 1024 * 1024 // 1MiB
)

// ByteBuffer is a growable byte buffer. B is the underlying slice and may be
// appended to directly; use Grow to pre-reserve capacity.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the specified initial capacity.
func NewByteBuffer(size int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, size)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Reset empties the buffer, retaining its allocation for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// MustWrite appends data, growing the buffer as needed.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating. Small buffers grow by DictBufferDefaultSize at a time;
// larger ones by 25% of current capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := DictBufferDefaultSize
	if cap(bb.B) > 4*DictBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool pools ByteBuffers, dropping any whose capacity exceeds the
// configured threshold.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool handing out buffers of defaultSize
// capacity and retaining returned buffers up to maxThreshold capacity.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get returns an empty buffer from the pool.
func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// Put returns a buffer to the pool unless it grew past the threshold.
func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	if p.maxThreshold > 0 && bb.Cap() > p.maxThreshold {
		return
	}
	p.pool.Put(bb)
}

var dictBufferPool = NewByteBufferPool(DictBufferDefaultSize, DictBufferMaxThreshold)

// GetDictBuffer returns a pooled buffer for dictionary payload encoding.
func GetDictBuffer() *ByteBuffer {
	return dictBufferPool.Get()
}

// PutDictBuffer returns a dictionary buffer to the pool.
func PutDictBuffer(bb *ByteBuffer) {
	dictBufferPool.Put(bb)
}
