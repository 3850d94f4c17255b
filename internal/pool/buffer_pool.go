package pool

import "sync"

// maxPooledSize is the capacity above which a buffer is dropped instead of pooled, so one huge
// block does not pin memory for the lifetime of the process.
const maxPooledSize = 64 << 10

var bufferPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 512)
		return &b
	},
}

// GetBuffer returns an empty byte buffer from the pool.
//
// Return back the buffer to the pool with PutBuffer.
func GetBuffer() *[]byte {
	b, _ := bufferPool.Get().(*[]byte) // only *[]byte is put into the pool
	*b = (*b)[:0]

	return b
}

// PutBuffer returns b to the pool.
//
// b cannot be accessed after returning to the pool.
func PutBuffer(b *[]byte) {
	if b == nil || cap(*b) > maxPooledSize {
		return
	}
	bufferPool.Put(b)
}
