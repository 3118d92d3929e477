package benchmark

import (
	"sync"
)

// bufPool reuses generation chunks so a multi-gigabyte create doesn't churn
// the allocator.
var bufPool = sync.Pool{
	New: func() interface{} {
		return make([]byte, generationChunkLen)
	},
}

// getBuffer gets a buffer of at least the requested size from the pool.
func getBuffer(size int) []byte {
	buf := bufPool.Get().([]byte)
	if cap(buf) < size {
		return make([]byte, size)
	}
	return buf[:size]
}

// putBuffer returns a buffer to the pool.
func putBuffer(buf []byte) {
	bufPool.Put(buf[:cap(buf)])
}
