package readers

import "sync"

// ChunkSize is the read granularity for streaming counts.
const ChunkSize = 256 * 1024

var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, ChunkSize)
		return &b
	},
}

// GetBuf returns a reusable chunk buffer. The buffer is exclusively owned
// until PutBuf.
func GetBuf() *[]byte {
	return bufPool.Get().(*[]byte)
}

func PutBuf(b *[]byte) {
	if len(*b) != ChunkSize { // don't pool resized buffers
		return
	}
	bufPool.Put(b)
}
