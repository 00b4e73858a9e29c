package wire

import (
	"bytes"
	"sync"
)

// Encode buffers are pooled to reduce GC pressure under batch load.
var bufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

func acquireBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func releaseBuffer(buf *bytes.Buffer) {
	// Don't hold on to oversized buffers.
	if buf.Cap() <= 1<<20 {
		bufferPool.Put(buf)
	}
}
