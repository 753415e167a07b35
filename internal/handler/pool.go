package handler

import (
	"bytes"
	"sync"
)

const (
	// initialBufferSize fits most member and settings responses
	initialBufferSize = 4 << 10
	// maxPooledBufferSize keeps full group data responses from pinning memory
	maxPooledBufferSize = 1 << 20
)

var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer returns buf to the pool unless it grew past maxPooledBufferSize.
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
