package xstring

import (
	"bytes"
	"sync"
)

type buffer struct {
	bytes.Buffer
}

var buffersPool = sync.Pool{
	New: func() interface{} {
		return &buffer{}
	},
}

// Buffer returns a pooled buffer. Callers must call Free exactly once when
// the buffer content is no longer needed.
func Buffer() *buffer {
	return buffersPool.Get().(*buffer)
}

func (b *buffer) Free() {
	b.Reset()
	buffersPool.Put(b)
}
