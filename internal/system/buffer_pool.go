package system

import (
	"bytes"
	"sync"
)

// BufferPool предоставляет механизмы повторного использования bytes.Buffer
// при покадровом экспорте для снижения нагрузки на Garbage Collector (GC).
type BufferPool struct {
	pool sync.Pool
}

var globalPool = &BufferPool{
	pool: sync.Pool{
		New: func() interface{} {
			return new(bytes.Buffer)
		},
	},
}

// GetBuffer возвращает чистый *bytes.Buffer из пула или создает новый.
func GetBuffer() *bytes.Buffer {
	return globalPool.Get()
}

// PutBuffer возвращает буфер в пул для повторного использования.
func PutBuffer(buf *bytes.Buffer) {
	globalPool.Put(buf)
}

func (p *BufferPool) Get() *bytes.Buffer {
	buf := p.pool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func (p *BufferPool) Put(buf *bytes.Buffer) {
	if buf == nil {
		return
	}
	p.pool.Put(buf)
}
