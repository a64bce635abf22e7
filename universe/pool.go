package universe

import "sync"

// BufferPool recycles cell buffers across generations for memory efficiency
type BufferPool struct {
	pool sync.Pool
}

func NewBufferPool() *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				return []Cell(nil)
			},
		},
	}
}

// Get returns a zeroed buffer of length n, reusing pooled capacity when possible
func (p *BufferPool) Get(n int) []Cell {
	buf := p.pool.Get().([]Cell)
	if cap(buf) < n {
		return make([]Cell, n)
	}
	buf = buf[:n]
	for i := range buf {
		buf[i] = Dead
	}
	return buf
}

// Put returns a buffer to the pool for reuse
func (p *BufferPool) Put(buf []Cell) {
	if buf == nil {
		return
	}
	p.pool.Put(buf)
}
