package lookup

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Every probe into a data file needs a small buffer for a record. Lookups are
// frequent and may run concurrently, so buffers are pooled. A borrowed buffer is
// owned by exactly one lookup until it is returned.
type bufferPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
	size  int
}

type recordBuffer struct {
	b []byte
}

func newBufferPool(size int) *bufferPool {
	bp := &bufferPool{
		ctx:  context.Background(),
		size: size,
	}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &recordBuffer{b: make([]byte, size)}, nil
		})
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	bp.opool = pool.NewObjectPool(bp.ctx, factory, config)
	return bp
}

// borrow returns a buffer of the pool's record size. If the pool fails to hand
// out a buffer, a fresh one is allocated.
func (bp *bufferPool) borrow() *recordBuffer {
	o, err := bp.opool.BorrowObject(bp.ctx)
	if err != nil {
		T().Errorf("lookup: cannot borrow record buffer: %v", err)
		return &recordBuffer{b: make([]byte, bp.size)}
	}
	return o.(*recordBuffer)
}

func (bp *bufferPool) release(buf *recordBuffer) {
	_ = bp.opool.ReturnObject(bp.ctx, buf)
}

func (bp *bufferPool) close() {
	bp.opool.Close(bp.ctx)
}
