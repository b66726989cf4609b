package engine

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Parse states are short-lived objects holding a stash and a candidate
// buffer. To avoid re-allocating them for every parse we will pool them.
type statePool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalStatePool *statePool

func init() {
	globalStatePool = &statePool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return newParseState(), nil
		})
	globalStatePool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalStatePool.opool = pool.NewObjectPool(globalStatePool.ctx, factory, config)
}

// borrowState returns an empty parse state from the pool.
func borrowState() *parseState {
	o, err := globalStatePool.opool.BorrowObject(globalStatePool.ctx)
	if err != nil {
		CT().Errorf("cannot borrow parse state: %v", err)
		return newParseState()
	}
	ps := o.(*parseState)
	ps.pooled = true
	return ps
}

// releaseIntoPool clears the parse state and puts it back into the pool.
// States not borrowed from the pool are left to the garbage collector.
func (ps *parseState) releaseIntoPool() {
	ps.reset()
	if !ps.pooled {
		return
	}
	if err := globalStatePool.opool.ReturnObject(globalStatePool.ctx, ps); err != nil {
		CT().Errorf("cannot return parse state: %v", err)
	}
}
