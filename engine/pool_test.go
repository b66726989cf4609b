package engine

import (
	"testing"

	"github.com/npillmayer/dimex/internal/tracing"
	schuko "github.com/npillmayer/schuko/tracing"
)

func TestStatePool(t *testing.T) {
	tracing.SetTestingLog(t, schuko.LevelInfo)
	//
	ps := borrowState()
	if !ps.pooled {
		t.Fatalf("borrowed state should be marked as pooled")
	}
	ps.init("خمسة", nil)
	ps.releaseIntoPool()
	if ps.text != "" || ps.stash.size != 0 {
		t.Errorf("released state should be cleared")
	}
	idle := globalStatePool.opool.GetNumIdle()
	fresh := newParseState()
	fresh.releaseIntoPool()
	if n := globalStatePool.opool.GetNumIdle(); n != idle {
		t.Errorf("state not borrowed from pool must not be returned, idle %d -> %d", idle, n)
	}
}
