package memory

import (
	"sync"

	"todoapp/internal/ports/output"
)

// Compile-time check to ensure ViewCache implements the ViewCache interface
var _ output.ViewCache = (*ViewCache)(nil)

// ViewCache struct - Output adapter tracking render staleness per view
// A view carries no cached content here, only a stale flag: the render path
// asks Stale, recomputes from persistence when true, then calls MarkFresh.
// Uses sync.Map so the signal is safe under concurrent mutations.
type ViewCache struct {
	stale sync.Map
}

// NewViewCache creates a new in-memory view staleness tracker.
// Every view starts fresh; nothing has been rendered yet either way, so the
// first read always recomputes from persistence regardless of the flag.
func NewViewCache() *ViewCache {
	return &ViewCache{}
}

// Invalidate marks a view stale. Invalidating an already-stale view is a
// no-op; repeated calls are indistinguishable from one.
func (c *ViewCache) Invalidate(view string) {
	c.stale.Store(view, true)
}

// Stale reports whether the view must be recomputed before serving.
func (c *ViewCache) Stale(view string) bool {
	value, ok := c.stale.Load(view)
	if !ok {
		return false
	}
	flag, ok := value.(bool)
	return ok && flag
}

// MarkFresh clears the stale flag after the view has been recomputed.
// Marking an unknown or already-fresh view is a no-op.
func (c *ViewCache) MarkFresh(view string) {
	c.stale.Delete(view)
}
