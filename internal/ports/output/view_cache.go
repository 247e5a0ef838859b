package output

// ViewCache interface - Output port
// Staleness tracking for rendered views. Invalidate is called by the
// application layer after every successful mutation; Stale and MarkFresh
// belong to the render path. All three must be safe to call concurrently,
// and Invalidate must be idempotent.
type ViewCache interface {
	Invalidate(view string)
	Stale(view string) bool
	MarkFresh(view string)
}
