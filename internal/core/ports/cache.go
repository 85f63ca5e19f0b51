package ports

// PersistentCache is a cache that survives across process invocations.
// Load is called once at session start and Save once at session end.
// Neither reports failure: a cache that cannot be read or written degrades to in-memory only.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type PersistentCache interface {
	Load()
	Save()
	// Clear drops every in-memory entry; the next Save persists the empty state.
	Clear()
}
