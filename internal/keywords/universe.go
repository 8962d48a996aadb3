package keywords

import (
	"sync"

	"go.uber.org/zap"
)

// DefaultUniverseLimit sizes the memoized default universe.
const DefaultUniverseLimit = 5000

// memo is a single-initialization cache cell.
type memo struct {
	once  sync.Once
	value []string
}

var (
	universeMu   sync.Mutex
	universeCell = &memo{}
)

// Universe returns the default keyword universe, computed once per process
// and cached. Passing any non-zero Options bypasses the cache and generates
// fresh. The returned slice is the caller's to modify.
func Universe(opts ...Options) []string {
	for _, o := range opts {
		if !o.isZero() {
			return Generate(o)
		}
	}

	universeMu.Lock()
	cell := universeCell
	universeMu.Unlock()

	cell.once.Do(func() {
		cell.value = Generate(Options{Limit: DefaultUniverseLimit})
		zap.L().Info("keywords: default universe initialized",
			zap.Int("keywords", len(cell.value)),
		)
	})

	return append([]string(nil), cell.value...)
}

// ResetUniverse drops the cached default universe so the next Universe call
// recomputes it.
func ResetUniverse() {
	universeMu.Lock()
	universeCell = &memo{}
	universeMu.Unlock()
}
