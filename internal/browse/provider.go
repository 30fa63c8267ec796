// Package browse implements the column browser core: a selection path, a
// per-depth provider table, and the engine that rebuilds columns whenever
// the selection changes. Content comes from either a seeded string
// generator or a live directory lister; both sides speak the same
// Provider interface.
package browse

import (
	"finder4/pkg/types"
)

// Provider is a depth-bound content source for one column. Produce receives
// the ancestor portion of the selection (everything chosen before this
// column's depth) and returns the column's entries in display order.
type Provider interface {
	Produce(seed []string) ([]types.Entry, error)
}

// Uniform builds a provider table of length n backed by the same provider
// at every depth. The table length caps the column count.
func Uniform(p Provider, n int) []Provider {
	providers := make([]Provider, n)
	for i := range providers {
		providers[i] = p
	}
	return providers
}
