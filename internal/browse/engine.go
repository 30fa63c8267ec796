package browse

import (
	"finder4/internal/log"
	"finder4/pkg/types"
)

// UnavailableLabel is the display text of the sentinel entry shown when a
// provider fails hard (e.g. the path no longer exists).
const UnavailableLabel = "Unavailable"

// Engine owns the current selection and the columns derived from it. Every
// selection change flows through SetSelection, which rebuilds exactly the
// columns the selection implies plus one trailing preview column while
// capacity remains.
//
// The engine is not safe for concurrent use; hosts must serialize calls.
type Engine struct {
	providers []Provider
	selection []string
	columns   []types.Column
	lastErr   error
}

// NewEngine creates an engine over a fixed provider table and builds the
// initial column set for the empty selection.
func NewEngine(providers []Provider) *Engine {
	e := &Engine{
		providers: providers,
		selection: []string{},
	}
	e.Rebuild()
	return e
}

// MaxColumns returns the provider table length, the column capacity.
func (e *Engine) MaxColumns() int {
	return len(e.providers)
}

// Selection returns a copy of the current selection.
func (e *Engine) Selection() []string {
	return append([]string{}, e.selection...)
}

// Path returns the current selection encoded as a path string.
func (e *Engine) Path() string {
	return EncodePath(e.selection)
}

// Columns returns a snapshot of the current columns. The outer slice is
// copied; entry slices are replaced wholesale on rebuild and never mutated,
// so sharing them is safe.
func (e *Engine) Columns() []types.Column {
	return append([]types.Column{}, e.columns...)
}

// LastErr returns the provider error recorded during the most recent
// rebuild, if any. Rebuild itself never fails; hard provider errors are
// rendered as sentinel columns and surfaced here for the host to report.
func (e *Engine) LastErr() error {
	return e.lastErr
}

// SetSelection replaces the selection wholesale and rebuilds the columns.
// This is the single state-transition entry point; clicks and typed paths
// both reduce to it. A selection deeper than the provider table is
// truncated to fit.
func (e *Engine) SetSelection(selection []string) {
	if len(selection) > len(e.providers) {
		selection = selection[:len(e.providers)]
	}
	e.selection = append([]string{}, selection...)
	e.Rebuild()
}

// SetSelectionFromPath decodes a typed path and applies it as the selection.
func (e *Engine) SetSelectionFromPath(path string) {
	e.SetSelection(DecodePath(path))
}

// Select applies a click on the entry named label in column col: ancestors
// up to the clicked column are kept and the clicked label becomes the
// deepest choice. Sentinel entries are ignored; the parent pseudo-entry
// steps the selection up one level instead.
func (e *Engine) Select(col int, label string) {
	if col < 0 || col >= len(e.columns) || col > len(e.selection) {
		return
	}
	if entry, ok := e.find(col, label); ok {
		if !entry.Navigable() {
			return
		}
		if entry.Parent {
			if col > 0 {
				e.SetSelection(e.selection[:col-1])
			}
			return
		}
	}
	next := append([]string{}, e.selection[:col]...)
	next = append(next, label)
	e.SetSelection(next)
}

// find looks up an entry by name in an existing column.
func (e *Engine) find(col int, label string) (types.Entry, bool) {
	for _, entry := range e.columns[col].Entries {
		if entry.Name == label {
			return entry, true
		}
	}
	return types.Entry{}, false
}

// Rebuild recomputes every column from the current selection. It is a pure
// function of (selection, providers): column i is produced from the
// ancestors selection[:i], marked selected where the chosen label still
// appears, and one unselected preview column follows the deepest choice
// while the provider table has room. Calling it twice in a row yields
// identical columns.
func (e *Engine) Rebuild() {
	e.lastErr = nil
	e.columns = make([]types.Column, 0, len(e.selection)+1)

	for i := 0; i < len(e.selection); i++ {
		col := e.materialize(i, e.selection[:i])
		col.Selected = indexOf(col.Entries, e.selection[i])
		// A missing match means the entry was renamed or deleted
		// externally; the column simply renders without a selection.
		e.columns = append(e.columns, col)
	}

	if len(e.selection) < len(e.providers) {
		e.columns = append(e.columns, e.materialize(len(e.selection), e.selection))
	}
}

// materialize invokes the provider for one depth. Hard provider errors are
// logged and rendered as a single sentinel entry so the browser stays
// usable.
func (e *Engine) materialize(depth int, seed []string) types.Column {
	entries, err := e.providers[depth].Produce(seed)
	if err != nil {
		e.lastErr = err
		log.LogWithFields(log.F("depth", depth), log.F("error", err)).Warn("Column provider failed")
		entries = []types.Entry{{Name: UnavailableLabel, Sentinel: true}}
	}
	return types.Column{
		Depth:    depth,
		Entries:  entries,
		Selected: types.NoSelection,
	}
}

func indexOf(entries []types.Entry, name string) int {
	for i, entry := range entries {
		if entry.Name == name {
			return i
		}
	}
	return types.NoSelection
}
