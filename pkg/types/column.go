package types

// NoSelection marks a column without an active selection.
const NoSelection = -1

// Column is the materialized option list for one depth of the browser,
// plus the index of the entry matching the current selection (if any).
// Columns are owned by the engine; hosts only read snapshots.
type Column struct {
	Depth    int
	Entries  []Entry
	Selected int
}

// HasSelection reports whether the column has an active selection.
func (c Column) HasSelection() bool {
	return c.Selected >= 0 && c.Selected < len(c.Entries)
}

// SelectedEntry returns the selected entry, if one exists.
func (c Column) SelectedEntry() (Entry, bool) {
	if !c.HasSelection() {
		return Entry{}, false
	}
	return c.Entries[c.Selected], true
}

// Labels returns the display names of all entries in order.
func (c Column) Labels() []string {
	labels := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		labels[i] = e.Name
	}
	return labels
}
