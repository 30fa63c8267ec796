package types_test

import (
	"testing"

	"finder4/pkg/types"

	"github.com/stretchr/testify/assert"
)

func TestColumnSelection(t *testing.T) {
	col := types.Column{
		Depth: 1,
		Entries: []types.Entry{
			{Name: "alpha"},
			{Name: "beta", Dir: true},
		},
		Selected: types.NoSelection,
	}

	assert.False(t, col.HasSelection())
	_, ok := col.SelectedEntry()
	assert.False(t, ok)

	col.Selected = 1
	assert.True(t, col.HasSelection())
	entry, ok := col.SelectedEntry()
	assert.True(t, ok)
	assert.Equal(t, "beta", entry.Name)
}

func TestColumnLabels(t *testing.T) {
	col := types.Column{
		Entries: []types.Entry{{Name: "a"}, {Name: "b"}},
	}
	assert.Equal(t, []string{"a", "b"}, col.Labels())
}

func TestEntryNavigable(t *testing.T) {
	assert.True(t, types.Entry{Name: "dir", Dir: true}.Navigable())
	assert.False(t, types.Entry{Name: "Permission Denied", Sentinel: true}.Navigable())
}
