package types

import (
	"time"
)

// Entry is a single option inside a column. Filesystem-backed entries carry
// the absolute target path plus directory metadata; generated entries carry
// a name only. Sentinel entries (such as the "Permission Denied" row) are
// display-only and cannot be navigated into.
type Entry struct {
	Name     string    `json:"name"`
	Path     string    `json:"path,omitempty"`
	Dir      bool      `json:"dir,omitempty"`
	Parent   bool      `json:"parent,omitempty"`
	Sentinel bool      `json:"sentinel,omitempty"`
	Size     int64     `json:"size,omitempty"`
	ModTime  time.Time `json:"mod_time,omitempty"`
}

// Navigable reports whether selecting this entry may extend the path.
func (e Entry) Navigable() bool {
	return !e.Sentinel
}
