package browse_test

import (
	"testing"

	"finder4/internal/browse"

	"github.com/stretchr/testify/assert"
)

func TestEncodePath(t *testing.T) {
	tests := []struct {
		name      string
		selection []string
		want      string
	}{
		{"empty selection", []string{}, "/"},
		{"nil selection", nil, "/"},
		{"single segment", []string{"foo"}, "/foo"},
		{"nested segments", []string{"foo", "bar", "baz"}, "/foo/bar/baz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, browse.EncodePath(tt.selection))
		})
	}
}

func TestDecodePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []string
	}{
		{"root", "/", []string{}},
		{"empty string", "", []string{}},
		{"simple path", "/foo/bar", []string{"foo", "bar"}},
		{"no leading slash", "foo/bar", []string{"foo", "bar"}},
		{"trailing slash", "/foo/bar/", []string{"foo", "bar"}},
		{"repeated slashes", "/foo//bar///baz", []string{"foo", "bar", "baz"}},
		{"only slashes", "////", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, browse.DecodePath(tt.path))
		})
	}
}

func TestPathRoundTrip(t *testing.T) {
	selections := [][]string{
		{},
		{"a"},
		{"a", "b"},
		{"with space", "dots..", "UPPER"},
	}

	for _, selection := range selections {
		encoded := browse.EncodePath(selection)
		assert.Equal(t, selection, browse.DecodePath(encoded), "round trip of %q", encoded)
	}
}
