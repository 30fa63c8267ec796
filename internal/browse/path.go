package browse

import (
	"strings"
)

// EncodePath returns the selection as a filesystem-like path (e.g. "/foo/bar").
// An empty selection encodes as "/".
func EncodePath(selection []string) string {
	if len(selection) == 0 {
		return "/"
	}
	return "/" + strings.Join(selection, "/")
}

// DecodePath parses a slash-separated path into a selection. One leading
// slash is stripped and empty segments from repeated or trailing slashes
// are dropped, so user-typed input always normalizes to a valid selection
// instead of erroring.
func DecodePath(path string) []string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return []string{}
	}
	segments := strings.Split(path, "/")
	selection := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg != "" {
			selection = append(selection, seg)
		}
	}
	return selection
}
