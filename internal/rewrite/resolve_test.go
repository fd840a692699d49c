package rewrite

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRelativeReferences(t *testing.T) {
	cases := []struct {
		name      string
		reference string
		base      string
		want      string
	}{
		{"root relative", "/x", "https://example.com/page", "https://example.com/x"},
		{"sibling", "img/logo.png", "https://example.com/dir/page.html", "https://example.com/dir/img/logo.png"},
		{"parent", "../up.css", "https://example.com/a/b/page.html", "https://example.com/a/up.css"},
		{"already absolute", "https://other.org/a", "https://example.com/", "https://other.org/a"},
		{"scheme relative", "//cdn.example.net/lib.js", "https://example.com/", "https://cdn.example.net/lib.js"},
		{"query only", "?page=2", "https://example.com/list", "https://example.com/list?page=2"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Resolve(tc.reference, tc.base))
		})
	}
}

func TestResolveFailsOpenOnUnparseableReference(t *testing.T) {
	// An invalid percent escape cannot be parsed even against a valid base;
	// the reference must come back untouched.
	assert.Equal(t, "%zz", Resolve("%zz", "https://example.com/"))
}

func TestResolveFailsOpenOnUnparseableBase(t *testing.T) {
	assert.Equal(t, "/x", Resolve("/x", "https://exa mple.com/%"))
}

func TestWrapRoundTrip(t *testing.T) {
	cases := []string{
		"https://example.com/x",
		"https://example.com/search?q=a&b=c",
		"https://example.com/path with space",
		"https://example.com/page#frag",
		"http://example.com/?q=100%25",
	}

	for _, original := range cases {
		wrapped := Wrap(original)
		parsed, err := url.Parse(wrapped)
		require.NoError(t, err)
		assert.Equal(t, EntryPath, parsed.Path)
		assert.Equal(t, original, parsed.Query().Get("url"))
	}
}
