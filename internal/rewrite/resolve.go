package rewrite

import "net/url"

// EntryPath is the proxy endpoint every wrapped link points back at.
const EntryPath = "/fetch"

// Resolve joins a possibly relative reference with an absolute base URL,
// following RFC 3986 relative resolution. Rewriting is best-effort: when
// either side cannot be parsed the reference is returned unchanged so that a
// single bad link never aborts a document rewrite.
func Resolve(reference, base string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return reference
	}
	refURL, err := url.Parse(reference)
	if err != nil {
		return reference
	}
	return baseURL.ResolveReference(refURL).String()
}

// Wrap encodes an absolute URL into the proxy's self-referential form: a
// same-origin path that re-enters the relay with the original URL carried in
// the url query parameter.
func Wrap(absoluteURL string) string {
	return EntryPath + "?url=" + url.QueryEscape(absoluteURL)
}
