package relay

import (
	"net/http"
	"net/textproto"
)

// FallbackContentType is synthesized when no content type survives
// filtering, so every relayed response declares a type and browsers never
// have to sniff.
const FallbackContentType = "text/plain; charset=utf-8"

// hopByHopHeaders are the RFC 7230 §6.1 names meaningful only for a single
// transport leg, plus the legacy Proxy-Connection field some proxies still
// send. Content-Length and Transfer-Encoding are dropped with them: the body
// may be rewritten, so the server recomputes framing.
var hopByHopHeaders = map[string]struct{}{
	"Connection":          {},
	"Keep-Alive":          {},
	"Proxy-Authenticate":  {},
	"Proxy-Authorization": {},
	"Te":                  {},
	"Trailer":             {},
	"Transfer-Encoding":   {},
	"Upgrade":             {},
	"Proxy-Connection":    {},
	"Content-Length":      {},
}

// blockedHeaders are end-to-end names the relay deliberately withholds:
// security policies that would refuse the rewritten page, and session
// cookies, which the proxy never forwards in either direction.
var blockedHeaders = map[string]struct{}{
	"Content-Security-Policy":             {},
	"Content-Security-Policy-Report-Only": {},
	"X-Frame-Options":                     {},
	"Set-Cookie":                          {},
}

// FilterHeaders returns a sanitized copy of the upstream headers: hop-by-hop
// and blocked names are removed under case-insensitive matching, every other
// name keeps its first value, and a Content-Type is synthesized when none
// survives. The input is never mutated.
func FilterHeaders(src http.Header) http.Header {
	dst := make(http.Header, len(src))
	for key, values := range src {
		if isDroppedHeader(key) || len(values) == 0 {
			continue
		}
		dst.Set(key, values[0])
	}

	if dst.Get("Content-Type") == "" {
		dst.Set("Content-Type", FallbackContentType)
	}
	return dst
}

func isDroppedHeader(key string) bool {
	canonical := textproto.CanonicalMIMEHeaderKey(key)
	if _, ok := hopByHopHeaders[canonical]; ok {
		return true
	}
	if _, ok := blockedHeaders[canonical]; ok {
		return true
	}
	return false
}
