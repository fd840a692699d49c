// Package rewrite implements the single rewrite pass applied to HTML
// responses: resolving each resource reference against the page's base URL,
// wrapping the absolute result into the proxy's self-referential form,
// rewriting url(...) references inside style blocks, and injecting the
// navigation toolbar. Rewriting is best-effort by design: malformed markup
// and unresolvable references pass through unchanged rather than failing the
// page.
package rewrite
