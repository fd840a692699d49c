package rewrite

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// attributeRule names a (tag, attribute) pair whose value references an
// external resource. The set is fixed; it is not user-configurable.
type attributeRule struct {
	tag  string
	attr string
}

var attributeRules = []attributeRule{
	{"a", "href"},
	{"link", "href"},
	{"img", "src"},
	{"script", "src"},
	{"iframe", "src"},
	{"source", "src"},
	{"video", "src"},
	{"audio", "src"},
	{"form", "action"},
}

// Values with these prefixes must reach the browser unmodified.
var skipPrefixes = []string{"mailto:", "tel:", "javascript:"}

// cssURLPattern captures the argument of a url(...) functional reference.
// Matching stops at the first closing parenthesis; references containing a
// literal parenthesis are a known, accepted limitation.
var cssURLPattern = regexp.MustCompile(`url\(([^)]*)\)`)

// Document rewraps every resource reference in html against baseURL so that
// subsequent navigation flows back through the proxy, forces form submissions
// to GET, rewrites url(...) references in style blocks, and injects the
// navigation toolbar. Parsing tolerates malformed markup; if the document
// cannot be parsed or serialized at all the input is returned unchanged.
func Document(input, baseURL string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(input))
	if err != nil {
		return input
	}

	for _, rule := range attributeRules {
		doc.Find(rule.tag).Each(func(_ int, sel *goquery.Selection) {
			if value, ok := sel.Attr(rule.attr); ok && !skipValue(value) {
				sel.SetAttr(rule.attr, Wrap(Resolve(value, baseURL)))
			}
			// The relay only speaks GET; a preserved POST would submit
			// straight to the unproxied origin.
			if rule.tag == "form" {
				sel.SetAttr("method", "GET")
			}
		})
	}

	// Style blocks are raw text: entity-escaping setters would leave
	// literal &gt;/&amp; in the CSS, so the text nodes are mutated directly
	// and only when a url(...) reference actually changed.
	doc.Find("style").Each(func(_ int, sel *goquery.Selection) {
		for _, node := range sel.Nodes {
			for child := node.FirstChild; child != nil; child = child.NextSibling {
				if child.Type != html.TextNode {
					continue
				}
				if rewritten := rewriteStyleText(child.Data, baseURL); rewritten != child.Data {
					child.Data = rewritten
				}
			}
		}
	})

	injectToolbar(doc, baseURL)

	out, err := doc.Html()
	if err != nil {
		return input
	}
	return out
}

// skipValue reports whether an attribute value must pass through untouched:
// empty values, pure fragment references, and mailto/tel/javascript schemes.
func skipValue(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return true
	}
	lower := strings.ToLower(trimmed)
	for _, prefix := range skipPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// rewriteStyleText rewraps url(...) references inside a style block. Quotes
// around the reference are stripped, data: URIs pass through unchanged.
func rewriteStyleText(css, baseURL string) string {
	return cssURLPattern.ReplaceAllStringFunc(css, func(match string) string {
		inner := cssURLPattern.FindStringSubmatch(match)[1]
		ref := strings.Trim(strings.TrimSpace(inner), `'"`)
		if ref == "" || strings.HasPrefix(strings.ToLower(ref), "data:") {
			return match
		}
		return "url(" + Wrap(Resolve(ref, baseURL)) + ")"
	})
}
