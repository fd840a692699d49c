package rewrite

import (
	"fmt"
	"html"

	"github.com/PuerkitoBio/goquery"
)

// The toolbar is pinned to the top of the page; the body rule reserves the
// vertical space it occupies so existing content is not covered.
const toolbarTemplate = `<div id="linkveil-toolbar">` +
	`<form method="GET" action="%s">` +
	`<input type="text" name="url" value="%s">` +
	`<input type="submit" value="Go">` +
	`</form>` +
	`</div>` +
	`<style>` +
	`#linkveil-toolbar{position:fixed;top:0;left:0;right:0;height:2.4em;` +
	`padding:.3em .6em;background:#222;z-index:2147483647;box-sizing:border-box}` +
	`#linkveil-toolbar form{display:flex;gap:.4em;height:100%%}` +
	`#linkveil-toolbar input[type=text]{flex:1}` +
	`body{margin-top:3em !important}` +
	`</style>`

func toolbarHTML(baseURL string) string {
	return fmt.Sprintf(toolbarTemplate, EntryPath, html.EscapeString(baseURL))
}

// injectToolbar prepends the navigation toolbar to the document body. A
// document without a body element is left alone.
func injectToolbar(doc *goquery.Document, baseURL string) {
	body := doc.Find("body").First()
	if body.Length() == 0 {
		return
	}
	body.PrependHtml(toolbarHTML(baseURL))
}
