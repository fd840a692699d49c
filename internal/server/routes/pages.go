package routes

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/linkveil/linkveil/internal/rewrite"
	"github.com/linkveil/linkveil/internal/version"
)

var started = time.Now()

// RegisterPageRoutes wires the presentation-layer routes: the landing page
// with the address form and client-local history, plus a small diagnostics
// endpoint. The proxy core does not depend on any of this.
func RegisterPageRoutes(app *fiber.App) {
	if app == nil {
		return
	}

	app.Get("/", func(c fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, "text/html; charset=utf-8")
		return c.SendString(landingPage)
	})

	app.Get("/-/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"name":      "linkveil",
			"version":   version.Full(),
			"uptime_ms": time.Since(started).Milliseconds(),
		})
	})
}

// The landing page constructs a wrapped URL and redirects into the relay.
// Browsing history lives entirely in the client's localStorage: at most
// eight most-recent distinct URLs, most-recent-first, de-duplicated on
// insert. The server never sees or stores it.
const landingPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>linkveil</title>
<style>
body{font-family:sans-serif;max-width:40em;margin:4em auto;padding:0 1em}
form{display:flex;gap:.5em}
input[type=text]{flex:1;padding:.4em}
ul{list-style:none;padding:0}
li{margin:.3em 0}
</style>
</head>
<body>
<h1>linkveil</h1>
<form id="go">
<input type="text" id="url" placeholder="example.com" autofocus>
<input type="submit" value="Browse">
</form>
<h2>Recent</h2>
<ul id="history"></ul>
<script>
(function () {
  var KEY = "linkveil-history";
  var LIMIT = 8;

  function load() {
    try { return JSON.parse(localStorage.getItem(KEY)) || []; }
    catch (e) { return []; }
  }

  function save(urls) {
    localStorage.setItem(KEY, JSON.stringify(urls.slice(0, LIMIT)));
  }

  function remember(url) {
    var urls = load().filter(function (u) { return u !== url; });
    urls.unshift(url);
    save(urls);
  }

  function wrapped(url) {
    return "` + rewrite.EntryPath + `?url=" + encodeURIComponent(url);
  }

  function render() {
    var list = document.getElementById("history");
    list.innerHTML = "";
    load().forEach(function (url) {
      var a = document.createElement("a");
      a.href = wrapped(url);
      a.textContent = url;
      var li = document.createElement("li");
      li.appendChild(a);
      list.appendChild(li);
    });
  }

  document.getElementById("go").addEventListener("submit", function (ev) {
    ev.preventDefault();
    var url = document.getElementById("url").value.trim();
    if (!url) { return; }
    if (!/^https?:\/\//i.test(url)) { url = "https://" + url; }
    remember(url);
    window.location = wrapped(url);
  });

  render();
})();
</script>
</body>
</html>
`
