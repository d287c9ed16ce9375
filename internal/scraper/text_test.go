package scraper

import (
	"strings"
	"testing"
)

func TestVisibleText_StripsScriptsAndStyles(t *testing.T) {
	html := `
<html><head>
<style>body { color: red; }</style>
<script>var tracking = true;</script>
</head><body>
  <nav>Jobs   Home</nav>
  <h1>Senior   Engineer</h1>
  <noscript>enable javascript</noscript>
</body></html>`

	got := VisibleText(mustDoc(t, html))

	if strings.Contains(got, "tracking") || strings.Contains(got, "color") {
		t.Fatalf("script/style content leaked into text: %q", got)
	}
	if strings.Contains(got, "enable javascript") {
		t.Fatalf("noscript content leaked into text: %q", got)
	}
	if got != "Jobs Home Senior Engineer" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestVisibleText_TruncatesLongPages(t *testing.T) {
	html := "<html><body>" + strings.Repeat("lorem ipsum ", 5000) + "</body></html>"

	got := VisibleText(mustDoc(t, html))
	if len(got) > maxVisibleTextChars {
		t.Fatalf("text not truncated: %d chars", len(got))
	}
}
