package htmltext

import (
	"reflect"
	"testing"
)

func TestCleanDropsScriptsAndStyles(t *testing.T) {
	html := `<html><head><style>.x { color: red; }</style>
<script type="text/javascript">var secret = "leak";</script></head>
<body><p>Pirm&amp;ais</p><p>Otrais</p></body></html>`

	got := CleanCollapsed(html)
	want := "Pirm ais Otrais"
	if got != want {
		t.Errorf("CleanCollapsed = %q, want %q", got, want)
	}
}

func TestCleanUnclosedScript(t *testing.T) {
	// An unterminated script block stays as-is but its tags are still removed.
	got := CleanCollapsed(`<p>teksts</p><script>var x = 1;`)
	if got != "teksts var x = 1;" {
		t.Errorf("got %q", got)
	}
}

func TestLines(t *testing.T) {
	html := "<div>Darba kārtība</div>\n<div>  </div><div>1. punkts</div>"
	got := Lines(html)
	want := []string{"Darba kārtība", "1. punkts"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lines = %v, want %v", got, want)
	}
}

func TestStripTags(t *testing.T) {
	if got := StripTags(` <a href="/x">25-TA-123</a> `); got != "25-TA-123" {
		t.Errorf("StripTags = %q", got)
	}
}
