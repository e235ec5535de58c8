package parliament

import (
	"errors"
	"strings"
	"time"

	"testing"
)

type stubGetter map[string]string

func (s stubGetter) Get(url string) (string, error) {
	if body, ok := s[url]; ok {
		return body, nil
	}
	return "", errors.New("connection refused")
}

func TestNextWeekdays(t *testing.T) {
	tests := []struct {
		name       string
		today      time.Time
		wantMonday string
	}{
		{"from wednesday", time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC), "31.08.2026"},
		{"from sunday", time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), "31.08.2026"},
		{"from monday skips to next week", time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), "07.09.2026"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := nextWeekdays(tt.today)
			if len(days) != 5 {
				t.Fatalf("got %d days, want 5", len(days))
			}
			if got := days[0].Format("02.01.2006"); got != tt.wantMonday {
				t.Errorf("monday = %s, want %s", got, tt.wantMonday)
			}
			if days[0].Weekday() != time.Monday || days[4].Weekday() != time.Friday {
				t.Errorf("week spans %s..%s", days[0].Weekday(), days[4].Weekday())
			}
		})
	}
}

func TestClassifyThreshold(t *testing.T) {
	// A single incidental topic hit is not relevant.
	if _, ok := classify("1. Grozījumi likumā par reģistriem"); ok {
		t.Error("one topic hit should be discarded")
	}

	// Two topic stems make a content match.
	mt, ok := classify("2. Par valsts portāla digitālo pakalpojumu attīstību")
	if !ok || mt != MatchContent {
		t.Errorf("two topic hits => (%v, %v), want content match", mt, ok)
	}

	// A ministry acronym is a keyword match regardless of topic count.
	mt, ok = classify("3. VARAM budžeta pieprasījums")
	if !ok || mt != MatchKeyword {
		t.Errorf("acronym => (%v, %v), want keyword match", mt, ok)
	}
	mt, ok = classify("4. VARAM ziņojums par digitālo portālu un datu apstrādi")
	if !ok || mt != MatchKeyword {
		t.Errorf("acronym with topics => (%v, %v), want keyword match", mt, ok)
	}

	if _, ok := classify("5. Par mežsaimniecības nozares attīstību"); ok {
		t.Error("unrelated point should be discarded")
	}
}

func TestClassifyFullMinistryName(t *testing.T) {
	mt, ok := classify("1. Viedās administrācijas un reģionālās attīstības ministrijas informatīvais ziņojums")
	if !ok || mt != MatchKeyword {
		t.Errorf("full ministry name => (%v, %v), want keyword match", mt, ok)
	}
}

func TestSplitPoints(t *testing.T) {
	points := splitPoints("Darba kārtība 1. Pirmais jautājums 2. Otrais jautājums")
	want := []string{"Darba kārtība", "1. Pirmais jautājums", "2. Otrais jautājums"}
	if len(points) != len(want) {
		t.Fatalf("got %d points: %v", len(points), points)
	}
	for i := range want {
		if points[i] != want[i] {
			t.Errorf("point %d = %q, want %q", i, points[i], want[i])
		}
	}
}

func TestTruncatePoint(t *testing.T) {
	long := strings.Repeat("ā", 350)
	got := truncatePoint(long)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected ellipsis marker on truncated point")
	}
	if n := len([]rune(got)); n != maxPointLen+3 {
		t.Errorf("truncated length = %d runes, want %d", n, maxPointLen+3)
	}
	if truncatePoint("īss") != "īss" {
		t.Error("short point must pass through unchanged")
	}
}

const dayIndexHTML = `<html><script>
draw_PE({css:"pe",time:"10.00",title:"Valsts pārvaldes un pašvaldības komisija",unid:"ABC123"});
</script></html>`

const sittingHTML = `<html><body><div id="textBody">
<script>var fake = "1. digitāl dati portāls";</script>
<p>Darba kārtība</p>
<p>1. Par VARAM informatīvo ziņojumu</p>
<p>2. Lauksaimniecības jautājums</p>
</div><!-- footer --></body></html>`

func TestFetchFullWeek(t *testing.T) {
	today := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC) // Wednesday

	indexURL := saeimaBase + "/LIVS/SaeimasNotikumi.nsf/webComisDK?OpenView&count=1000&restricttocategory=31.08.2026"
	sittingURL := saeimaBase + "/LIVS/SaeimasNotikumi.nsf/0/ABC123?OpenDocument"

	// Only Monday's index resolves; the other four days fail and must be
	// skipped without failing the run.
	g := stubGetter{
		indexURL:   dayIndexHTML,
		sittingURL: sittingHTML,
	}

	res := Fetch(g, today)
	if res == nil {
		t.Fatal("expected a result")
	}
	if res.WeekStart != "31.08.2026" || res.WeekEnd != "04.09.2026" {
		t.Errorf("week = %s..%s", res.WeekStart, res.WeekEnd)
	}
	if len(res.Items) != 1 {
		t.Fatalf("got %d items, want 1: %v", len(res.Items), res.Items)
	}

	item := res.Items[0]
	if item.MatchType != MatchKeyword {
		t.Errorf("match type = %v, want keyword", item.MatchType)
	}
	if item.DateLabel != "Monday, 31.08." || item.Time != "1000" {
		t.Errorf("item header = %q %q", item.DateLabel, item.Time)
	}
	if item.Commission != "Valsts pārvaldes un pašvaldības komisija" {
		t.Errorf("commission = %q", item.Commission)
	}
	if !strings.Contains(item.Point, "Par VARAM informatīvo ziņojumu") {
		t.Errorf("point = %q", item.Point)
	}
	if item.Link != sittingURL {
		t.Errorf("link = %q", item.Link)
	}
}

func TestFetchSittingWithoutBodyIsSkipped(t *testing.T) {
	today := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	indexURL := saeimaBase + "/LIVS/SaeimasNotikumi.nsf/webComisDK?OpenView&count=1000&restricttocategory=31.08.2026"
	sittingURL := saeimaBase + "/LIVS/SaeimasNotikumi.nsf/0/ABC123?OpenDocument"

	g := stubGetter{
		indexURL:   dayIndexHTML,
		sittingURL: `<html><body>nothing here</body></html>`,
	}

	res := Fetch(g, today)
	if res == nil {
		t.Fatal("expected a result")
	}
	if len(res.Items) != 0 {
		t.Errorf("got %d items, want 0", len(res.Items))
	}
}
