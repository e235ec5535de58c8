package render

import (
	"strings"
	"testing"
	"time"

	"github.com/deusflow/dailydash/internal/cabinet"
	"github.com/deusflow/dailydash/internal/eaddress"
	"github.com/deusflow/dailydash/internal/feeds"
	"github.com/deusflow/dailydash/internal/parliament"
	"github.com/deusflow/dailydash/internal/quote"
)

func testDate() time.Time {
	return time.Date(2026, 7, 10, 8, 0, 0, 0, time.UTC)
}

func TestDashboardAllSourcesMissing(t *testing.T) {
	html := Dashboard(Data{Today: testDate()})

	placeholders := []string{
		"Could not fetch a quote.",
		"Could not fetch e-address data.",
		"Could not fetch headlines.",
		"Could not fetch cabinet agenda data.",
		"Could not fetch Parliament agenda data.",
	}
	for _, p := range placeholders {
		if !strings.Contains(html, p) {
			t.Errorf("placeholder %q missing from output", p)
		}
	}
	if !strings.Contains(html, "Friday, July 10, 2026") {
		t.Error("run date not rendered")
	}
}

func TestDashboardEmptyVsNil(t *testing.T) {
	// An empty slice means the fetch worked but produced nothing, which
	// renders a different note than a failed fetch.
	html := Dashboard(Data{
		Today:      testDate(),
		Quote:      &quote.Quote{Quote: "Do the work.", Author: "Anonymous"},
		TechCrunch: []feeds.Headline{},
		Parliament: &parliament.Result{WeekStart: "13.07.2026", WeekEnd: "17.07.2026"},
		Cabinet:    &cabinet.Result{MeetingDate: "14.07.2026", MeetingURL: "https://example.test/a"},
	})

	if !strings.Contains(html, "No headlines today.") {
		t.Error("empty headline list should render the no-headlines note")
	}
	if !strings.Contains(html, "Do the work.") || !strings.Contains(html, "- Anonymous") {
		t.Error("quote should render when present")
	}
	if !strings.Contains(html, "No VARAM or digital government topics") {
		t.Error("empty parliament result should render the no-topics note")
	}
	if !strings.Contains(html, "No items reported by R.Cudars") {
		t.Error("empty cabinet result should render the no-items note")
	}
	if !strings.Contains(html, "13.07.2026 .. 17.07.2026") {
		t.Error("week range missing")
	}
}

func TestDashboardCabinetGrouping(t *testing.T) {
	data := &cabinet.Result{
		MeetingDate: "14.07.2026",
		MeetingURL:  "https://example.test/agenda",
		Items: []cabinet.Item{
			{Section: "Saskaņotie projekti", ID: "25-TA-100", Title: "First", Link: "https://example.test/1", Essence: "Short essence"},
			{Section: "Saskaņotie projekti", ID: "25-TA-101", Title: "Second", Link: "https://example.test/2"},
			{Section: "Informatīvie ziņojumi", ID: "25-TA-102", Title: "Third", Link: "https://example.test/3", Decision: "1. Pieņemt zināšanai."},
		},
	}
	html := Dashboard(Data{Today: testDate(), Cabinet: data})

	if got := strings.Count(html, `class="cabinet-section-name"`); got != 2 {
		t.Errorf("expected 2 section headers, counted %d", got)
	}
	if !strings.Contains(html, "cab-summary-0") || !strings.Contains(html, "cab-summary-2") {
		t.Error("items with summaries should have toggle blocks")
	}
	if strings.Contains(html, "cab-summary-1") {
		t.Error("item without essence or decision should not get a summary block")
	}
	if !strings.Contains(html, "Essence of the regulation") || !strings.Contains(html, "Pieņemt zināšanai") {
		t.Error("summary content missing")
	}
}

func TestDashboardParliamentBadges(t *testing.T) {
	data := &parliament.Result{
		WeekStart: "13.07.2026",
		WeekEnd:   "17.07.2026",
		Items: []parliament.Item{
			{DateLabel: "Monday, 13.07.", Time: "1000", Commission: "Budžeta komisija", Point: "Par VARAM ziņojumu", Link: "https://example.test/p1", MatchType: parliament.MatchKeyword},
			{DateLabel: "Monday, 13.07.", Time: "1000", Commission: "Budžeta komisija", Point: "Datu platformas attīstība", Link: "https://example.test/p2", MatchType: parliament.MatchContent},
		},
	}
	html := Dashboard(Data{Today: testDate(), Parliament: data})

	if got := strings.Count(html, `class="parl-group-header"`); got != 1 {
		t.Errorf("same commission, date and time should share one header, counted %d", got)
	}
	if !strings.Contains(html, ">VARAM</span>") {
		t.Error("keyword badge missing")
	}
	if !strings.Contains(html, ">Digital topic</span>") {
		t.Error("content badge missing")
	}
}

func TestDashboardEAddressChart(t *testing.T) {
	data := &eaddress.Data{
		Records: []eaddress.MonthlyRecord{
			{Label: "01.2026", Fiziska: 1000, Juridiska: 500},
			{Label: "02.2026", Fiziska: 2000, Juridiska: 250},
		},
		StreakFiziska: []eaddress.StreakDay{
			{Weekday: "Mon", Activated: 40, Deactivated: 3, Net: 37},
			{Weekday: "Tue", Activated: 2, Deactivated: 9, Net: -7},
		},
		StreakJuridiska:    []eaddress.StreakDay{{Weekday: "Mon", Activated: 5, Deactivated: 1, Net: 4}},
		YesterdayFiziska:   eaddress.StreakDay{Activated: 1234, Deactivated: 10},
		YesterdayJuridiska: eaddress.StreakDay{Activated: 55, Deactivated: 2},
	}
	html := Dashboard(Data{Today: testDate(), EAddress: data})

	if !strings.Contains(html, "+1,234") {
		t.Error("yesterday metric should use thousands separators")
	}
	// tallest bar scales to full height, the rest proportionally
	if !strings.Contains(html, "height:180px") {
		t.Error("max bar should be 180px")
	}
	if !strings.Contains(html, "height:90px") {
		t.Error("half-of-max bar should be 90px")
	}
	if !strings.Contains(html, ">-7<") || !strings.Contains(html, ">+37<") {
		t.Error("streak net values should be signed")
	}
}

func TestFormatInt(t *testing.T) {
	cases := map[int]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		1234567: "1,234,567",
		-4521:   "-4,521",
	}
	for in, want := range cases {
		if got := formatInt(in); got != want {
			t.Errorf("formatInt(%d) = %q, want %q", in, got, want)
		}
	}
}
