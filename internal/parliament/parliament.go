// Package parliament scans next week's Saeima commission sittings for agenda
// points that concern the smart-administration ministry or digital-government
// topics. The sitting index embeds its data in draw_PE() script calls and the
// agenda body is a regex-delimited div, so this source is scanned as text.
package parliament

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/deusflow/dailydash/internal/fetch"
	"github.com/deusflow/dailydash/internal/htmltext"
	"github.com/deusflow/dailydash/internal/metrics"
)

const saeimaBase = "https://titania.saeima.lv"

const maxPointLen = 300

// MatchType tags why a point was considered relevant.
type MatchType string

const (
	// MatchKeyword means a direct ministry-name or acronym hit; it always
	// wins over topic scoring.
	MatchKeyword MatchType = "keyword"
	// MatchContent means at least two digital-government topic stems were
	// found; a single incidental hit is not enough evidence.
	MatchContent MatchType = "content"
)

// Item is one relevant agenda point of a commission sitting.
type Item struct {
	DateLabel  string // "Monday, 07.09."
	Time       string
	Commission string
	Point      string // truncated for display
	Link       string
	MatchType  MatchType
}

// Result covers the whole scanned week; nil only if the week itself could
// not be derived, which plain arithmetic never fails to do.
type Result struct {
	WeekStart string
	WeekEnd   string
	Items     []Item
}

// Ministry-name variants matched directly (lower-case).
var varamKeywords = []string{
	"viedās administrācijas un reģionālās attīstības ministrij",
	"varam",
}

// Digital-government topic stems for content scoring (lower-case).
var digitalTopics = []string{
	"digitāl", "e-pārvald", "e-pakalpojum", "datu pārvaldīb",
	"informācijas sistēm", "informācijas tehnoloģij", "kiberdrošīb",
	"elektronisk", "atvērt", "dati", "digitalizāc",
	"mākslīg", "intelekt", "platforma", "portāl",
	"ikt", "it drošīb", "informācijas sabiedrīb",
	"tehnoloģiju attīstīb", "inovāci", "e-identit",
	"interoperabilit", "reģistr", "datu apstrād",
	"datu aizsardzīb", "privātum",
}

var (
	// Sitting descriptors are embedded as draw_PE({time:"..",title:"..",unid:".."}) calls.
	drawPERe = regexp.MustCompile(`draw_PE\(\{[^}]*time:"([^"]+)"[^}]*title:"([^"]+)"[^}]*unid:"([^"]+)"`)

	textBodyRe = regexp.MustCompile(`(?s)id="textBody">(.*?)(?:</div>\s*<!--|$)`)

	pointBoundaryRe = regexp.MustCompile(`\b\d+\.\s`)
)

// Fetch scans Monday through Friday of the next calendar week. Failures of a
// day's index or a single sitting are swallowed; those units simply
// contribute no items.
func Fetch(getter fetch.Getter, today time.Time) *Result {
	week := nextWeekdays(today)

	var items []Item
	for _, day := range week {
		items = append(items, scanDay(getter, day)...)
	}

	slog.Info("parliament agendas scanned", "days", len(week), "matched", len(items))
	metrics.Global.AddParliamentItemsMatched(len(items))

	return &Result{
		WeekStart: week[0].Format("02.01.2006"),
		WeekEnd:   week[len(week)-1].Format("02.01.2006"),
		Items:     items,
	}
}

// nextWeekdays returns Monday..Friday of the calendar week after today.
func nextWeekdays(today time.Time) []time.Time {
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	// Days until next Monday; a Monday today still points a full week ahead.
	weekday := (int(today.Weekday()) + 6) % 7 // Monday = 0
	until := (7 - weekday) % 7
	if until == 0 {
		until = 7
	}
	monday := today.AddDate(0, 0, until)

	days := make([]time.Time, 5)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}

func scanDay(getter fetch.Getter, day time.Time) []Item {
	url := fmt.Sprintf("%s/LIVS/SaeimasNotikumi.nsf/webComisDK?OpenView&count=1000&restricttocategory=%s",
		saeimaBase, day.Format("02.01.2006"))
	body, err := getter.Get(url)
	if err != nil {
		slog.Warn("error fetching commission sittings index", "day", day.Format("02.01.2006"), "err", err)
		return nil
	}

	var items []Item
	for _, m := range drawPERe.FindAllStringSubmatch(body, -1) {
		timeStr := strings.TrimSpace(strings.ReplaceAll(m[1], ".", ""))
		title, unid := m[2], m[3]

		sittingURL := fmt.Sprintf("%s/LIVS/SaeimasNotikumi.nsf/0/%s?OpenDocument", saeimaBase, unid)
		points, err := fetchAgendaPoints(getter, sittingURL)
		if err != nil {
			slog.Debug("skipping sitting", "unid", unid, "err", err)
			continue
		}

		for _, point := range points {
			matchType, ok := classify(point)
			if !ok {
				continue
			}
			items = append(items, Item{
				DateLabel:  day.Format("Monday, 02.01."),
				Time:       timeStr,
				Commission: title,
				Point:      truncatePoint(point),
				Link:       sittingURL,
				MatchType:  matchType,
			})
		}
	}
	return items
}

// fetchAgendaPoints gets one sitting's page and splits its agenda body into
// itemized points.
func fetchAgendaPoints(getter fetch.Getter, sittingURL string) ([]string, error) {
	body, err := getter.Get(sittingURL)
	if err != nil {
		return nil, err
	}

	tb := textBodyRe.FindStringSubmatch(body)
	if tb == nil {
		return nil, fmt.Errorf("no textBody block")
	}

	text := htmltext.CleanCollapsed(tb[1])
	if text == "" {
		return nil, fmt.Errorf("empty agenda body")
	}
	return splitPoints(text), nil
}

// splitPoints splits the agenda text at boundaries preceding a numbered
// "N. " marker and drops empty fragments.
func splitPoints(text string) []string {
	starts := pointBoundaryRe.FindAllStringIndex(text, -1)

	var fragments []string
	prev := 0
	for _, s := range starts {
		if s[0] > prev {
			fragments = append(fragments, text[prev:s[0]])
		}
		prev = s[0]
	}
	fragments = append(fragments, text[prev:])

	var points []string
	for _, f := range fragments {
		if f = strings.TrimSpace(f); f != "" {
			points = append(points, f)
		}
	}
	return points
}

// classify decides whether a point is relevant. A direct ministry keyword is
// the highest-priority signal and wins regardless of topic hits; otherwise
// at least two topic stems are required.
func classify(point string) (MatchType, bool) {
	lower := strings.ToLower(point)

	for _, kw := range varamKeywords {
		if strings.Contains(lower, kw) {
			return MatchKeyword, true
		}
	}

	hits := 0
	for _, topic := range digitalTopics {
		if strings.Contains(lower, topic) {
			hits++
		}
	}
	if hits >= 2 {
		return MatchContent, true
	}
	return "", false
}

func truncatePoint(point string) string {
	if utf8.RuneCountInString(point) <= maxPointLen {
		return point
	}
	return string([]rune(point)[:maxPointLen]) + "..."
}
