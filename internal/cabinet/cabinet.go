// Package cabinet scrapes the next Cabinet of Ministers sitting from the TAP
// portal and extracts the agenda items reported by the target minister. The
// portal pages carry no structural nesting, so section membership is
// reconstructed from character offsets: an item belongs to the nearest
// section heading that precedes it.
package cabinet

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/deusflow/dailydash/internal/fetch"
	"github.com/deusflow/dailydash/internal/htmltext"
	"github.com/deusflow/dailydash/internal/metrics"
	"github.com/deusflow/dailydash/internal/summarize"
)

const baseURL = "https://tapportals.mk.gov.lv"

const maxDecisionLen = 600

// Item is one agenda item of the sitting. Essence and Decision stay empty
// unless the item passes the reporter filter and its documents could be
// fetched.
type Item struct {
	Pos      int
	Link     string
	ID       string
	Title    string
	Reporter string
	Section  string
	Essence  string
	Decision string
}

// Result is the aggregate for the render layer; nil means the meetings index
// could not be reached or held no upcoming sitting.
type Result struct {
	MeetingDate string
	MeetingURL  string
	Items       []Item
	Sections    []string
}

type section struct {
	name string
	pos  int
}

var (
	// Sitting rows carry a data-url with a UUID path; the search form also
	// has a data-url, which this pattern rejects.
	meetingPathRe = regexp.MustCompile(`^/meetings/cabinet_ministers/[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	meetingDateRe = regexp.MustCompile(`\d{2}\.\d{2}\.\d{4}\.\s*\d{2}:\d{2}`)

	sectionRe  = regexp.MustCompile(`(?s)meeting__section-row[^>]*>(.*?)</div>\s*</div>`)
	taLinkRe   = regexp.MustCompile(`href="(/legal_acts/[^"]+)"[^>]*>([^<]+)</a>`)
	questionRe = regexp.MustCompile(`data-column-header-name="Jautājums">([^<]+)`)
	reporterRe = regexp.MustCompile(`data-column-header-name="Ziņo"><span[^>]*>([^<]*)</span>`)

	// Both spellings of the target surname, any case.
	targetReporterRe = regexp.MustCompile(`(?i)[čc]udars`)

	legalActTextRe = regexp.MustCompile(`(?i)projekts|grozījum`)
	protocolTextRe = regexp.MustCompile(`(?i)protokollēmum`)

	taNumberRe = regexp.MustCompile(`^\d+-TA-\d+`)
	ordinalRe  = regexp.MustCompile(`^\d+\.$`)
)

// lookahead window after a document link inside which the question and
// reporter cells must appear for the link to count as an agenda item
const itemWindow = 1500

// Fetch runs the whole extraction. A failure before the agenda page is
// parsed yields nil; later failures degrade single items only.
func Fetch(ctx context.Context, getter fetch.Getter, summarizer *summarize.Summarizer) *Result {
	indexHTML, err := getter.Get(baseURL + "/meetings/cabinet_ministers")
	if err != nil {
		slog.Warn("error fetching cabinet meetings index", "err", err)
		return nil
	}

	meetingPath, meetingDate, ok := findNextMeeting(indexHTML)
	if !ok {
		slog.Warn("could not find upcoming cabinet meeting link")
		return nil
	}
	meetingURL := baseURL + meetingPath

	agendaHTML, err := getter.Get(meetingURL)
	if err != nil {
		slog.Warn("error fetching cabinet agenda", "url", meetingURL, "err", err)
		return nil
	}

	sections := extractSections(agendaHTML)
	items := extractItems(agendaHTML)
	assignSections(items, sections)

	var matched []Item
	for _, item := range items {
		if targetReporterRe.MatchString(item.Reporter) {
			matched = append(matched, item)
		}
	}

	for i := range matched {
		enrichItem(ctx, getter, summarizer, &matched[i])
	}

	sectionNames := make([]string, 0, len(sections))
	for _, s := range sections {
		sectionNames = append(sectionNames, s.name)
	}

	slog.Info("cabinet agenda scraped",
		"meeting", meetingDate, "matched", len(matched), "total", len(items))
	metrics.Global.AddCabinetItemsMatched(len(matched))

	return &Result{
		MeetingDate: meetingDate,
		MeetingURL:  meetingURL,
		Items:       matched,
		Sections:    sectionNames,
	}
}

// findNextMeeting locates the first sitting row on the meetings index and
// its displayed date. The index lists upcoming sittings first.
func findNextMeeting(indexHTML string) (path, date string, ok bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(indexHTML))
	if err != nil {
		return "", "", false
	}

	date = "Unknown date"
	doc.Find("[data-url]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		u, _ := sel.Attr("data-url")
		if !meetingPathRe.MatchString(u) {
			return true
		}
		path = u
		if m := meetingDateRe.FindString(sel.Find("span.flextable__value").Text()); m != "" {
			date = m
		}
		return false
	})
	return path, date, path != ""
}

// extractSections records each section heading and its character offset in
// the page.
func extractSections(agendaHTML string) []section {
	var sections []section
	for _, m := range sectionRe.FindAllStringSubmatchIndex(agendaHTML, -1) {
		name := htmltext.StripTags(agendaHTML[m[2]:m[3]])
		sections = append(sections, section{name: name, pos: m[0]})
	}
	return sections
}

// extractItems finds each document link and accepts it as an agenda item
// only if both the question and reporter cells follow within the window.
func extractItems(agendaHTML string) []Item {
	var items []Item
	for _, m := range taLinkRe.FindAllStringSubmatchIndex(agendaHTML, -1) {
		end := m[1] + itemWindow
		if end > len(agendaHTML) {
			end = len(agendaHTML)
		}
		window := agendaHTML[m[1]:end]

		qm := questionRe.FindStringSubmatch(window)
		rm := reporterRe.FindStringSubmatch(window)
		if qm == nil || rm == nil {
			continue
		}

		items = append(items, Item{
			Pos:      m[0],
			Link:     baseURL + agendaHTML[m[2]:m[3]],
			ID:       strings.TrimSpace(agendaHTML[m[4]:m[5]]),
			Title:    strings.TrimSpace(qm[1]),
			Reporter: strings.TrimSpace(rm[1]),
			Section:  "Unknown",
		})
	}
	return items
}

// assignSections gives every item the nearest section heading strictly
// before it; items preceding all sections keep the Unknown sentinel.
func assignSections(items []Item, sections []section) {
	for i := range items {
		for j := len(sections) - 1; j >= 0; j-- {
			if items[i].Pos > sections[j].pos {
				items[i].Section = sections[j].name
				break
			}
		}
	}
}

// enrichItem fetches the item's detail page and fills Essence and Decision
// from the linked documents. Every failure is swallowed: the item keeps
// whatever was populated before the failure.
func enrichItem(ctx context.Context, getter fetch.Getter, summarizer *summarize.Summarizer, item *Item) {
	detailHTML, err := getter.Get(item.Link)
	if err != nil {
		slog.Warn("error fetching item detail page", "id", item.ID, "err", err)
		return
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(detailHTML))
	if err != nil {
		slog.Warn("error parsing item detail page", "id", item.ID, "err", err)
		return
	}

	annotationPath, _ := doc.Find(`a[href^="/annotation/"]`).First().Attr("href")
	legalActPath := findDocumentLink(doc, legalActTextRe)
	protocolPath := findDocumentLink(doc, protocolTextRe)

	var legalActText string
	if legalActPath != "" {
		if body, err := getter.Get(baseURL + legalActPath); err == nil {
			legalActText = htmltext.CleanCollapsed(body)
		} else {
			slog.Debug("error fetching legal act draft", "id", item.ID, "err", err)
		}
	}

	if annotationPath != "" {
		if body, err := getter.Get(baseURL + annotationPath); err == nil {
			annotation := htmltext.CleanCollapsed(body)
			item.Essence = summarizer.Summarize(ctx, annotation, legalActText)
		} else {
			slog.Warn("error fetching annotation", "id", item.ID, "err", err)
		}
	}

	if protocolPath != "" {
		if body, err := getter.Get(baseURL + protocolPath); err == nil {
			item.Decision = extractDecision(htmltext.Lines(body))
		} else {
			slog.Warn("error fetching protocol decision", "id", item.ID, "err", err)
		}
	}

	slog.Debug("fetched documents", "id", item.ID)
}

// findDocumentLink returns the first structuralizer link whose text matches.
func findDocumentLink(doc *goquery.Document, textRe *regexp.Regexp) string {
	var path string
	doc.Find(`a[href^="/structuralizer/"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if !textRe.MatchString(sel.Text()) {
			return true
		}
		path, _ = sel.Attr("href")
		return false
	})
	return path
}

// extractDecision pulls the decision body out of a protocol document. The
// body starts after the document-number line, skips the long title line, and
// runs from the first bare ordinal marker to the footer (copyright, support
// contact or version stamp). Ordinal markers are merged with the text that
// follows them into numbered clauses.
func extractDecision(lines []string) string {
	var clauses []string
	var current strings.Builder

	flush := func() {
		if c := strings.TrimSpace(current.String()); c != "" {
			clauses = append(clauses, c)
		}
		current.Reset()
	}

	awaiting, capturing := false, false
	for _, line := range lines {
		if taNumberRe.MatchString(line) {
			awaiting = true
			continue
		}
		if awaiting && !ordinalRe.MatchString(line) {
			continue
		}
		if awaiting && ordinalRe.MatchString(line) {
			awaiting = false
			capturing = true
		}
		if !capturing {
			continue
		}
		if strings.Contains(line, "© Valsts") ||
			strings.Contains(line, "atbalsts@") ||
			strings.Contains(line, "Versija") {
			break
		}
		if ordinalRe.MatchString(line) {
			flush()
			current.WriteString(line + " ")
		} else {
			if current.Len() > 0 && !strings.HasSuffix(current.String(), " ") {
				current.WriteString(" ")
			}
			current.WriteString(line)
		}
	}
	flush()

	decision := strings.Join(clauses, " ")
	if utf8.RuneCountInString(decision) > maxDecisionLen {
		decision = string([]rune(decision)[:maxDecisionLen])
	}
	return decision
}
