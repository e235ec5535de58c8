// Package render assembles the final dashboard.html. Every section degrades
// on its own: a nil aggregate renders an explicit "could not fetch"
// placeholder and an empty one a "no matching items" note, never a missing
// section.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/deusflow/dailydash/internal/cabinet"
	"github.com/deusflow/dailydash/internal/eaddress"
	"github.com/deusflow/dailydash/internal/feeds"
	"github.com/deusflow/dailydash/internal/parliament"
	"github.com/deusflow/dailydash/internal/quote"
)

// Data carries the five aggregates plus the run date.
type Data struct {
	Today      time.Time
	TechCrunch []feeds.Headline
	Kursors    []feeds.Headline
	Quote      *quote.Quote
	EAddress   *eaddress.Data
	Cabinet    *cabinet.Result
	Parliament *parliament.Result
}

// Dashboard renders the complete HTML page.
func Dashboard(d Data) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("    <meta charset=\"UTF-8\">\n")
	b.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	b.WriteString("    <title>Daily Dashboard</title>\n")
	b.WriteString(pageStyle)
	b.WriteString("</head>\n<body>\n    <div class=\"container\">\n")

	b.WriteString("        <header>\n")
	b.WriteString("            <h1>Daily Dashboard</h1>\n")
	b.WriteString(fmt.Sprintf("            <p class=\"date\">%s</p>\n", d.Today.Format("Monday, January 02, 2006")))
	b.WriteString("        </header>\n\n")

	b.WriteString("        <div class=\"tabs\">\n")
	b.WriteString("            <button class=\"tab-btn active\" onclick=\"switchTab('daily')\">Daily</button>\n")
	b.WriteString("            <button class=\"tab-btn\" onclick=\"switchTab('monday')\">Monday</button>\n")
	b.WriteString("        </div>\n\n")

	b.WriteString("        <div id=\"tab-daily\" class=\"tab-content active\">\n")
	writeQuote(&b, d.Quote)
	writeEAddress(&b, d.EAddress)
	writeNewsRow(&b, d.TechCrunch, d.Kursors)
	b.WriteString("        </div><!-- end Daily tab -->\n\n")

	b.WriteString("        <div id=\"tab-monday\" class=\"tab-content\">\n")
	writeCabinet(&b, d.Cabinet)
	writeParliament(&b, d.Parliament)
	b.WriteString("        </div><!-- end Monday tab -->\n\n")

	b.WriteString("        <footer>\n            <p>Daily Dashboard</p>\n        </footer>\n    </div>\n")
	b.WriteString(pageScript)
	b.WriteString("</body>\n</html>\n")

	return b.String()
}

func writeQuote(b *strings.Builder, q *quote.Quote) {
	b.WriteString("        <div class=\"section\">\n            <h2>Inspiration</h2>\n")
	if q == nil {
		b.WriteString("            <div class=\"section-empty\">Could not fetch a quote.</div>\n")
	} else {
		b.WriteString("            <div class=\"quote-box\">\n")
		b.WriteString(fmt.Sprintf("                <p class=\"quote-text\">\"%s\"</p>\n", q.Quote))
		b.WriteString(fmt.Sprintf("                <p class=\"quote-author\">- %s</p>\n", q.Author))
		b.WriteString("            </div>\n")
	}
	b.WriteString("        </div>\n\n")
}

func writeEAddress(b *strings.Builder, data *eaddress.Data) {
	b.WriteString("        <div class=\"section\">\n            <h2>E-Address (e-adrese)</h2>\n")
	if data == nil || len(data.Records) == 0 {
		b.WriteString("            <div class=\"section-empty\">Could not fetch e-address data.</div>\n        </div>\n\n")
		return
	}

	maxVal := 1
	for _, r := range data.Records {
		if r.Fiziska > maxVal {
			maxVal = r.Fiziska
		}
		if r.Juridiska > maxVal {
			maxVal = r.Juridiska
		}
	}

	yFiz, yJur := data.YesterdayFiziska, data.YesterdayJuridiska
	b.WriteString("            <div class=\"metric-cards\">\n")
	writeMetricCard(b, yFiz, data.StreakFiziska, "Yesterday / Natural persons")
	writeMetricCard(b, yJur, data.StreakJuridiska, "Yesterday / Legal entities")
	b.WriteString("            </div>\n")

	b.WriteString("            <div class=\"chart-container\">\n                <div class=\"chart\">\n")
	for _, r := range data.Records {
		fizH := barHeight(r.Fiziska, maxVal)
		jurH := barHeight(r.Juridiska, maxVal)
		b.WriteString(fmt.Sprintf("                    <div class=\"chart-bar-group\" title=\"%s: %s natural / %s legal\">\n",
			r.Label, formatInt(r.Fiziska), formatInt(r.Juridiska)))
		b.WriteString("                        <div class=\"chart-bars\">\n")
		b.WriteString(fmt.Sprintf("                            <div class=\"chart-bar fiziska\" style=\"height:%dpx\"></div>\n", fizH))
		b.WriteString(fmt.Sprintf("                            <div class=\"chart-bar juridiska\" style=\"height:%dpx\"></div>\n", jurH))
		b.WriteString("                        </div>\n")
		b.WriteString(fmt.Sprintf("                        <div class=\"chart-label\">%s</div>\n", r.Label))
		b.WriteString("                    </div>\n")
	}
	b.WriteString("                </div>\n            </div>\n")
	b.WriteString("            <div class=\"chart-legend\">\n")
	b.WriteString("                <span><span class=\"legend-dot\" style=\"background:#00d9ff\"></span>Natural persons</span>\n")
	b.WriteString("                <span><span class=\"legend-dot\" style=\"background:#00ff88\"></span>Legal entities</span>\n")
	b.WriteString("            </div>\n        </div>\n\n")
}

func writeMetricCard(b *strings.Builder, yesterday eaddress.StreakDay, streak []eaddress.StreakDay, label string) {
	b.WriteString("                <div class=\"metric-card\">\n")
	b.WriteString(fmt.Sprintf("                    <div class=\"metric-main\">+%s</div>\n", formatInt(yesterday.Activated)))
	b.WriteString(fmt.Sprintf("                    <div class=\"metric-deact\">-%s</div>\n", formatInt(yesterday.Deactivated)))
	b.WriteString(fmt.Sprintf("                    <div class=\"metric-label\">%s</div>\n", label))
	b.WriteString("                    <div class=\"streak\">")
	for _, s := range streak {
		class, prefix := "positive", "+"
		if s.Net < 0 {
			class, prefix = "negative", ""
		}
		b.WriteString(fmt.Sprintf("<div class=\"streak-day\"><div class=\"streak-val %s\">%s%s</div><div class=\"streak-label\">%s</div></div>",
			class, prefix, formatInt(s.Net), s.Weekday))
	}
	b.WriteString("</div>\n                </div>\n")
}

func writeNewsRow(b *strings.Builder, techcrunch, kursors []feeds.Headline) {
	b.WriteString("        <div class=\"news-row\">\n")
	writeNewsColumn(b, "TechCrunch AI", techcrunch)
	writeNewsColumn(b, "Kursors.lv AI", kursors)
	b.WriteString("        </div><!-- end news-row -->\n\n")
}

func writeNewsColumn(b *strings.Builder, title string, headlines []feeds.Headline) {
	b.WriteString(fmt.Sprintf("        <div class=\"section\">\n            <h2>%s</h2>\n", title))
	if headlines == nil {
		b.WriteString("            <div class=\"section-empty\">Could not fetch headlines.</div>\n")
	} else if len(headlines) == 0 {
		b.WriteString("            <div class=\"section-empty\">No headlines today.</div>\n")
	}
	for _, h := range headlines {
		b.WriteString("            <div class=\"news-item\">\n")
		b.WriteString(fmt.Sprintf("                <a href=\"%s\" target=\"_blank\">%s</a>\n", h.Link, h.Title))
		b.WriteString("            </div>\n")
	}
	b.WriteString("        </div>\n")
}

func writeCabinet(b *strings.Builder, data *cabinet.Result) {
	b.WriteString("        <div class=\"section\">\n            <h2>Cabinet Sitting - R.Cudars Items</h2>\n")
	if data == nil {
		b.WriteString("            <div class=\"cabinet-empty\">Could not fetch cabinet agenda data.</div>\n        </div>\n\n")
		return
	}

	b.WriteString("            <div class=\"cabinet-meeting-info\">\n")
	b.WriteString(fmt.Sprintf("                Next sitting: <strong>%s</strong>\n", data.MeetingDate))
	b.WriteString(fmt.Sprintf("                | <a href=\"%s\" target=\"_blank\">Full agenda</a>\n", data.MeetingURL))
	b.WriteString("            </div>\n")

	if len(data.Items) == 0 {
		b.WriteString("            <div class=\"cabinet-empty\">No items reported by R.Cudars in the next sitting.</div>\n        </div>\n\n")
		return
	}

	currentSection := ""
	for idx, item := range data.Items {
		if item.Section != currentSection {
			currentSection = item.Section
			b.WriteString(fmt.Sprintf("            <div class=\"cabinet-section-name\">%s</div>\n", currentSection))
		}

		summaryID := fmt.Sprintf("cab-summary-%d", idx)
		hasSummary := item.Essence != "" || item.Decision != ""

		b.WriteString("            <div class=\"cabinet-item-wrapper\">\n")
		if hasSummary {
			b.WriteString(fmt.Sprintf("              <div class=\"cabinet-item cabinet-toggle\" onclick=\"toggleSummary('%s')\">\n", summaryID))
			b.WriteString("                <span class=\"toggle-arrow\">&#9654;</span>")
		} else {
			b.WriteString("              <div class=\"cabinet-item\">\n                ")
		}
		b.WriteString(fmt.Sprintf("<a href=\"%s\" target=\"_blank\" onclick=\"event.stopPropagation()\">\n", item.Link))
		b.WriteString(fmt.Sprintf("                    <span class=\"cabinet-ta-id\">%s</span>%s\n                </a>\n              </div>\n", item.ID, item.Title))

		if hasSummary {
			b.WriteString(fmt.Sprintf("              <div class=\"cabinet-summary\" id=\"%s\">\n", summaryID))
			if item.Essence != "" {
				b.WriteString("                <div class=\"summary-label\">Essence of the regulation</div>\n")
				b.WriteString(fmt.Sprintf("                <div class=\"summary-text\">%s</div>\n", item.Essence))
			}
			if item.Decision != "" {
				b.WriteString("                <div class=\"summary-label\">Decision</div>\n")
				b.WriteString(fmt.Sprintf("                <div class=\"summary-decision\">%s</div>\n", item.Decision))
			}
			b.WriteString("              </div>\n")
		}
		b.WriteString("            </div>\n")
	}
	b.WriteString("        </div>\n\n")
}

func writeParliament(b *strings.Builder, data *parliament.Result) {
	b.WriteString("        <div class=\"section\">\n            <h2>Parliament This Week</h2>\n")
	if data == nil {
		b.WriteString("            <div class=\"cabinet-empty\">Could not fetch Parliament agenda data.</div>\n        </div>\n\n")
		return
	}

	b.WriteString(fmt.Sprintf("            <div class=\"parl-week-range\">%s .. %s</div>\n", data.WeekStart, data.WeekEnd))
	if len(data.Items) == 0 {
		b.WriteString("            <div class=\"cabinet-empty\">No VARAM or digital government topics found in next week's agendas.</div>\n        </div>\n\n")
		return
	}

	currentGroup := ""
	for _, item := range data.Items {
		groupKey := item.Commission + "|" + item.DateLabel + "|" + item.Time
		if groupKey != currentGroup {
			currentGroup = groupKey
			b.WriteString("            <div class=\"parl-group-header\">\n")
			b.WriteString(fmt.Sprintf("                <span class=\"parl-date\">%s %s</span> &middot; %s\n", item.DateLabel, item.Time, item.Commission))
			b.WriteString("            </div>\n")
		}

		matchClass, badgeLabel := "", "VARAM"
		if item.MatchType == parliament.MatchContent {
			matchClass, badgeLabel = " content-match", "Digital topic"
		}
		b.WriteString(fmt.Sprintf("            <div class=\"parl-item%s\">\n", matchClass))
		b.WriteString(fmt.Sprintf("                <a href=\"%s\" target=\"_blank\">%s</a>\n", item.Link, item.Point))
		b.WriteString(fmt.Sprintf("                <span class=\"parl-match-badge %s\">%s</span>\n", item.MatchType, badgeLabel))
		b.WriteString("            </div>\n")
	}
	b.WriteString("        </div>\n\n")
}

func barHeight(value, maxVal int) int {
	h := value * 180 / maxVal
	if h < 1 {
		h = 1
	}
	return h
}

// formatInt adds thousands separators: 12345 -> "12,345".
func formatInt(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return sign + s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return sign + strings.Join(parts, ",")
}
