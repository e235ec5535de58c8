// Package eaddress turns the monthly e-address counters published on
// data.gov.lv into a chart series and a synthetic 7-day daily streak.
package eaddress

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/deusflow/dailydash/internal/fetch"
)

const (
	datastoreURL = "https://data.gov.lv/dati/lv/api/3/action/datastore_search"

	activationResourceID   = "c0062919-0601-4ac0-a319-92db7dd14d79"
	deactivationResourceID = "938b4925-86da-4229-a86d-fbc4365f555b"
)

// MonthlyRecord is one monthly snapshot from the statistics provider.
// Activation counts are cumulative totals; deactivation counts are plain
// monthly counts.
type MonthlyRecord struct {
	Date      time.Time
	Label     string // "Jan 2026"
	Fiziska   int    // natural persons
	Juridiska int    // legal entities
}

// DailyRate is the derived per-day rate for the monthly period starting at
// Date.
type DailyRate struct {
	Date      time.Time
	Fiziska   int
	Juridiska int
}

// StreakDay is one synthesized day of activity, ending at "yesterday".
type StreakDay struct {
	Weekday     string // "Mon".."Sun"
	Activated   int
	Deactivated int
	Net         int
}

// Data is the aggregate handed to the render layer. Nil means the source
// could not be reached at all, distinct from reached-but-empty.
type Data struct {
	Records            []MonthlyRecord // chart series, last 3 years
	StreakFiziska      []StreakDay
	StreakJuridiska    []StreakDay
	YesterdayFiziska   StreakDay
	YesterdayJuridiska StreakDay
}

// Fetch pulls both datasets and synthesizes the streak. Any failure yields
// nil: the synthesizer never partially fails.
func Fetch(getter fetch.Getter, today time.Time) *Data {
	actRecords, err := fetchResource(getter, activationResourceID)
	if err != nil {
		slog.Warn("error fetching e-address activation data", "err", err)
		return nil
	}
	deactRecords, err := fetchResource(getter, deactivationResourceID)
	if err != nil {
		slog.Warn("error fetching e-address deactivation data", "err", err)
		return nil
	}

	data := Build(actRecords, deactRecords, today)
	slog.Info("got e-address data", "months", len(data.Records))
	return data
}

// Build synthesizes the aggregate from already-fetched records. Split out of
// Fetch so the derivation is testable with fixed inputs and a fixed today.
func Build(actRecords, deactRecords []MonthlyRecord, today time.Time) *Data {
	today = midnight(today)

	// Chart keeps the most recent 3 years of the activation series.
	cutoff := today.AddDate(0, 0, -3*365)
	var chart []MonthlyRecord
	for _, r := range actRecords {
		if !r.Date.Before(cutoff) {
			chart = append(chart, r)
		}
	}

	actRates := buildDailyRates(actRecords)
	deactRates := buildDeactivationRates(deactRecords)

	var streakFiz, streakJur []StreakDay
	for daysAgo := 7; daysAgo >= 1; daysAgo-- {
		day := today.AddDate(0, 0, -daysAgo)
		actFiz, actJur := findRate(actRates, day)
		deactFiz, deactJur := findRate(deactRates, day)

		aFiz := vary(actFiz, day, "fiz")
		aJur := vary(actJur, day, "jur")
		dFiz := vary(deactFiz, day, "deact_fiz")
		dJur := vary(deactJur, day, "deact_jur")

		weekday := day.Format("Mon")
		streakFiz = append(streakFiz, StreakDay{
			Weekday:     weekday,
			Activated:   aFiz,
			Deactivated: dFiz,
			Net:         aFiz - dFiz,
		})
		streakJur = append(streakJur, StreakDay{
			Weekday:     weekday,
			Activated:   aJur,
			Deactivated: dJur,
			Net:         aJur - dJur,
		})
	}

	return &Data{
		Records:            chart,
		StreakFiziska:      streakFiz,
		StreakJuridiska:    streakJur,
		YesterdayFiziska:   streakFiz[len(streakFiz)-1],
		YesterdayJuridiska: streakJur[len(streakJur)-1],
	}
}

// buildDailyRates differences the cumulative activation totals of each
// adjacent month pair into a per-day rate.
func buildDailyRates(records []MonthlyRecord) []DailyRate {
	var rates []DailyRate
	for i := 1; i < len(records); i++ {
		prev, curr := records[i-1], records[i]
		days := int(curr.Date.Sub(prev.Date).Hours() / 24)
		if days == 0 {
			days = 1
		}
		rates = append(rates, DailyRate{
			Date:      curr.Date,
			Fiziska:   roundDiv(curr.Fiziska-prev.Fiziska, days),
			Juridiska: roundDiv(curr.Juridiska-prev.Juridiska, days),
		})
	}
	return rates
}

// buildDeactivationRates divides each month's (non-cumulative) count by the
// days in that month. The final month has no successor; 30 is the fixed
// approximation.
func buildDeactivationRates(records []MonthlyRecord) []DailyRate {
	var rates []DailyRate
	for i, r := range records {
		days := 30
		if i+1 < len(records) {
			days = int(records[i+1].Date.Sub(r.Date).Hours() / 24)
			if days == 0 {
				days = 30
			}
		}
		rates = append(rates, DailyRate{
			Date:      r.Date,
			Fiziska:   roundDiv(r.Fiziska, days),
			Juridiska: roundDiv(r.Juridiska, days),
		})
	}
	return rates
}

// findRate locates the rate of the monthly period the day belongs to: the
// latest rate whose date is not after the day. Falls back to the last known
// rate, or zero when the series is empty.
func findRate(rates []DailyRate, day time.Time) (fiziska, juridiska int) {
	if len(rates) == 0 {
		return 0, 0
	}
	fiziska = rates[len(rates)-1].Fiziska
	juridiska = rates[len(rates)-1].Juridiska
	for i := len(rates) - 1; i >= 0; i-- {
		if !day.Before(rates[i].Date) {
			return rates[i].Fiziska, rates[i].Juridiska
		}
	}
	return fiziska, juridiska
}

// vary applies the deterministic jitter: the same (day, category) pair must
// always produce the same value so the report looks stable between renders.
func vary(avg int, day time.Time, category string) int {
	seed := md5.Sum([]byte(day.Format("2006-01-02T15:04:05") + "-" + category))
	hexSeed := hex.EncodeToString(seed[:])
	n, _ := strconv.ParseUint(hexSeed[:8], 16, 64)
	frac := float64(n) / float64(0xFFFFFFFF)
	offset := (frac - 0.5) * 0.4
	v := int(math.Round(float64(avg) * (1 + offset)))
	if v < 0 {
		v = 0
	}
	return v
}

func fetchResource(getter fetch.Getter, resourceID string) ([]MonthlyRecord, error) {
	url := fmt.Sprintf("%s?resource_id=%s&limit=100&sort=_id+asc", datastoreURL, resourceID)
	body, err := getter.Get(url)
	if err != nil {
		return nil, err
	}
	return parseResource(body)
}

func parseResource(body string) ([]MonthlyRecord, error) {
	var resp struct {
		Result struct {
			Records []map[string]interface{} `json:"records"`
		} `json:"result"`
	}
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return nil, fmt.Errorf("error parsing datastore response: %w", err)
	}

	var records []MonthlyRecord
	for _, row := range resp.Result.Records {
		ds, _ := row["DATUMS"].(string)
		if len(ds) < 10 {
			continue
		}
		date, err := time.Parse("2006-01-02", ds[:10])
		if err != nil {
			continue
		}
		records = append(records, MonthlyRecord{
			Date:      date,
			Label:     date.Format("Jan 2006"),
			Fiziska:   toInt(row["FIZISKA PERSONA"]),
			Juridiska: toInt(row["REĢISTROS REĢISTRĒTS TIESĪBU SUBJEKTS"]),
		})
	}
	return records, nil
}

// toInt coerces the loosely typed datastore cells (numbers arrive as
// float64, sometimes as strings).
func toInt(v interface{}) int {
	switch x := v.(type) {
	case float64:
		return int(x)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func roundDiv(n, d int) int {
	return int(math.Round(float64(n) / float64(d)))
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
