// Package app wires the dashboard pipeline together: load config, gather
// every source, render the page and write it to disk. Each source is
// collected independently so one broken site never empties the others.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/deusflow/dailydash/internal/cabinet"
	"github.com/deusflow/dailydash/internal/config"
	"github.com/deusflow/dailydash/internal/eaddress"
	"github.com/deusflow/dailydash/internal/feeds"
	"github.com/deusflow/dailydash/internal/fetch"
	"github.com/deusflow/dailydash/internal/logger"
	"github.com/deusflow/dailydash/internal/metrics"
	"github.com/deusflow/dailydash/internal/parliament"
	"github.com/deusflow/dailydash/internal/quote"
	"github.com/deusflow/dailydash/internal/ratelimit"
	"github.com/deusflow/dailydash/internal/render"
	"github.com/deusflow/dailydash/internal/summarize"
)

// Run executes one full dashboard build.
func Run() error {
	start := time.Now()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger.Init(cfg.Debug)
	logger.Info("Starting dashboard build")

	ctx := context.Background()
	client := fetch.NewClient(cfg.RequestTimeout)
	limiter := ratelimit.NewGenerativeLimiter(cfg.MaxGeminiRequests)

	summarizer, err := summarize.New(ctx, cfg.GeminiAPIKey, summarize.Options{
		EnableGenerative:   cfg.Summarizer.EnableGenerative,
		MinGenerativeLen:   cfg.Summarizer.MinGenerativeLen,
		MaxAnnotationChars: cfg.Summarizer.MaxAnnotationChars,
		MaxLegalActChars:   cfg.Summarizer.MaxLegalActChars,
	}, limiter)
	if err != nil {
		// Fall back to deterministic extraction rather than aborting the run.
		logger.Warn("Generative summarizer unavailable, using fallback only", "error", err)
		summarizer, _ = summarize.New(ctx, "", summarize.Options{}, limiter)
	}
	defer summarizer.Close()

	today := time.Now()
	data := render.Data{Today: today}

	data.TechCrunch, data.Kursors = gatherHeadlines(cfg)
	data.Quote = gatherQuote(client)
	data.EAddress = gatherEAddress(client, today)
	data.Cabinet = gatherCabinet(ctx, client, summarizer)
	data.Parliament = gatherParliament(client, today)

	html := render.Dashboard(data)
	if err := os.WriteFile(cfg.OutputPath, []byte(html), 0644); err != nil {
		metrics.Global.SetError(err.Error())
		return fmt.Errorf("failed to write dashboard: %w", err)
	}

	metrics.Global.RecordRunDuration(time.Since(start))
	metrics.Global.SetLastRun()
	logger.Info("Dashboard written",
		"path", cfg.OutputPath,
		"duration", time.Since(start).Round(time.Millisecond).String(),
		"gemini_requests", limiter.Used())
	return nil
}

func gatherHeadlines(cfg *config.Config) (techcrunch, kursors []feeds.Headline) {
	feedCfg, err := feeds.LoadFeeds(cfg.FeedsConfigPath)
	if err != nil {
		logger.Error("Failed to load feeds config", "error", err)
		metrics.Global.IncrementSourcesFailed()
		metrics.Global.IncrementSourcesFailed()
		return nil, nil
	}

	techcrunch = feeds.FetchHeadlines(feedCfg.TechCrunch, cfg.MaxHeadlines)
	countSource("techcrunch", techcrunch != nil)
	kursors = feeds.FetchHeadlines(feedCfg.Kursors, cfg.MaxHeadlines)
	countSource("kursors", kursors != nil)
	return techcrunch, kursors
}

func gatherQuote(client *fetch.Client) *quote.Quote {
	q := quote.Fetch(client)
	countSource("quote", q != nil)
	return q
}

func gatherEAddress(client *fetch.Client, today time.Time) *eaddress.Data {
	d := eaddress.Fetch(client, today)
	countSource("eaddress", d != nil)
	return d
}

func gatherCabinet(ctx context.Context, client *fetch.Client, summarizer *summarize.Summarizer) *cabinet.Result {
	r := cabinet.Fetch(ctx, client, summarizer)
	countSource("cabinet", r != nil)
	return r
}

func gatherParliament(client *fetch.Client, today time.Time) *parliament.Result {
	// parliament.Fetch tolerates per-day failures itself and never returns nil.
	r := parliament.Fetch(client, today)
	countSource("parliament", r != nil)
	return r
}

func countSource(name string, ok bool) {
	if ok {
		metrics.Global.IncrementSourcesFetched()
	} else {
		logger.Warn("Source unavailable, section will show a placeholder", "source", name)
		metrics.Global.IncrementSourcesFailed()
	}
}
