package feeds

import (
	"log/slog"
	"os"

	"github.com/mmcdole/gofeed"
	"gopkg.in/yaml.v3"
)

// Headline is one (title, link) pair from a news feed.
type Headline struct {
	Title string
	Link  string
}

// FeedsConfig is the YAML config structure
// techcrunch: https://...
// kursors: https://...
type FeedsConfig struct {
	TechCrunch string `yaml:"techcrunch"`
	Kursors    string `yaml:"kursors"`
}

// LoadFeeds reads the feed URLs from a YAML file.
func LoadFeeds(path string) (*FeedsConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg FeedsConfig
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FetchHeadlines downloads one feed and returns up to limit headlines in
// feed order. A nil slice means the source could not be reached; an empty
// one means it was reached but carried nothing.
func FetchHeadlines(url string, limit int) []Headline {
	parser := gofeed.NewParser()
	feed, err := parser.ParseURL(url)
	if err != nil {
		slog.Warn("error parsing feed", "url", url, "err", err)
		return nil
	}

	headlines := make([]Headline, 0, limit)
	for _, item := range feed.Items {
		if len(headlines) >= limit {
			break
		}
		headlines = append(headlines, Headline{
			Title: item.Title,
			Link:  item.Link,
		})
	}

	slog.Info("loaded headlines", "url", url, "count", len(headlines))
	return headlines
}
