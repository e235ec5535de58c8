package quote

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/deusflow/dailydash/internal/fetch"
)

const zenQuotesURL = "https://zenquotes.io/api/random"

// Quote is one motivational quote with its author.
type Quote struct {
	Quote  string
	Author string
}

// Fetch gets a random quote from ZenQuotes. Returns nil on any failure; the
// render layer shows a placeholder instead.
func Fetch(getter fetch.Getter) *Quote {
	body, err := getter.Get(zenQuotesURL)
	if err != nil {
		slog.Warn("error fetching quote", "err", err)
		return nil
	}

	q, err := parse(body)
	if err != nil {
		slog.Warn("error parsing quote response", "err", err)
		return nil
	}
	slog.Info("got quote", "author", q.Author)
	return q
}

func parse(body string) (*Quote, error) {
	// ZenQuotes returns a one-element array: [{"q": "...", "a": "..."}]
	var data []struct {
		Q string `json:"q"`
		A string `json:"a"`
	}
	if err := json.Unmarshal([]byte(body), &data); err != nil {
		return nil, err
	}
	if len(data) == 0 || data[0].Q == "" {
		return nil, fmt.Errorf("empty quote response")
	}
	return &Quote{Quote: data[0].Q, Author: data[0].A}, nil
}
