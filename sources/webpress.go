package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// webMention is one row from the web-press buzz endpoint.
type webMention struct {
	Artist    string   `json:"artist"`
	Song      string   `json:"song"`
	Mentions  int      `json:"mentions"`
	Sentiment float64  `json:"sentiment"`
	Relevance float64  `json:"relevance"`
	Sources   []string `json:"sources"`
	Category  string   `json:"category"`
}

// WebPress fetches press-mention counts from the web buzz endpoint.
type WebPress struct {
	client *http.Client
	url    string
}

func NewWebPress(url string) *WebPress {
	return &WebPress{
		client: &http.Client{},
		url:    url,
	}
}

func (w *WebPress) Kind() Kind   { return KindWeb }
func (w *WebPress) Name() string { return "webpress" }

func (w *WebPress) Fetch(ctx context.Context) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "afropulse/1.0 buzz aggregator")

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("web buzz endpoint returned status %d", resp.StatusCode)
	}

	var mentions []webMention
	if err := json.NewDecoder(resp.Body).Decode(&mentions); err != nil {
		return nil, fmt.Errorf("decoding web buzz response: %w", err)
	}

	return aggregateWeb(mentions), nil
}

// aggregateWeb folds duplicate rows for the same song: mention sums, mean
// sentiment and relevance, distinct outlet list. The endpoint normally
// sends one row per song, so most calls this is a straight conversion.
func aggregateWeb(mentions []webMention) []Record {
	type agg struct {
		rec          Record
		sentimentSum float64
		relevanceSum float64
		rows         int
		outlets      map[string]bool
	}

	index := make(map[string]*agg)
	var order []string

	for _, m := range mentions {
		artist := strings.TrimSpace(m.Artist)
		key := strings.ToLower(artist) + "|" + strings.ToLower(strings.TrimSpace(m.Song))

		a, ok := index[key]
		if !ok {
			a = &agg{
				rec: Record{
					Kind:     KindWeb,
					Artist:   artist,
					Title:    strings.TrimSpace(m.Song),
					Category: m.Category,
				},
				outlets: make(map[string]bool),
			}
			index[key] = a
			order = append(order, key)
		}

		a.rec.Mentions += m.Mentions
		a.sentimentSum += m.Sentiment
		a.relevanceSum += m.Relevance
		a.rows++
		for _, o := range m.Sources {
			if o != "" && !a.outlets[o] {
				a.outlets[o] = true
				a.rec.Outlets = append(a.rec.Outlets, o)
			}
		}
	}

	records := make([]Record, 0, len(order))
	for _, key := range order {
		a := index[key]
		if a.rows > 0 {
			a.rec.Sentiment = a.sentimentSum / float64(a.rows)
			a.rec.Relevance = a.relevanceSum / float64(a.rows)
		}
		records = append(records, a.rec)
	}
	return records
}
