package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// socialMention is one per-platform row from the social buzz endpoint.
type socialMention struct {
	Artist     string   `json:"artist"`
	Song       string   `json:"song"`
	Platform   string   `json:"platform"`
	Mentions   int      `json:"mentions"`
	Engagement int      `json:"engagement"`
	Sentiment  float64  `json:"sentiment"`
	Hashtags   []string `json:"hashtags"`
}

// Social fetches per-platform mention rows and aggregates them into one
// record per song.
type Social struct {
	client *http.Client
	url    string
}

func NewSocial(url string) *Social {
	return &Social{
		client: &http.Client{},
		url:    url,
	}
}

func (s *Social) Kind() Kind   { return KindSocial }
func (s *Social) Name() string { return "social" }

func (s *Social) Fetch(ctx context.Context) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "afropulse/1.0 buzz aggregator")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("social buzz endpoint returned status %d", resp.StatusCode)
	}

	var mentions []socialMention
	if err := json.NewDecoder(resp.Body).Decode(&mentions); err != nil {
		return nil, fmt.Errorf("decoding social buzz response: %w", err)
	}

	return aggregateSocial(mentions), nil
}

// aggregateSocial folds per-platform rows into one record per (artist, song):
// mention and engagement sums, mean sentiment, distinct platform and hashtag
// lists. Missing identity fields are kept as empty strings rather than
// dropping the row. First-seen order is preserved.
func aggregateSocial(mentions []socialMention) []Record {
	type agg struct {
		rec          Record
		sentimentSum float64
		rows         int
		platforms    map[string]bool
		hashtags     map[string]bool
	}

	index := make(map[string]*agg)
	var order []string

	for _, m := range mentions {
		artist := PrimaryArtist(m.Artist)
		key := strings.ToLower(artist) + "|" + strings.ToLower(strings.TrimSpace(m.Song))

		a, ok := index[key]
		if !ok {
			a = &agg{
				rec: Record{
					Kind:   KindSocial,
					Artist: artist,
					Title:  strings.TrimSpace(m.Song),
				},
				platforms: make(map[string]bool),
				hashtags:  make(map[string]bool),
			}
			index[key] = a
			order = append(order, key)
		}

		a.rec.Mentions += m.Mentions
		a.rec.Engagement += m.Engagement
		a.sentimentSum += m.Sentiment
		a.rows++
		if m.Platform != "" && !a.platforms[m.Platform] {
			a.platforms[m.Platform] = true
			a.rec.Platforms = append(a.rec.Platforms, m.Platform)
		}
		for _, h := range m.Hashtags {
			if h != "" && !a.hashtags[h] {
				a.hashtags[h] = true
				a.rec.Hashtags = append(a.rec.Hashtags, h)
			}
		}
	}

	records := make([]Record, 0, len(order))
	for _, key := range order {
		a := index[key]
		if a.rows > 0 {
			a.rec.Sentiment = a.sentimentSum / float64(a.rows)
		}
		records = append(records, a.rec)
	}
	return records
}
