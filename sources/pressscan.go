package sources

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/gocolly/colly"
)

// DefaultPressSites are the press pages scanned for song headlines when no
// override is configured.
var DefaultPressSites = []string{
	"https://notjustok.com/category/music/",
	"https://www.okayafrica.com/music/",
}

// headlinePattern matches `Artist – "Song"` style headlines, with or
// without quotes, using a hyphen, en dash, or em dash.
var headlinePattern = regexp.MustCompile(`^(.{2,60}?)\s+[-–—]\s+["'“‘]?(.{2,80}?)["'”’]?$`)

// PressScan scrapes music-press headlines and converts parseable ones into
// web-press records. It supplements the web buzz endpoint with live outlet
// mentions.
type PressScan struct {
	sites []string
}

func NewPressScan(sites []string) *PressScan {
	if len(sites) == 0 {
		sites = DefaultPressSites
	}
	return &PressScan{sites: sites}
}

func (p *PressScan) Kind() Kind   { return KindWeb }
func (p *PressScan) Name() string { return "pressscan" }

func (p *PressScan) Fetch(ctx context.Context) ([]Record, error) {
	var records []Record
	var lastErr error

	for _, site := range p.sites {
		if err := ctx.Err(); err != nil {
			return records, err
		}
		recs, err := p.scanSite(site)
		if err != nil {
			lastErr = err
			continue
		}
		records = append(records, recs...)
	}

	if len(records) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return records, nil
}

func (p *PressScan) scanSite(site string) ([]Record, error) {
	c := colly.NewCollector()
	c.UserAgent = "afropulse/1.0 buzz aggregator"

	var records []Record
	outlet := outletName(site)

	c.OnHTML("article h2 a, article h3 a, h2.entry-title a", func(e *colly.HTMLElement) {
		title := strings.TrimSpace(e.Text)
		m := headlinePattern.FindStringSubmatch(title)
		if m == nil {
			return
		}

		// Position on the page stands in for relevance.
		relevance := float64(100 - len(records)*4)
		if relevance < 10 {
			relevance = 10
		}

		records = append(records, Record{
			Kind:      KindWeb,
			Artist:    strings.TrimSpace(m[1]),
			Title:     strings.TrimSpace(m[2]),
			Mentions:  1,
			Sentiment: 0.5,
			Relevance: relevance,
			Outlets:   []string{outlet},
			Category:  "press",
		})
	})

	var visitErr error
	c.OnError(func(r *colly.Response, err error) {
		visitErr = fmt.Errorf("scanning %s: %w", site, err)
	})

	if err := c.Visit(site); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", site, err)
	}
	if visitErr != nil {
		return nil, visitErr
	}
	return records, nil
}

func outletName(site string) string {
	s := strings.TrimPrefix(site, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "www.")
	if i := strings.Index(s, "/"); i > 0 {
		s = s[:i]
	}
	return s
}
