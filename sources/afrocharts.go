package sources

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/chromedp/chromedp"
)

// DefaultChartsURL is the JS-rendered chart page scraped by AfroCharts.
const DefaultChartsURL = "https://afrocharts.com/songs"

// AfroCharts scrapes a JS-rendered African-music chart page in a headless
// browser. It acts as a second catalog-kind source: rank positions are
// converted into popularity so chart entries can seed entities when the
// streaming catalog is thin.
type AfroCharts struct {
	url string
}

func NewAfroCharts(url string) *AfroCharts {
	if url == "" {
		url = DefaultChartsURL
	}
	return &AfroCharts{url: url}
}

func (a *AfroCharts) Kind() Kind   { return KindCatalog }
func (a *AfroCharts) Name() string { return "afrocharts" }

func (a *AfroCharts) Fetch(ctx context.Context) ([]Record, error) {
	cctx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	var rows []string
	err := chromedp.Run(cctx,
		chromedp.Navigate(a.url),
		chromedp.WaitVisible(`body`, chromedp.ByQuery),
		chromedp.Evaluate(
			`Array.from(document.querySelectorAll('.song-item, .chart-item')).map(e => e.innerText)`,
			&rows,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", a.url, err)
	}

	var records []Record
	for i, row := range rows {
		rec, ok := parseChartRow(row, i+1)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// parseChartRow expects the rendered row text to be newline-separated:
// an optional leading rank number, then title, then artist.
func parseChartRow(row string, position int) (Record, bool) {
	var lines []string
	for _, l := range strings.Split(row, "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) < 2 {
		return Record{}, false
	}

	rank := position
	if n, err := strconv.Atoi(lines[0]); err == nil {
		rank = n
		lines = lines[1:]
	}
	if len(lines) < 2 {
		return Record{}, false
	}

	popularity := 100 - (rank-1)*2
	if popularity < 10 {
		popularity = 10
	}

	return Record{
		Kind:       KindCatalog,
		Title:      lines[0],
		Artist:     lines[1],
		Popularity: popularity,
		Genre:      "afrobeats",
	}, true
}
