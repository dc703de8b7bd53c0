package buzz

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"afropulse/sources"
)

// OverrideStore supplies the manually curated track list. When it returns a
// non-empty set, the pipeline uses it verbatim and skips live fetching.
type OverrideStore interface {
	FetchOverrides(ctx context.Context) ([]sources.Record, error)
}

// Result is one aggregation run. Recomputed fresh per request; never
// cached.
type Result struct {
	Entities    []*Entity `json:"tracks"`
	Fallback    bool      `json:"fallback"`
	SourceCount int       `json:"sourceCount"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// Pipeline wires the adapters, merger, and ranker into one aggregation
// entry point.
type Pipeline struct {
	srcs       []sources.Source
	overrides  OverrideStore
	merger     *Merger
	maxResults int
	timeout    time.Duration
	log        *zap.SugaredLogger
	now        func() time.Time
}

// NewPipeline validates configuration and builds a pipeline. A non-positive
// max result size is a programmer error and fails fast.
func NewPipeline(srcs []sources.Source, overrides OverrideStore, maxResults int, timeout time.Duration, log *zap.SugaredLogger) (*Pipeline, error) {
	if maxResults < 1 {
		return nil, fmt.Errorf("invalid max result size: %d", maxResults)
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Pipeline{
		srcs:       srcs,
		overrides:  overrides,
		merger:     NewMerger(DefaultPriority),
		maxResults: maxResults,
		timeout:    timeout,
		log:        log,
		now:        time.Now,
	}, nil
}

// Aggregate runs one full collection: fetch all sources concurrently, fold
// into entities, score, dedupe, rank, and pad with placeholders if the
// catalog came back empty. Source failures degrade to empty contributions;
// the only error returned is request cancellation.
func (p *Pipeline) Aggregate(ctx context.Context) (*Result, error) {
	now := p.now()

	if p.overrides != nil {
		recs, err := p.overrides.FetchOverrides(ctx)
		if err != nil {
			p.log.Warnw("Override fetch failed, falling through to live sources", "err", err)
		} else if len(recs) > 0 {
			return p.fromOverrides(recs, now), nil
		}
	}

	fetched := make([][]sources.Record, len(p.srcs))
	var wg sync.WaitGroup
	for i, src := range p.srcs {
		wg.Add(1)
		go func(i int, src sources.Source) {
			defer wg.Done()
			fctx, cancel := context.WithTimeout(ctx, p.timeout)
			defer cancel()

			recs, err := src.Fetch(fctx)
			if err != nil {
				p.log.Warnw("Source fetch failed", "source", src.Name(), "kind", src.Kind(), "err", err)
				return
			}
			fetched[i] = recs
		}(i, src)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	byKind := make(map[sources.Kind][]sources.Record)
	sourceCount := 0
	for i, recs := range fetched {
		if len(recs) == 0 {
			continue
		}
		sourceCount++
		byKind[p.srcs[i].Kind()] = append(byKind[p.srcs[i].Kind()], recs...)
	}

	entities := p.merger.Merge(byKind)
	for _, e := range entities {
		Score(e, now)
	}

	ranked := Rank(entities, p.maxResults)

	res := &Result{
		Entities:    ranked,
		SourceCount: sourceCount,
		GeneratedAt: now,
	}

	// Catalog too sparse: pad to the full result size with placeholders so
	// consumers always get a well-formed set.
	if len(byKind[sources.KindCatalog]) == 0 && len(ranked) < p.maxResults {
		res.Entities = padWithFallback(ranked, p.maxResults, now)
		res.Fallback = true
	}

	return res, nil
}

// fromOverrides maps the curated list straight into the result, capped to
// the max size. Curated order is preserved and no re-scoring happens.
func (p *Pipeline) fromOverrides(recs []sources.Record, now time.Time) *Result {
	if len(recs) > p.maxResults {
		recs = recs[:p.maxResults]
	}
	entities := make([]*Entity, 0, len(recs))
	for _, rec := range recs {
		e := &Entity{
			Key:         NormalizeKey(rec.Artist, rec.Title),
			ID:          rec.ID,
			Title:       rec.Title,
			Artist:      rec.Artist,
			Album:       rec.Album,
			ReleaseDate: rec.ReleaseDate,
			ImageURL:    rec.ImageURL,
			ExternalURL: rec.ExternalURL,
			Genre:       rec.Genre,
			Catalog: CatalogBucket{
				Present:    true,
				Popularity: rec.Popularity,
			},
			OverallScore: rec.Popularity,
		}
		if e.ID == "" {
			e.ID = e.Key
		}
		e.Reach = 1
		entities = append(entities, e)
	}
	return &Result{
		Entities:    entities,
		SourceCount: 1,
		GeneratedAt: now,
	}
}

// padWithFallback tops up the ranked list to max entries with placeholder
// entities, skipping artists already present.
func padWithFallback(ranked []*Entity, max int, now time.Time) []*Entity {
	taken := make(map[string]bool, len(ranked))
	for _, e := range ranked {
		taken[NormalizeArtist(e.Artist)] = true
	}

	out := ranked
	var skipped []*Entity
	for _, f := range FallbackEntities(max, now) {
		if len(out) >= max {
			break
		}
		if taken[NormalizeArtist(f.Artist)] {
			skipped = append(skipped, f)
			continue
		}
		taken[NormalizeArtist(f.Artist)] = true
		out = append(out, f)
	}
	// Not enough distinct placeholder artists left; fill with the rest
	// anyway rather than return a short set.
	for _, f := range skipped {
		if len(out) >= max {
			break
		}
		out = append(out, f)
	}
	return out
}
