package buzz

import (
	"afropulse/sources"
)

// DefaultPriority is the declared merge order. The first kind with records
// seeds the entity map; later kinds merge into it. Making this explicit
// keeps "catalog wins identity" visible instead of implied by fetch order.
var DefaultPriority = []sources.Kind{
	sources.KindCatalog,
	sources.KindSocial,
	sources.KindWeb,
}

// Merger folds per-source record sets into a single ordered entity list.
type Merger struct {
	priority []sources.Kind
}

func NewMerger(priority []sources.Kind) *Merger {
	if len(priority) == 0 {
		priority = DefaultPriority
	}
	return &Merger{priority: priority}
}

// Merge accumulates all records onto entities keyed by normalized
// (artist, song). Entities are only ever created or updated, never deleted,
// and the returned slice preserves insertion order.
//
// Records of the highest-priority kind attach by exact key. Records of
// later kinds go through FindBestMatch against the existing entities; on a
// miss they create a new entity under their own key. A fuzzy match does not
// register the later record's own key as an alias, so a third source using
// that record's vocabulary can still spawn a duplicate — known limitation
// kept for output compatibility.
func (m *Merger) Merge(byKind map[sources.Kind][]sources.Record) []*Entity {
	var order []*Entity
	index := make(map[string]*Entity)

	create := func(rec sources.Record, key string) *Entity {
		e := &Entity{
			Key:    key,
			ID:     rec.ID,
			Title:  rec.Title,
			Artist: rec.Artist,
		}
		if e.ID == "" {
			e.ID = key
		}
		index[key] = e
		order = append(order, e)
		return e
	}

	for i, kind := range m.priority {
		for _, rec := range byKind[kind] {
			key := NormalizeKey(rec.Artist, rec.Title)

			var e *Entity
			if i == 0 {
				e = index[key]
			} else {
				e = FindBestMatch(rec.Artist, rec.Title, order)
			}
			if e == nil {
				e = create(rec, key)
			}
			applyRecord(e, rec)
		}
	}

	return order
}

// applyRecord writes one source's metrics onto an entity. The bucket for
// the record's kind is overwritten wholesale (last write wins); display
// attributes are first-seen-wins.
func applyRecord(e *Entity, rec sources.Record) {
	switch rec.Kind {
	case sources.KindCatalog:
		e.Catalog = CatalogBucket{
			Present:    true,
			Popularity: rec.Popularity,
		}
		if e.Album == "" {
			e.Album = rec.Album
		}
		if e.ReleaseDate.IsZero() {
			e.ReleaseDate = rec.ReleaseDate
		}
		if e.ImageURL == "" {
			e.ImageURL = rec.ImageURL
		}
		if e.ExternalURL == "" {
			e.ExternalURL = rec.ExternalURL
		}
		if e.Genre == "" {
			e.Genre = rec.Genre
		}
		if rec.ID != "" && e.ID == e.Key {
			e.ID = rec.ID
		}
	case sources.KindSocial:
		e.Social = SocialBucket{
			Present:    true,
			Mentions:   rec.Mentions,
			Engagement: rec.Engagement,
			Sentiment:  rec.Sentiment,
			Platforms:  rec.Platforms,
			Hashtags:   rec.Hashtags,
		}
	case sources.KindWeb:
		e.Web = WebBucket{
			Present:   true,
			Mentions:  rec.Mentions,
			Sentiment: rec.Sentiment,
			Relevance: rec.Relevance,
			Outlets:   rec.Outlets,
			Category:  rec.Category,
		}
	}
}
