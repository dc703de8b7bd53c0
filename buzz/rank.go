package buzz

import "sort"

// DedupeByArtist keeps a single entity per normalized artist key: the one
// with the highest composite score. Ties keep whichever entity was
// encountered first, and survivors stay in their original order.
func DedupeByArtist(entities []*Entity) []*Entity {
	best := make(map[string]*Entity)
	var order []string

	for _, e := range entities {
		key := NormalizeArtist(e.Artist)
		cur, ok := best[key]
		if !ok {
			best[key] = e
			order = append(order, key)
			continue
		}
		if e.OverallScore > cur.OverallScore {
			best[key] = e
		}
	}

	out := make([]*Entity, 0, len(order))
	for _, key := range order {
		out = append(out, best[key])
	}
	return out
}

// Rank enforces one-per-artist, sorts descending by composite score, and
// truncates to max. The sort is stable so equal scores keep first-seen
// order.
func Rank(entities []*Entity, max int) []*Entity {
	out := DedupeByArtist(entities)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OverallScore > out[j].OverallScore
	})

	if len(out) > max {
		out = out[:max]
	}
	return out
}
