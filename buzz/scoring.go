package buzz

import (
	"math"
	"time"
)

// topArtists is the fixed prominence allow-list. Artists on it score 100
// for the prominence term, everyone else scores 70.
var topArtists = map[string]bool{
	"burna boy":        true,
	"wizkid":           true,
	"davido":           true,
	"rema":             true,
	"tems":             true,
	"asake":            true,
	"ayra starr":       true,
	"tyla":             true,
	"omah lay":         true,
	"fireboy dml":      true,
	"amaarae":          true,
	"diamond platnumz": true,
	"black sherif":     true,
	"sarkodie":         true,
	"kizz daniel":      true,
}

func round(f float64) int {
	return int(math.Round(f))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ArtistProminence returns the prominence term for the catalog buzz score.
func ArtistProminence(artist string) float64 {
	if topArtists[NormalizeArtist(artist)] {
		return 100
	}
	return 70
}

// RecencyScore decays linearly from 100 to 0 over a year since release.
// A missing release date contributes nothing; a future date can push the
// raw value above 100 (the final catalog score is clamped).
func RecencyScore(release, now time.Time) float64 {
	if release.IsZero() {
		return 0
	}
	days := now.Sub(release).Hours() / 24
	score := 100 - (days/365)*100
	if score < 0 {
		return 0
	}
	return score
}

// CatalogBuzzScore computes the catalog sub-score, clamped to [0, 100].
func CatalogBuzzScore(popularity int, release time.Time, artist string, now time.Time) int {
	s := float64(popularity)*0.4 + RecencyScore(release, now)*0.3 + ArtistProminence(artist)*0.3
	return clamp(round(s), 0, 100)
}

// SocialBuzzScore computes the social sub-score from platform-aggregated
// totals.
func SocialBuzzScore(mentions, engagement int, sentiment float64) int {
	s := (float64(mentions)/1000)*0.3 + (float64(engagement)/10000)*0.4 + sentiment*100*0.3
	return round(s)
}

// WebBuzzScore computes the web-press sub-score.
func WebBuzzScore(mentions int, relevance, sentiment float64) int {
	s := (float64(mentions)*20)*0.4 + relevance*0.4 + sentiment*100*0.2
	return round(s)
}

// OverallScore combines the buckets into the composite used for ranking.
// Missing buckets are all-zero, so partial entities still rank.
func OverallScore(e *Entity) int {
	s := float64(e.Catalog.Popularity)*0.3 +
		float64(e.Social.BuzzScore)*0.4 +
		float64(e.Web.BuzzScore)*0.3
	return round(s)
}

// TrendingVelocity estimates momentum. Informational only; never used for
// ordering.
func TrendingVelocity(e *Entity) int {
	s := (float64(e.Social.Mentions)/100)*0.5 +
		(float64(e.Web.Mentions)*10)*0.3 +
		e.Social.Sentiment*100*0.2
	return round(s)
}

// reach counts the distinct sources and platforms contributing to an
// entity.
func reach(e *Entity) int {
	n := 0
	if e.Catalog.Present {
		n++
	}
	if e.Social.Present {
		if len(e.Social.Platforms) > 0 {
			n += len(e.Social.Platforms)
		} else {
			n++
		}
	}
	if e.Web.Present {
		if len(e.Web.Outlets) > 0 {
			n += len(e.Web.Outlets)
		} else {
			n++
		}
	}
	return n
}

// Score fills every derived field on the entity: per-bucket sub-scores,
// the composite, reach, and velocity. All terms are finite for any input,
// so no NaN can reach the ranking comparator.
func Score(e *Entity, now time.Time) {
	if e.Catalog.Present {
		e.Catalog.BuzzScore = CatalogBuzzScore(e.Catalog.Popularity, e.ReleaseDate, e.Artist, now)
	}
	if e.Social.Present {
		e.Social.BuzzScore = SocialBuzzScore(e.Social.Mentions, e.Social.Engagement, e.Social.Sentiment)
	}
	if e.Web.Present {
		e.Web.BuzzScore = WebBuzzScore(e.Web.Mentions, e.Web.Relevance, e.Web.Sentiment)
	}
	e.OverallScore = OverallScore(e)
	e.Reach = reach(e)
	e.Velocity = TrendingVelocity(e)
}
