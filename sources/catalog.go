package sources

import (
	"context"
	"fmt"
	"strings"
	"time"

	spotify "github.com/zmb3/spotify/v2"

	spot "afropulse/spotify"
)

// catalogQueries are the seed searches for the streaming catalog, one per
// genre tag carried onto the resulting records.
var catalogQueries = []struct {
	Query string
	Genre string
}{
	{`genre:"afrobeats"`, "afrobeats"},
	{`genre:"afropop"`, "afropop"},
	{`genre:"amapiano"`, "amapiano"},
	{`genre:"alte"`, "alte"},
}

// Catalog fetches track metadata from the Spotify search API.
type Catalog struct {
	sp      *spot.SpotifyClient
	limiter *RateLimiter
	limit   int
}

func NewCatalog(sp *spot.SpotifyClient) *Catalog {
	return &Catalog{
		sp: sp,
		// Spotify tolerates bursts, but spacing searches out keeps us well
		// under the app quota.
		limiter: NewRateLimiter(250 * time.Millisecond),
		limit:   10,
	}
}

func (c *Catalog) Kind() Kind   { return KindCatalog }
func (c *Catalog) Name() string { return "spotify" }

func (c *Catalog) Fetch(ctx context.Context) ([]Record, error) {
	var records []Record
	var lastErr error

	for _, cq := range catalogQueries {
		c.limiter.Wait()

		results, err := c.sp.Client.Search(ctx, cq.Query, spotify.SearchTypeTrack, spotify.Limit(c.limit))
		if err != nil {
			lastErr = fmt.Errorf("catalog search %q: %w", cq.Query, err)
			continue
		}
		if results.Tracks == nil {
			continue
		}

		for _, track := range results.Tracks.Tracks {
			if len(track.Artists) == 0 {
				continue
			}
			rec := Record{
				Kind:        KindCatalog,
				ID:          track.ID.String(),
				Artist:      track.Artists[0].Name,
				Title:       track.Name,
				Album:       track.Album.Name,
				ReleaseDate: track.Album.ReleaseDateTime(),
				Popularity:  int(track.Popularity),
				ExternalURL: track.ExternalURLs["spotify"],
				Genre:       cq.Genre,
			}
			for _, image := range track.Album.Images {
				if image.Height == 300 && image.Width == 300 {
					rec.ImageURL = image.URL
					break
				}
			}
			records = append(records, rec)
		}
	}

	if len(records) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return records, nil
}

// PrimaryArtist strips featuring credits so rows credited to
// "Artist feat. Guest" group under the primary artist.
func PrimaryArtist(artist string) string {
	patterns := []string{
		" Featuring ", " featuring ",
		" feat. ", " feat ",
		" ft. ", " ft ",
	}

	clean := artist
	for _, pattern := range patterns {
		if i := strings.Index(clean, pattern); i >= 0 {
			clean = clean[:i]
		}
	}
	return strings.TrimSpace(clean)
}
