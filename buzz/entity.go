package buzz

import "time"

// CatalogBucket holds the streaming-catalog metrics for an entity.
type CatalogBucket struct {
	Present    bool `json:"present"`
	Popularity int  `json:"popularity"`
	BuzzScore  int  `json:"buzzScore"`
}

// SocialBucket holds the social-mention metrics for an entity, aggregated
// across platforms.
type SocialBucket struct {
	Present    bool     `json:"present"`
	Mentions   int      `json:"mentions"`
	Engagement int      `json:"engagement"`
	Sentiment  float64  `json:"sentiment"`
	Platforms  []string `json:"platforms,omitempty"`
	Hashtags   []string `json:"hashtags,omitempty"`
	BuzzScore  int      `json:"buzzScore"`
}

// WebBucket holds the web-press metrics for an entity.
type WebBucket struct {
	Present   bool     `json:"present"`
	Mentions  int      `json:"mentions"`
	Sentiment float64  `json:"sentiment"`
	Relevance float64  `json:"relevance"`
	Outlets   []string `json:"outlets,omitempty"`
	Category  string   `json:"category,omitempty"`
	BuzzScore int      `json:"buzzScore"`
}

// Entity is the per-song aggregation unit. Its Key is fixed by the first
// record that creates it; later contributions from other sources mutate the
// buckets in place. Missing buckets stay at their zero values and contribute
// zero to every score.
type Entity struct {
	Key string `json:"-"`

	ID          string    `json:"id"`
	Title       string    `json:"name"`
	Artist      string    `json:"artist"`
	Album       string    `json:"album,omitempty"`
	ReleaseDate time.Time `json:"releaseDate,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	ExternalURL string    `json:"externalUrl,omitempty"`
	Genre       string    `json:"genre,omitempty"`

	Catalog CatalogBucket `json:"catalog"`
	Social  SocialBucket  `json:"social"`
	Web     WebBucket     `json:"web"`

	OverallScore int  `json:"overallScore"`
	Reach        int  `json:"crossPlatformReach"`
	Velocity     int  `json:"trendingVelocity"`
	Fallback     bool `json:"fallback,omitempty"`
}
