package sources

import (
	"context"
	"time"
)

// Kind identifies which class of feed a record came from.
type Kind string

const (
	KindCatalog Kind = "catalog"
	KindSocial  Kind = "social"
	KindWeb     Kind = "web"
)

// Record is the standardized shape every adapter maps its feed into.
// Only the fields for the record's own kind are populated; the rest stay
// at their zero values.
type Record struct {
	Artist string `json:"artist"`
	Title  string `json:"title"`
	Kind   Kind   `json:"kind"`

	// Catalog fields
	ID          string    `json:"id,omitempty"`
	Album       string    `json:"album,omitempty"`
	ReleaseDate time.Time `json:"releaseDate,omitempty"`
	Popularity  int       `json:"popularity,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	ExternalURL string    `json:"externalUrl,omitempty"`
	Genre       string    `json:"genre,omitempty"`

	// Social fields
	Mentions   int      `json:"mentions,omitempty"`
	Engagement int      `json:"engagement,omitempty"`
	Sentiment  float64  `json:"sentiment,omitempty"`
	Platforms  []string `json:"platforms,omitempty"`
	Hashtags   []string `json:"hashtags,omitempty"`

	// Web-press fields
	Relevance float64  `json:"relevance,omitempty"`
	Outlets   []string `json:"outlets,omitempty"`
	Category  string   `json:"category,omitempty"`
}

// Source is the interface every adapter implements. Fetch failures are the
// adapter's own: callers treat an error as "this source contributed nothing"
// and keep going.
type Source interface {
	Kind() Kind
	Name() string
	Fetch(ctx context.Context) ([]Record, error)
}
