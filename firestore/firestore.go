package firestore

import (
	"context"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"afropulse/config"
	"afropulse/sources"
)

// OverrideTrack is one manually curated entry. When the "overrides"
// document holds a non-empty list, it replaces the live pipeline output
// wholesale.
type OverrideTrack struct {
	Rank        int    `json:"rank" firestore:"rank"`
	Artist      string `json:"artist" firestore:"artist"`
	Title       string `json:"title" firestore:"title"`
	Album       string `json:"album" firestore:"album"`
	ReleaseDate string `json:"releaseDate" firestore:"releaseDate"`
	Popularity  int    `json:"popularity" firestore:"popularity"`
	ImageURL    string `json:"imageUrl" firestore:"imageUrl"`
	ExternalURL string `json:"externalUrl" firestore:"externalUrl"`
	Genre       string `json:"genre" firestore:"genre"`
}

// Subscriber is one digest recipient.
type Subscriber struct {
	Email     string    `json:"email" firestore:"email"`
	Name      string    `json:"name" firestore:"name"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

// ProvideDB provides a firestore client
func ProvideDB(cfg config.Config) *firestore.Client {
	client, err := firestore.NewClient(context.TODO(), cfg.FirestoreProject)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	return client
}

var Options = ProvideDB

// Store wraps the collections the aggregation and digest layers need.
type Store struct {
	client *firestore.Client
}

func NewStore(client *firestore.Client) *Store {
	return &Store{client: client}
}

// FetchOverrides reads the curated track list. A missing document is not an
// error; it just means no override is active.
func (s *Store) FetchOverrides(ctx context.Context) ([]sources.Record, error) {
	doc, err := s.client.Collection("overrides").Doc("current").Get(ctx)
	if err != nil {
		return nil, nil
	}

	var data struct {
		Tracks []OverrideTrack `firestore:"tracks"`
	}
	if err := doc.DataTo(&data); err != nil {
		return nil, err
	}

	records := make([]sources.Record, 0, len(data.Tracks))
	for _, t := range data.Tracks {
		rec := sources.Record{
			Kind:        sources.KindCatalog,
			Artist:      t.Artist,
			Title:       t.Title,
			Album:       t.Album,
			Popularity:  t.Popularity,
			ImageURL:    t.ImageURL,
			ExternalURL: t.ExternalURL,
			Genre:       t.Genre,
		}
		if t.ReleaseDate != "" {
			if release, err := time.Parse("2006-01-02", t.ReleaseDate); err == nil {
				rec.ReleaseDate = release
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// AddSubscriber registers a digest recipient, keyed by email so repeat
// signups overwrite instead of duplicating.
func (s *Store) AddSubscriber(ctx context.Context, sub Subscriber) error {
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}
	_, err := s.client.Collection("subscribers").Doc(sub.Email).Set(ctx, sub)
	return err
}

// ListSubscribers returns all digest recipients.
func (s *Store) ListSubscribers(ctx context.Context) ([]Subscriber, error) {
	var subs []Subscriber

	iter := s.client.Collection("subscribers").Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var sub Subscriber
		if err := doc.DataTo(&sub); err != nil {
			log.Printf("Error decoding subscriber %s: %v", doc.Ref.ID, err)
			continue
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

// DigestExists reports whether a digest document was already written for
// the given date (YYYY-MM-DD).
func (s *Store) DigestExists(ctx context.Context, date string) bool {
	doc, err := s.client.Collection("digests").Doc(date).Get(ctx)
	return err == nil && doc.Exists()
}

// Cleanup removes expired date-keyed documents.
func (s *Store) Cleanup(ctx context.Context) error {
	return RunCleanup(ctx, s.client)
}

// SaveDigest writes the ranked result for the given date.
func (s *Store) SaveDigest(ctx context.Context, date string, payload interface{}) error {
	_, err := s.client.Collection("digests").Doc(date).Set(ctx, map[string]interface{}{
		"result": payload,
	})
	return err
}
