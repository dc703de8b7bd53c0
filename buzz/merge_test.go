package buzz

import (
	"testing"
	"time"

	"afropulse/sources"
)

func TestMerge_CrossSourceMatch(t *testing.T) {
	release := time.Now().Add(-10 * 24 * time.Hour)
	byKind := map[sources.Kind][]sources.Record{
		sources.KindCatalog: {
			{Kind: sources.KindCatalog, Artist: "Rema", Title: "Calm Down", Popularity: 90, ReleaseDate: release},
		},
		sources.KindSocial: {
			{Kind: sources.KindSocial, Artist: "rema", Title: "calm down", Mentions: 22100, Engagement: 156000, Sentiment: 0.88, Platforms: []string{"twitter", "tiktok"}},
		},
	}

	entities := NewMerger(nil).Merge(byKind)
	if len(entities) != 1 {
		t.Fatalf("Expected case variants to merge into one entity, got %d", len(entities))
	}

	e := entities[0]
	if !e.Catalog.Present || !e.Social.Present {
		t.Errorf("Expected both buckets present, got catalog=%v social=%v", e.Catalog.Present, e.Social.Present)
	}
	if e.Social.Mentions != 22100 {
		t.Errorf("Social mentions = %d, want 22100", e.Social.Mentions)
	}

	Score(e, time.Now())
	if e.OverallScore <= round(90*0.3) {
		t.Errorf("Composite should reflect the social bucket too, got %d", e.OverallScore)
	}
}

func TestMerge_UnmatchedCreatesNewEntity(t *testing.T) {
	byKind := map[sources.Kind][]sources.Record{
		sources.KindCatalog: {
			{Kind: sources.KindCatalog, Artist: "Wizkid", Title: "Essence", Popularity: 80},
		},
		sources.KindWeb: {
			{Kind: sources.KindWeb, Artist: "Black Sherif", Title: "Kwaku The Traveller", Mentions: 4, Sentiment: 0.7},
		},
	}

	entities := NewMerger(nil).Merge(byKind)
	if len(entities) != 2 {
		t.Fatalf("Expected an unmatched web record to create its own entity, got %d", len(entities))
	}
	if entities[0].Artist != "Wizkid" {
		t.Errorf("Catalog-seeded entity should come first, got %s", entities[0].Artist)
	}
	if !entities[1].Web.Present || entities[1].Catalog.Present {
		t.Errorf("Web-only entity should have only the web bucket, got %+v", entities[1])
	}
}

func TestMerge_SameSourceLastWriteWins(t *testing.T) {
	byKind := map[sources.Kind][]sources.Record{
		sources.KindCatalog: {
			{Kind: sources.KindCatalog, Artist: "Asake", Title: "Lonely At The Top", Popularity: 60},
			{Kind: sources.KindCatalog, Artist: "Asake", Title: "Lonely At The Top", Popularity: 75},
		},
	}

	entities := NewMerger(nil).Merge(byKind)
	if len(entities) != 1 {
		t.Fatalf("Expected one entity, got %d", len(entities))
	}
	if entities[0].Catalog.Popularity != 75 {
		t.Errorf("Later catalog record should overwrite the bucket, got popularity %d", entities[0].Catalog.Popularity)
	}
}

func TestMerge_NoCatalogSeedsFromSocial(t *testing.T) {
	byKind := map[sources.Kind][]sources.Record{
		sources.KindSocial: {
			{Kind: sources.KindSocial, Artist: "Tems", Title: "Me & U", Mentions: 900, Sentiment: 0.8, Platforms: []string{"instagram"}},
		},
	}

	entities := NewMerger(nil).Merge(byKind)
	if len(entities) != 1 {
		t.Fatalf("Expected social-only merge to still produce an entity, got %d", len(entities))
	}
	if entities[0].Key != NormalizeKey("Tems", "Me & U") {
		t.Errorf("Entity key should come from the creating record, got %q", entities[0].Key)
	}
}

func TestMerge_DisplayAttributesFirstSeenWins(t *testing.T) {
	byKind := map[sources.Kind][]sources.Record{
		sources.KindCatalog: {
			{Kind: sources.KindCatalog, Artist: "Ayra Starr", Title: "Rush", Popularity: 85, Album: "19 & Dangerous", Genre: "afrobeats"},
			{Kind: sources.KindCatalog, Artist: "Ayra Starr", Title: "Rush", Popularity: 70, Album: "Rush - Single"},
		},
	}

	entities := NewMerger(nil).Merge(byKind)
	if entities[0].Album != "19 & Dangerous" {
		t.Errorf("Display attributes are first-seen-wins, got album %q", entities[0].Album)
	}
	if entities[0].Genre != "afrobeats" {
		t.Errorf("Genre should survive the overwrite, got %q", entities[0].Genre)
	}
}
