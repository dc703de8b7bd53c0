package buzz

import "testing"

func entity(artist, title string, score int) *Entity {
	return &Entity{
		Key:          NormalizeKey(artist, title),
		Title:        title,
		Artist:       artist,
		OverallScore: score,
	}
}

func TestRank_OnePerArtist(t *testing.T) {
	in := []*Entity{
		entity("Burna Boy", "Higher", 80),
		entity("burna boy", "City Boys", 92),
		entity("Tems", "Free Mind", 70),
		entity("BURNA BOY ", "Last Last", 85),
	}

	out := Rank(in, 20)
	if len(out) != 2 {
		t.Fatalf("Expected one entry per artist, got %d", len(out))
	}

	seen := make(map[string]bool)
	for _, e := range out {
		key := NormalizeArtist(e.Artist)
		if seen[key] {
			t.Errorf("Duplicate artist in output: %s", e.Artist)
		}
		seen[key] = true
	}

	if out[0].Title != "City Boys" {
		t.Errorf("Highest-scoring track per artist should survive, got %s", out[0].Title)
	}
}

func TestRank_DescendingOrder(t *testing.T) {
	in := []*Entity{
		entity("A", "a", 10),
		entity("B", "b", 90),
		entity("C", "c", 50),
		entity("D", "d", 90),
		entity("E", "e", 0),
	}

	out := Rank(in, 20)
	for i := 0; i+1 < len(out); i++ {
		if out[i].OverallScore < out[i+1].OverallScore {
			t.Errorf("Output not descending at %d: %d < %d", i, out[i].OverallScore, out[i+1].OverallScore)
		}
	}
}

func TestRank_TiesKeepFirstSeen(t *testing.T) {
	in := []*Entity{
		entity("A", "first", 50),
		entity("B", "second", 50),
	}

	out := Rank(in, 20)
	if out[0].Title != "first" || out[1].Title != "second" {
		t.Errorf("Equal scores must keep insertion order, got %s then %s", out[0].Title, out[1].Title)
	}
}

func TestRank_TieWithinArtistKeepsFirst(t *testing.T) {
	in := []*Entity{
		entity("Davido", "Unavailable", 77),
		entity("Davido", "Feel", 77),
	}

	out := Rank(in, 20)
	if len(out) != 1 || out[0].Title != "Unavailable" {
		t.Fatalf("Tied duplicates should keep the first encountered, got %+v", out[0])
	}
}

func TestRank_SizeBound(t *testing.T) {
	var in []*Entity
	for i := 0; i < 30; i++ {
		in = append(in, entity(string(rune('A'+i)), "t", 100-i))
	}

	out := Rank(in, 20)
	if len(out) != 20 {
		t.Errorf("Expected truncation to 20, got %d", len(out))
	}

	small := Rank(in[:5], 20)
	if len(small) != 5 {
		t.Errorf("Expected min(max, available) = 5, got %d", len(small))
	}
}
