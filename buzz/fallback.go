package buzz

import (
	"fmt"
	"time"
)

// placeholderTracks seeds the fallback result set when live data is too
// sparse. Kept deterministic so degraded pages render the same list every
// time.
var placeholderTracks = []struct {
	Artist string
	Title  string
}{
	{"Burna Boy", "Higher"},
	{"Wizkid", "Essence"},
	{"Davido", "Unavailable"},
	{"Rema", "Calm Down"},
	{"Tems", "Free Mind"},
	{"Asake", "Lonely At The Top"},
	{"Ayra Starr", "Rush"},
	{"Tyla", "Water"},
	{"Omah Lay", "Soso"},
	{"Fireboy DML", "Peru"},
	{"Amaarae", "Sad Girlz Luv Money"},
	{"Diamond Platnumz", "Yope"},
	{"Black Sherif", "Kwaku The Traveller"},
	{"Sarkodie", "Non Living Thing"},
	{"Kizz Daniel", "Buga"},
	{"CKay", "Love Nwantiti"},
	{"Joeboy", "Baby"},
	{"Yemi Alade", "Johnny"},
	{"Focalistic", "Ke Star"},
	{"Angelique Kidjo", "Agolo"},
}

// FallbackEntities returns n synthetic entities with monotonically offset
// scores. Each carries a "fallback-" id and the Fallback flag so consumers
// can surface degraded data.
func FallbackEntities(n int, now time.Time) []*Entity {
	out := make([]*Entity, 0, n)
	for i := 0; i < n; i++ {
		seed := placeholderTracks[i%len(placeholderTracks)]
		pop := 90 - i*2
		if pop < 10 {
			pop = 10
		}
		e := &Entity{
			Key:      NormalizeKey(seed.Artist, seed.Title),
			ID:       fmt.Sprintf("fallback-%d", i+1),
			Title:    seed.Title,
			Artist:   seed.Artist,
			Genre:    "afrobeats",
			Fallback: true,
			Catalog: CatalogBucket{
				Present:    true,
				Popularity: pop,
			},
		}
		Score(e, now)
		out = append(out, e)
	}
	return out
}
