package buzz

import (
	"testing"
	"time"
)

func TestCatalogBuzzScore_FreshTopArtist(t *testing.T) {
	now := time.Now()
	release := now.Add(-10 * 24 * time.Hour)

	score := CatalogBuzzScore(90, release, "Rema", now)
	// 90*0.4 + ~99*0.3 + 100*0.3 ≈ 96
	if score < 90 || score > 100 {
		t.Errorf("Expected high score for fresh top-artist track, got %d", score)
	}
}

func TestCatalogBuzzScore_ClampedForExtremes(t *testing.T) {
	now := time.Now()

	future := CatalogBuzzScore(100, now.Add(10*365*24*time.Hour), "Burna Boy", now)
	if future < 0 || future > 100 {
		t.Errorf("Score for far-future release must stay in [0,100], got %d", future)
	}

	ancient := CatalogBuzzScore(0, now.Add(-30*365*24*time.Hour), "Unknown Artist", now)
	if ancient < 0 || ancient > 100 {
		t.Errorf("Score for ancient release must stay in [0,100], got %d", ancient)
	}
}

func TestCatalogBuzzScore_ProminenceSplit(t *testing.T) {
	now := time.Now()
	release := now.Add(-24 * time.Hour)

	top := CatalogBuzzScore(50, release, "Wizkid", now)
	other := CatalogBuzzScore(50, release, "Some New Act", now)
	if top-other != 9 {
		t.Errorf("Prominence gap should be (100-70)*0.3 = 9, got %d", top-other)
	}
}

func TestRecencyScore_MissingRelease(t *testing.T) {
	if got := RecencyScore(time.Time{}, time.Now()); got != 0 {
		t.Errorf("Zero release date should contribute 0, got %f", got)
	}
}

func TestSocialBuzzScore(t *testing.T) {
	// 22100/1000*0.3 + 156000/10000*0.4 + 0.88*100*0.3 = 6.63 + 6.24 + 26.4
	score := SocialBuzzScore(22100, 156000, 0.88)
	if score != 39 {
		t.Errorf("SocialBuzzScore = %d, want 39", score)
	}
}

func TestSocialBuzzScore_AllZero(t *testing.T) {
	if got := SocialBuzzScore(0, 0, 0); got != 0 {
		t.Errorf("Zero inputs must score 0, got %d", got)
	}
}

func TestWebBuzzScore(t *testing.T) {
	// 3*20*0.4 + 50*0.4 + 0.9*100*0.2 = 24 + 20 + 18
	score := WebBuzzScore(3, 50, 0.9)
	if score != 62 {
		t.Errorf("WebBuzzScore = %d, want 62", score)
	}
}

func TestOverallScore_MissingBucketsAreZero(t *testing.T) {
	e := &Entity{
		Artist:  "Tems",
		Catalog: CatalogBucket{Present: true, Popularity: 80},
	}
	Score(e, time.Now())

	if e.OverallScore != round(80*0.3) {
		t.Errorf("Catalog-only composite = %d, want %d", e.OverallScore, round(80*0.3))
	}
	if e.Velocity != 0 {
		t.Errorf("No mentions anywhere should give velocity 0, got %d", e.Velocity)
	}
}

func TestScore_Reach(t *testing.T) {
	e := &Entity{
		Artist:  "Rema",
		Title:   "Calm Down",
		Catalog: CatalogBucket{Present: true, Popularity: 90},
		Social:  SocialBucket{Present: true, Mentions: 100, Platforms: []string{"twitter", "tiktok", "instagram"}},
		Web:     WebBucket{Present: true, Mentions: 2, Outlets: []string{"okayafrica", "notjustok"}},
	}
	Score(e, time.Now())

	if e.Reach != 6 {
		t.Errorf("Reach should count catalog + 3 platforms + 2 outlets = 6, got %d", e.Reach)
	}
}

func TestTrendingVelocity(t *testing.T) {
	e := &Entity{
		Social: SocialBucket{Present: true, Mentions: 5000, Sentiment: 0.8},
		Web:    WebBucket{Present: true, Mentions: 4},
	}
	// 5000/100*0.5 + 4*10*0.3 + 0.8*100*0.2 = 25 + 12 + 16
	if got := TrendingVelocity(e); got != 53 {
		t.Errorf("TrendingVelocity = %d, want 53", got)
	}
}
