package buzz

import (
	"strings"
	"unicode"
)

// keyPart lowercases, trims, and strips everything that isn't a letter or
// digit. Empty or missing fields collapse to "".
func keyPart(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeKey derives the cross-source identity key for an (artist, song)
// pair. Pure and total: any input produces a key, even if both parts are
// empty.
func NormalizeKey(artist, song string) string {
	return keyPart(artist) + "-" + keyPart(song)
}

// NormalizeArtist derives the artist grouping key used by the deduplicator.
func NormalizeArtist(artist string) string {
	return strings.ToLower(strings.TrimSpace(artist))
}

// FindBestMatch locates an existing entity that the given (artist, song)
// pair refers to. Tiers are tried in order and the first candidate to
// satisfy a tier wins; candidates are scanned in insertion order. This is a
// cheap heuristic for small curated pools, not a similarity metric.
//
// Tier 1: exact normalized key.
// Tier 2: artist containment, either direction.
// Tier 3: title containment, either direction — skipped for candidates
// whose artist unambiguously differs from the target's.
func FindBestMatch(artist, song string, candidates []*Entity) *Entity {
	a := keyPart(artist)
	s := keyPart(song)
	if a == "" && s == "" {
		// Empty key matches everything; treat as no match possible.
		return nil
	}

	key := a + "-" + s
	for _, c := range candidates {
		if c.Key == key {
			return c
		}
	}

	if a != "" {
		for _, c := range candidates {
			ca := keyPart(c.Artist)
			if ca == "" {
				continue
			}
			if strings.Contains(ca, a) || strings.Contains(a, ca) {
				return c
			}
		}
	}

	if s != "" {
		for _, c := range candidates {
			ct := keyPart(c.Title)
			if ct == "" {
				continue
			}
			if !strings.Contains(ct, s) && !strings.Contains(s, ct) {
				continue
			}
			ca := keyPart(c.Artist)
			if a != "" && ca != "" && !strings.Contains(ca, a) && !strings.Contains(a, ca) {
				// Unambiguous artist mismatch; a shared title fragment is
				// not enough ("Water" vs "Waterfall" by someone else).
				continue
			}
			return c
		}
	}

	return nil
}
