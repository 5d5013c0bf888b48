package tasks

import "testing"

func TestFindArtist(t *testing.T) {
	t.Run("primary credit matches with position", func(t *testing.T) {
		roster := []string{"taylor swift", "drake", "olivia rodrigo"}

		listing, position, found := FindArtist("drake", roster)
		if !found {
			t.Fatal("expected a match")
		}
		if listing != "drake" {
			t.Errorf("expected listing drake, got %q", listing)
		}
		if position != 2 {
			t.Errorf("expected position 2, got %d", position)
		}
	})

	t.Run("substring of a longer credit matches", func(t *testing.T) {
		roster := []string{"taylor swift", "drake & 21 savage"}

		listing, position, found := FindArtist("drake", roster)
		if !found {
			t.Fatal("expected a match")
		}
		if listing != "drake & 21 savage" {
			t.Errorf("expected the full listing, got %q", listing)
		}
		if position != 2 {
			t.Errorf("expected position 2, got %d", position)
		}
	})

	t.Run("featured credit is rejected", func(t *testing.T) {
		roster := []string{"bad bunny", "karol g featuring drake", "sia"}

		if _, _, found := FindArtist("drake", roster); found {
			t.Error("a featuring credit must not count as a hit")
		}
	})

	t.Run("featured credit anywhere rejects other appearances", func(t *testing.T) {
		// The exclusion scans the whole joined roster, so a featuring
		// credit in one entry suppresses a primary credit in another.
		roster := []string{"drake", "karol g featuring drake"}

		if _, _, found := FindArtist("drake", roster); found {
			t.Error("expected the featuring credit to suppress the week")
		}
	})

	t.Run("artist doing the featuring still matches", func(t *testing.T) {
		roster := []string{"drake featuring lil wayne"}

		listing, position, found := FindArtist("drake", roster)
		if !found {
			t.Fatal("expected a match when the artist holds the primary credit")
		}
		if listing != "drake featuring lil wayne" || position != 1 {
			t.Errorf("unexpected result: %q at %d", listing, position)
		}
	})

	t.Run("absent artist", func(t *testing.T) {
		roster := []string{"taylor swift", "olivia rodrigo"}

		if _, _, found := FindArtist("drake", roster); found {
			t.Error("expected no match")
		}
	})

	t.Run("empty roster", func(t *testing.T) {
		if _, _, found := FindArtist("drake", nil); found {
			t.Error("expected no match on an empty roster")
		}
	})
}
