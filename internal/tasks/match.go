package tasks

import (
	"strings"

	"github.com/dospunk/WUOG-In-Philosophy-Checker/internal/models"
)

// FindArtist reports whether artist appears in the week's roster, returning
// the full listing text and its 1-indexed chart position.
//
// The check runs in two phases on purpose. The credit-line exclusion needs
// the joined roster string so " featuring <artist>" is caught even across
// entry boundaries; the position lookup needs the individual entries so the
// reported position is the entry's, not an offset into the joined string.
//
// The exclusion only rejects the query when " featuring " immediately
// precedes it somewhere in the joined string. "<artist> featuring X" still
// matches, and other credit patterns are not excluded. Search results have
// been vetted against this exact behavior; do not widen it.
//
// artist is expected to be lowercase, matching the cached roster encoding.
func FindArtist(artist string, roster []string) (listing string, position int, found bool) {
	joined := strings.Join(roster, models.ArtistSeparator)

	if !strings.Contains(joined, artist) {
		return "", 0, false
	}

	if strings.Contains(joined, " featuring "+artist) {
		return "", 0, false
	}

	for i, entry := range roster {
		if strings.Contains(entry, artist) {
			return entry, i + 1, true
		}
	}

	return "", 0, false
}
