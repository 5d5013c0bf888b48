package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/dospunk/WUOG-In-Philosophy-Checker/internal/models"
	"github.com/dospunk/WUOG-In-Philosophy-Checker/internal/shared"
)

// SnapshotRepository persists one roster row per chart week.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SnapshotRepository with the given database connection
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Get retrieves the roster cached under (chart, date). The second return
// value reports whether a row existed.
func (r *SnapshotRepository) Get(chart models.Chart, date string) ([]string, bool, error) {
	query := fmt.Sprintf("SELECT artists FROM %s WHERE date = ?", chart.Table())

	var artists string
	err := r.db.QueryRow(query, date).Scan(&artists)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to query %s snapshot: %w", chart.Table(), err)
	}

	return deserializeRoster(artists), true, nil
}

// Save inserts a roster under (chart, date), committing immediately.
// Empty rosters are rejected; they must never become cache rows.
func (r *SnapshotRepository) Save(chart models.Chart, date string, roster []string) error {
	encoded := serializeRoster(roster)
	if encoded == "" {
		return fmt.Errorf("%w: refusing to cache %s at %s", shared.ErrEmptyRoster, chart.Table(), date)
	}

	query := fmt.Sprintf("INSERT INTO %s (date, artists) VALUES (?, ?)", chart.Table())

	if _, err := r.db.Exec(query, date, encoded); err != nil {
		return fmt.Errorf("failed to insert %s snapshot: %w", chart.Table(), err)
	}

	return nil
}

// Prune performs cache maintenance: Hot 100 rows older than the singles
// horizon and empty rosters in either table are deleted. Returns the total
// number of rows removed.
func (r *SnapshotRepository) Prune(singlesHorizonYears int) (int64, error) {
	if singlesHorizonYears <= 0 {
		singlesHorizonYears = models.DefaultSinglesHorizonYears
	}

	var pruned int64

	query := fmt.Sprintf("DELETE FROM %s WHERE date < date('now', ?)", models.Hot100.Table())
	res, err := r.db.Exec(query, fmt.Sprintf("-%d years", singlesHorizonYears))
	if err != nil {
		return pruned, fmt.Errorf("failed to prune aged %s rows: %w", models.Hot100.Table(), err)
	}
	if n, err := res.RowsAffected(); err == nil {
		pruned += n
	}

	for _, chart := range models.Charts() {
		query := fmt.Sprintf("DELETE FROM %s WHERE artists = ''", chart.Table())
		res, err := r.db.Exec(query)
		if err != nil {
			return pruned, fmt.Errorf("failed to prune empty %s rows: %w", chart.Table(), err)
		}
		if n, err := res.RowsAffected(); err == nil {
			pruned += n
		}
	}

	return pruned, nil
}

// TableStats summarizes one chart's cache table.
type TableStats struct {
	Chart    models.Chart `json:"-"`
	Slug     string       `json:"chart"`
	Rows     int          `json:"rows"`
	Earliest string       `json:"earliest,omitempty"`
	Latest   string       `json:"latest,omitempty"`
}

// Stats reports row counts and date spans for both chart tables.
func (r *SnapshotRepository) Stats() ([]TableStats, error) {
	stats := make([]TableStats, 0, len(models.Charts()))

	for _, chart := range models.Charts() {
		query := fmt.Sprintf("SELECT COUNT(*), COALESCE(MIN(date), ''), COALESCE(MAX(date), '') FROM %s", chart.Table())

		var s TableStats
		s.Chart = chart
		s.Slug = chart.Slug()
		if err := r.db.QueryRow(query).Scan(&s.Rows, &s.Earliest, &s.Latest); err != nil {
			return nil, fmt.Errorf("failed to read %s stats: %w", chart.Table(), err)
		}
		stats = append(stats, s)
	}

	return stats, nil
}

// serializeRoster encodes a roster as the single lowercase cache string.
// Splitting the result by the separator reconstructs order and count.
func serializeRoster(roster []string) string {
	return strings.ToLower(strings.Join(roster, models.ArtistSeparator))
}

// deserializeRoster decodes the cache string back into ordered entries.
func deserializeRoster(artists string) []string {
	return strings.Split(artists, models.ArtistSeparator)
}
