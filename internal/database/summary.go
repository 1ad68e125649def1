package database

import (
	"context"
	"storage-manager/internal/models"
	"time"
)

func (q *Queries) CountResources(ctx context.Context, ownerID int64) (models.Counts, error) {
	query := `
		SELECT
			(SELECT count(*) FROM folders WHERE owner_id = $1),
			(SELECT count(*) FROM files WHERE owner_id = $1),
			(SELECT count(*) FROM notes WHERE owner_id = $1),
			(SELECT count(*) FROM folders WHERE owner_id = $1 AND is_favorite)
				+ (SELECT count(*) FROM files WHERE owner_id = $1 AND is_favorite)
				+ (SELECT count(*) FROM notes WHERE owner_id = $1 AND is_favorite)
	`
	var counts models.Counts
	err := q.db.QueryRow(ctx, query, ownerID).Scan(&counts.Folders, &counts.Files, &counts.Notes, &counts.Favorites)
	return counts, err
}

// StorageByType returns count and bytes per file type; percentages are left
// for the caller, which knows the ledger value.
func (q *Queries) StorageByType(ctx context.Context, ownerID int64) ([]models.TypeBreakdown, error) {
	query := `
		SELECT file_type, count(*), COALESCE(sum(size_bytes), 0)::bigint
		FROM files
		WHERE owner_id = $1
		GROUP BY file_type
		ORDER BY file_type
	`
	rows, err := q.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var breakdown []models.TypeBreakdown
	for rows.Next() {
		var b models.TypeBreakdown
		if err := rows.Scan(&b.FileType, &b.Count, &b.SizeBytes); err != nil {
			return nil, err
		}
		breakdown = append(breakdown, b)
	}
	return breakdown, rows.Err()
}

// DailyActivity buckets creations per UTC day for the days ending at until.
func (q *Queries) DailyActivity(ctx context.Context, ownerID int64, until time.Time, days int) ([]models.DailyActivity, error) {
	query := `
		WITH days AS (
			SELECT generate_series(
				(($2::timestamptz AT TIME ZONE 'UTC')::date - ($3::int - 1)),
				($2::timestamptz AT TIME ZONE 'UTC')::date,
				interval '1 day'
			)::date AS day
		)
		SELECT
			d.day,
			(SELECT count(*) FROM files f WHERE f.owner_id = $1 AND (f.created_at AT TIME ZONE 'UTC')::date = d.day),
			(SELECT count(*) FROM notes n WHERE n.owner_id = $1 AND (n.created_at AT TIME ZONE 'UTC')::date = d.day),
			(SELECT count(*) FROM folders fo WHERE fo.owner_id = $1 AND (fo.created_at AT TIME ZONE 'UTC')::date = d.day)
		FROM days d
		ORDER BY d.day
	`
	rows, err := q.db.Query(ctx, query, ownerID, until, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activity := []models.DailyActivity{}
	for rows.Next() {
		var a models.DailyActivity
		if err := rows.Scan(&a.Day, &a.FilesUploaded, &a.NotesCreated, &a.FoldersCreated); err != nil {
			return nil, err
		}
		activity = append(activity, a)
	}
	return activity, rows.Err()
}
