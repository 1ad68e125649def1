package database

import "context"

// ReserveStorage adds delta to the user's usage only if the result stays
// within the quota. It reports false when nothing was changed.
func (q *Queries) ReserveStorage(ctx context.Context, userID int64, delta int64) (bool, error) {
	query := `
		UPDATE users
		SET storage_used_bytes = storage_used_bytes + $1
		WHERE id = $2 AND storage_used_bytes + $1 <= storage_quota_bytes
	`
	res, err := q.db.Exec(ctx, query, delta, userID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

// ReleaseStorage subtracts delta, clamping at zero.
func (q *Queries) ReleaseStorage(ctx context.Context, userID int64, delta int64) (bool, error) {
	query := `
		UPDATE users
		SET storage_used_bytes = GREATEST(storage_used_bytes - $1, 0)
		WHERE id = $2
	`
	res, err := q.db.Exec(ctx, query, delta, userID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

// SumFileSizes is the ground truth the ledger is expected to match.
func (q *Queries) SumFileSizes(ctx context.Context, ownerID int64) (int64, error) {
	var total int64
	err := q.db.QueryRow(ctx, `SELECT COALESCE(sum(size_bytes), 0)::bigint FROM files WHERE owner_id = $1`, ownerID).Scan(&total)
	return total, err
}
