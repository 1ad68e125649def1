package service

import (
	"context"
	"fmt"
	"math"

	"storage-manager/internal/database"
	"storage-manager/internal/models"
)

// Ledger keeps users.storage_used_bytes in step with the bytes their files
// occupy. Reserve and Release run on the caller's transaction so the usage
// change commits together with the file rows it accounts for.
type Ledger struct {
	store *database.Store
}

func NewLedger(store *database.Store) *Ledger {
	return &Ledger{store: store}
}

func (l *Ledger) queries(q *database.Queries) *database.Queries {
	if q == nil {
		return l.store.Queries
	}
	return q
}

// Reserve grows the owner's usage by delta, or fails with ErrQuotaExceeded
// and changes nothing.
func (l *Ledger) Reserve(ctx context.Context, q *database.Queries, ownerID int64, delta int64) error {
	if delta < 0 {
		return invalid("size", "must not be negative")
	}
	if delta == 0 {
		return nil
	}
	q = l.queries(q)

	ok, err := q.ReserveStorage(ctx, ownerID, delta)
	if err != nil {
		return fmt.Errorf("failed to reserve %d bytes: %w", delta, err)
	}
	if ok {
		bytesReserved.Add(float64(delta))
		return nil
	}

	user, err := q.GetUserByID(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("failed to load user %d: %w", ownerID, err)
	}
	if user == nil {
		return ErrNotFound
	}
	quotaRejections.Inc()
	return ErrQuotaExceeded
}

// Release shrinks the owner's usage by delta, clamping at zero.
func (l *Ledger) Release(ctx context.Context, q *database.Queries, ownerID int64, delta int64) error {
	if delta < 0 {
		return invalid("size", "must not be negative")
	}
	if delta == 0 {
		return nil
	}

	ok, err := l.queries(q).ReleaseStorage(ctx, ownerID, delta)
	if err != nil {
		return fmt.Errorf("failed to release %d bytes: %w", delta, err)
	}
	if !ok {
		return ErrNotFound
	}
	bytesReleased.Add(float64(delta))
	return nil
}

func (l *Ledger) Usage(ctx context.Context, ownerID int64) (*models.StorageUsage, error) {
	user, err := l.store.GetUserByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return usageOf(user), nil
}

func usageOf(user *models.User) *models.StorageUsage {
	usage := &models.StorageUsage{
		UsedBytes:      user.StorageUsedBytes,
		QuotaBytes:     user.StorageQuotaBytes,
		AvailableBytes: max(user.StorageQuotaBytes-user.StorageUsedBytes, 0),
	}
	usage.UsagePercent = percent(usage.UsedBytes, usage.QuotaBytes)
	return usage
}

// percent returns part/whole*100 rounded to two decimals.
func percent(part, whole int64) float64 {
	if whole <= 0 {
		return 0
	}
	return math.Round(float64(part)/float64(whole)*10000) / 100
}
