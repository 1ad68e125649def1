package service

import (
	"context"
	"time"

	"storage-manager/internal/database"
	"storage-manager/internal/models"

	"golang.org/x/sync/errgroup"
)

const (
	defaultActivityDays = 30
	maxActivityDays     = 365
	defaultRecent       = 5
	maxRecent           = 50
)

type SummaryService struct {
	store *database.Store
	now   func() time.Time
}

func NewSummaryService(store *database.Store) *SummaryService {
	return &SummaryService{store: store, now: time.Now}
}

type SummaryOptions struct {
	// Days is the trailing activity window ending today (UTC).
	Days int
	// Recent is how many of the latest files and notes to include.
	Recent int
}

func (o SummaryOptions) normalize() (SummaryOptions, error) {
	switch {
	case o.Days == 0:
		o.Days = defaultActivityDays
	case o.Days < 0 || o.Days > maxActivityDays:
		return o, invalid("days", "must be between 1 and 365")
	}
	switch {
	case o.Recent == 0:
		o.Recent = defaultRecent
	case o.Recent < 0 || o.Recent > maxRecent:
		return o, invalid("recent", "must be between 1 and 50")
	}
	return o, nil
}

// Get reads a consistent-enough snapshot of the owner's data. The queries run
// concurrently and are not wrapped in a transaction.
func (s *SummaryService) Get(ctx context.Context, ownerID int64, opts SummaryOptions) (*models.Summary, error) {
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}

	var (
		summary models.Summary
		user    *models.User
	)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		user, err = s.store.GetUserByID(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		summary.Counts, err = s.store.CountResources(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		summary.Breakdown, err = s.store.StorageByType(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		summary.RecentFiles, err = s.store.RecentFiles(gctx, ownerID, opts.Recent)
		return err
	})
	g.Go(func() error {
		var err error
		summary.RecentNotes, err = s.store.RecentNotes(gctx, ownerID, opts.Recent)
		return err
	})
	g.Go(func() error {
		var err error
		summary.Activity, err = s.store.DailyActivity(gctx, ownerID, s.now().UTC(), opts.Days)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	summary.Storage = *usageOf(user)
	if summary.Breakdown == nil {
		summary.Breakdown = []models.TypeBreakdown{}
	}
	for i := range summary.Breakdown {
		summary.Breakdown[i].Percentage = percent(summary.Breakdown[i].SizeBytes, summary.Storage.UsedBytes)
	}

	return &summary, nil
}
