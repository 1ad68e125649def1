// Package service holds the folder tree, file, note and summary operations
// together with the quota ledger they share.
package service

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"storage-manager/internal/database"
	"storage-manager/internal/storage"
)

type Deps struct {
	Store     *database.Store
	Blobs     storage.BlobStore
	Publisher Publisher
	Log       *slog.Logger
}

type Services struct {
	Ledger  *Ledger
	Folders *FolderService
	Files   *FileService
	Notes   *NoteService
	Summary *SummaryService
}

func New(deps Deps) (*Services, error) {
	if deps.Store == nil {
		return nil, errors.New("service: store is required")
	}
	if deps.Blobs == nil {
		return nil, errors.New("service: blob store is required")
	}
	log := deps.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	newID, err := newIDGenerator(idLength)
	if err != nil {
		return nil, err
	}
	newKey, err := newIDGenerator(storageKeyLength)
	if err != nil {
		return nil, err
	}

	ev := &events{pub: deps.Publisher, log: log}
	ledger := NewLedger(deps.Store)
	blobs := &blobCleaner{BlobStore: deps.Blobs, log: log}

	return &Services{
		Ledger: ledger,
		Folders: &FolderService{
			store:  deps.Store,
			ledger: ledger,
			blobs:  blobs,
			events: ev,
			log:    log.With("component", "folders"),
			newID:  newID,
		},
		Files: &FileService{
			store:  deps.Store,
			ledger: ledger,
			blobs:  blobs,
			events: ev,
			log:    log.With("component", "files"),
			newID:  newID,
			newKey: newKey,
		},
		Notes: &NoteService{
			store:  deps.Store,
			events: ev,
			newID:  newID,
		},
		Summary: NewSummaryService(deps.Store),
	}, nil
}

// blobCleaner wraps the blob store with best-effort deletion used on
// rollback paths and after cascade deletes.
type blobCleaner struct {
	storage.BlobStore
	log *slog.Logger
}

// removeAll deletes keys, logging failures. It runs on a context detached
// from request cancellation so that cleanup still happens after a client
// disconnects.
func (c *blobCleaner) removeAll(ctx context.Context, keys []string) {
	ctx = context.WithoutCancel(ctx)
	for _, key := range keys {
		if err := c.Delete(ctx, key); err != nil && !errors.Is(err, storage.ErrBlobNotFound) {
			blobCleanupFailures.Inc()
			c.log.Warn("failed to delete blob", "key", key, "err", err)
		}
	}
}
