package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"storage-manager/internal/database"
	"storage-manager/internal/models"
	"storage-manager/internal/storage"
)

const (
	maxFileNameLength    = 255
	maxDescriptionLength = 1000
	maxTags              = 20
	maxTagLength         = 50

	defaultPageSize = 20
	maxPageSize     = 100
)

type FileService struct {
	store  *database.Store
	ledger *Ledger
	blobs  *blobCleaner
	events *events
	log    *slog.Logger
	newID  func() string
	newKey func() string
}

type UploadInput struct {
	Name     string
	MimeType string
	// Size is the size the client declared, used only for an early quota
	// check. The stored size is what was actually written.
	Size int64
	Body io.Reader
}

// Upload stores the batch and charges its total size in one transaction.
// Either every file of the batch is created or none is, and no bytes are
// left behind on failure.
func (s *FileService) Upload(ctx context.Context, ownerID int64, folderID *string, inputs []UploadInput) ([]models.File, error) {
	if len(inputs) == 0 {
		return nil, invalid("files", "at least one file is required")
	}

	names := make([]string, len(inputs))
	var declared int64
	for i, in := range inputs {
		name, err := validateFileName(in.Name)
		if err != nil {
			return nil, err
		}
		names[i] = name
		declared += max(in.Size, 0)
	}

	if folderID != nil {
		folder, err := s.store.GetFolderLink(ctx, *folderID, ownerID)
		if err != nil {
			return nil, err
		}
		if folder == nil {
			return nil, ErrNotFound
		}
	}

	usage, err := s.ledger.Usage(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if declared > usage.AvailableBytes {
		quotaRejections.Inc()
		return nil, ErrQuotaExceeded
	}

	keys := make([]string, 0, len(inputs))
	sizes := make([]int64, 0, len(inputs))
	var total int64
	for _, in := range inputs {
		key := s.newKey()
		n, err := s.blobs.Save(ctx, key, in.Body)
		if err != nil {
			s.blobs.removeAll(ctx, append(keys, key))
			return nil, fmt.Errorf("failed to store upload: %w", err)
		}
		keys = append(keys, key)
		sizes = append(sizes, n)
		total += n
	}

	var files []models.File
	err = s.store.ExecOwnerTx(ctx, ownerID, func(q *database.Queries) error {
		files = files[:0]

		if folderID != nil {
			folder, err := q.GetFolderLink(ctx, *folderID, ownerID)
			if err != nil {
				return err
			}
			if folder == nil {
				return ErrNotFound
			}
		}

		if err := s.ledger.Reserve(ctx, q, ownerID, total); err != nil {
			return err
		}

		for i, in := range inputs {
			id, err := uniqueID(ctx, s.newID, q.FileExists)
			if err != nil {
				return err
			}
			file, err := q.CreateFile(ctx, database.CreateFileParams{
				ID:           id,
				OwnerID:      ownerID,
				FolderID:     folderID,
				OriginalName: names[i],
				StorageKey:   keys[i],
				MimeType:     in.MimeType,
				FileType:     models.FileTypeFromMime(in.MimeType),
				SizeBytes:    sizes[i],
			})
			if err != nil {
				return err
			}
			files = append(files, *file)
		}
		return s.events.record(ctx, q, ownerID, EventFilesUploaded, files)
	})
	if err != nil {
		s.blobs.removeAll(ctx, keys)
		return nil, err
	}

	s.log.Info("files uploaded", "owner_id", ownerID, "count", len(files), "bytes", total)
	s.events.push(ownerID, EventFilesUploaded, files)
	return files, nil
}

func (s *FileService) Get(ctx context.Context, ownerID int64, id string) (*models.File, error) {
	file, err := s.store.GetFileByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, ErrNotFound
	}
	return file, nil
}

type FileFilter struct {
	// FolderID limits results to one folder; InRoot to files outside any
	// folder. With neither set all files match.
	FolderID     *string
	InRoot       bool
	Type         string
	Search       string
	FavoriteOnly bool
	Tag          string
}

type PageRequest struct {
	Page     int
	PageSize int
}

func (p PageRequest) normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultPageSize
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
	return p
}

func (p PageRequest) offset() int {
	return (p.Page - 1) * p.PageSize
}

type Page[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

func (s *FileService) List(ctx context.Context, ownerID int64, filter FileFilter, page PageRequest) (*Page[models.File], error) {
	if filter.Type != "" && !models.IsValidFileType(filter.Type) {
		return nil, invalid("type", "must be one of image, pdf, document, other")
	}
	page = page.normalize()

	files, total, err := s.store.ListFiles(ctx, database.ListFilesParams{
		OwnerID:      ownerID,
		ByFolder:     filter.FolderID != nil || filter.InRoot,
		FolderID:     filter.FolderID,
		FileType:     filter.Type,
		Search:       strings.TrimSpace(filter.Search),
		FavoriteOnly: filter.FavoriteOnly,
		Tag:          filter.Tag,
		Limit:        page.PageSize,
		Offset:       page.offset(),
	})
	if err != nil {
		return nil, err
	}

	return &Page[models.File]{Items: files, Total: total, Page: page.Page, PageSize: page.PageSize}, nil
}

type FileUpdate struct {
	Name        *string
	Description *string
	Tags        []string
	IsFavorite  *bool
	// MoveFolder applies FolderID, nil meaning the root.
	MoveFolder bool
	FolderID   *string
}

func (s *FileService) Update(ctx context.Context, ownerID int64, id string, upd FileUpdate) (*models.File, error) {
	if upd.Name != nil {
		name, err := validateFileName(*upd.Name)
		if err != nil {
			return nil, err
		}
		upd.Name = &name
	}
	if upd.Description != nil && utf8.RuneCountInString(*upd.Description) > maxDescriptionLength {
		return nil, invalid("description", "must be at most "+strconv.Itoa(maxDescriptionLength)+" characters")
	}
	tags, err := normalizeTags(upd.Tags)
	if err != nil {
		return nil, err
	}

	var file *models.File
	err = s.store.ExecOwnerTx(ctx, ownerID, func(q *database.Queries) error {
		if upd.MoveFolder {
			if err := requireFolder(ctx, q, ownerID, upd.FolderID); err != nil {
				return err
			}
		}

		ok, err := q.UpdateFileMetadata(ctx, database.UpdateFileMetadataParams{
			ID:           id,
			OwnerID:      ownerID,
			OriginalName: upd.Name,
			Description:  upd.Description,
			Tags:         tags,
			IsFavorite:   upd.IsFavorite,
		})
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotFound
		}

		if upd.MoveFolder {
			if _, err := q.MoveFile(ctx, id, ownerID, upd.FolderID); err != nil {
				return err
			}
		}

		file, err = q.GetFileByID(ctx, id, ownerID)
		if err != nil {
			return err
		}
		return s.events.record(ctx, q, ownerID, EventFileUpdated, file)
	})
	if err != nil {
		return nil, err
	}

	s.events.push(ownerID, EventFileUpdated, file)
	return file, nil
}

// Delete removes the stored bytes first, then the row and its share of the
// owner's usage. A crash in between leaves a row without bytes rather than
// bytes nobody can see.
func (s *FileService) Delete(ctx context.Context, ownerID int64, id string) error {
	file, err := s.store.GetFileByID(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if file == nil {
		return ErrNotFound
	}

	if err := s.blobs.Delete(ctx, file.StorageKey); err != nil {
		if !errors.Is(err, storage.ErrBlobNotFound) {
			return fmt.Errorf("failed to delete stored bytes: %w", err)
		}
		s.log.Warn("stored bytes already missing", "file_id", file.ID, "key", file.StorageKey)
	}

	payload := map[string]interface{}{"id": file.ID, "folder_id": file.FolderID, "size_bytes": file.SizeBytes}
	err = s.store.ExecOwnerTx(ctx, ownerID, func(q *database.Queries) error {
		deleted, err := q.DeleteFile(ctx, id, ownerID)
		if err != nil {
			return err
		}
		if deleted == nil {
			return ErrNotFound
		}
		if err := s.ledger.Release(ctx, q, ownerID, deleted.SizeBytes); err != nil {
			return err
		}
		return s.events.record(ctx, q, ownerID, EventFileDeleted, payload)
	})
	if err != nil {
		return err
	}

	s.events.push(ownerID, EventFileDeleted, payload)
	return nil
}

// Download opens the stored bytes and counts the access. The caller closes
// the returned reader.
func (s *FileService) Download(ctx context.Context, ownerID int64, id string) (*models.File, io.ReadCloser, error) {
	file, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, nil, err
	}

	body, err := s.blobs.Get(ctx, file.StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrBlobNotFound) {
			s.log.Error("stored bytes missing for file", "file_id", file.ID, "key", file.StorageKey)
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	if _, err := s.store.RecordFileDownload(ctx, id, ownerID); err != nil {
		body.Close()
		return nil, nil, err
	}
	now := time.Now()
	file.DownloadCount++
	file.LastAccessed = &now

	return file, body, nil
}

// Duplicate copies the bytes under a new key and creates "<base> (Copy)<ext>"
// next to the original, charging its size to the owner.
func (s *FileService) Duplicate(ctx context.Context, ownerID int64, id string) (*models.File, error) {
	source, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	usage, err := s.ledger.Usage(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if source.SizeBytes > usage.AvailableBytes {
		quotaRejections.Inc()
		return nil, ErrQuotaExceeded
	}

	key := s.newKey()
	if err := s.blobs.Copy(ctx, source.StorageKey, key); err != nil {
		s.blobs.removeAll(ctx, []string{key})
		if errors.Is(err, storage.ErrBlobNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to copy stored bytes: %w", err)
	}

	var file *models.File
	err = s.store.ExecOwnerTx(ctx, ownerID, func(q *database.Queries) error {
		if source.FolderID != nil {
			folder, err := q.GetFolderLink(ctx, *source.FolderID, ownerID)
			if err != nil {
				return err
			}
			if folder == nil {
				return ErrNotFound
			}
		}

		if err := s.ledger.Reserve(ctx, q, ownerID, source.SizeBytes); err != nil {
			return err
		}

		newID, err := uniqueID(ctx, s.newID, q.FileExists)
		if err != nil {
			return err
		}
		file, err = q.CreateFile(ctx, database.CreateFileParams{
			ID:           newID,
			OwnerID:      ownerID,
			FolderID:     source.FolderID,
			OriginalName: copyFileName(source.OriginalName),
			StorageKey:   key,
			MimeType:     source.MimeType,
			FileType:     source.FileType,
			SizeBytes:    source.SizeBytes,
			Description:  source.Description,
			Tags:         source.Tags,
		})
		if err != nil {
			return err
		}
		return s.events.record(ctx, q, ownerID, EventFileDuplicated, file)
	})
	if err != nil {
		s.blobs.removeAll(ctx, []string{key})
		return nil, err
	}

	s.events.push(ownerID, EventFileDuplicated, file)
	return file, nil
}

// copyFileName turns "report.pdf" into "report (Copy).pdf". Dotfiles and
// names without an extension just get the suffix.
func copyFileName(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	if base == "" {
		return name + " (Copy)"
	}
	return base + " (Copy)" + ext
}

func validateFileName(name string) (string, error) {
	name = strings.TrimSpace(filepath.Base(strings.ReplaceAll(name, `\`, "/")))
	switch {
	case name == "" || name == "." || name == "/":
		return "", invalid("name", "must not be empty")
	case utf8.RuneCountInString(name) > maxFileNameLength:
		return "", invalid("name", "must be at most "+strconv.Itoa(maxFileNameLength)+" characters")
	}
	return name, nil
}

// normalizeTags trims, drops empties and duplicates. A nil slice means "leave
// unchanged" and is passed through.
func normalizeTags(tags []string) ([]string, error) {
	if tags == nil {
		return nil, nil
	}
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		if utf8.RuneCountInString(tag) > maxTagLength {
			return nil, invalid("tags", "each tag must be at most "+strconv.Itoa(maxTagLength)+" characters")
		}
		seen[tag] = true
		out = append(out, tag)
	}
	if len(out) > maxTags {
		return nil, invalid("tags", "at most "+strconv.Itoa(maxTags)+" tags are allowed")
	}
	return out, nil
}
