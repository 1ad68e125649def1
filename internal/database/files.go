package database

import (
	"context"
	"errors"
	"storage-manager/internal/models"

	"github.com/jackc/pgx/v5"
)

const fileColumns = `id, owner_id, folder_id, original_name, storage_key, mime_type, file_type, size_bytes,
	description, tags, is_favorite, download_count, last_accessed, created_at, updated_at`

func scanFile(row pgx.Row) (*models.File, error) {
	var file models.File
	err := row.Scan(
		&file.ID,
		&file.OwnerID,
		&file.FolderID,
		&file.OriginalName,
		&file.StorageKey,
		&file.MimeType,
		&file.FileType,
		&file.SizeBytes,
		&file.Description,
		&file.Tags,
		&file.IsFavorite,
		&file.DownloadCount,
		&file.LastAccessed,
		&file.CreatedAt,
		&file.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &file, nil
}

func collectFiles(rows pgx.Rows) ([]models.File, error) {
	defer rows.Close()

	files := []models.File{}
	for rows.Next() {
		file, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		files = append(files, *file)
	}
	return files, rows.Err()
}

type CreateFileParams struct {
	ID           string
	OwnerID      int64
	FolderID     *string
	OriginalName string
	StorageKey   string
	MimeType     string
	FileType     string
	SizeBytes    int64
	Description  string
	Tags         []string
}

func (q *Queries) CreateFile(ctx context.Context, arg CreateFileParams) (*models.File, error) {
	query := `
		INSERT INTO files (id, owner_id, folder_id, original_name, storage_key, mime_type, file_type, size_bytes, description, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + fileColumns
	return scanFile(q.db.QueryRow(ctx, query,
		arg.ID,
		arg.OwnerID,
		arg.FolderID,
		arg.OriginalName,
		arg.StorageKey,
		arg.MimeType,
		arg.FileType,
		arg.SizeBytes,
		arg.Description,
		nonNilTags(arg.Tags),
	))
}

func (q *Queries) FileExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM files WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

func (q *Queries) GetFileByID(ctx context.Context, id string, ownerID int64) (*models.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE id = $1 AND owner_id = $2`
	file, err := scanFile(q.db.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return file, nil
}

type ListFilesParams struct {
	OwnerID int64
	// ByFolder restricts results to FolderID (nil = root).
	ByFolder     bool
	FolderID     *string
	FileType     string
	Search       string
	FavoriteOnly bool
	Tag          string
	Limit        int
	Offset       int
}

func (q *Queries) ListFiles(ctx context.Context, arg ListFilesParams) ([]models.File, int64, error) {
	f := &filter{}
	f.add("owner_id = ?", arg.OwnerID)
	if arg.ByFolder {
		if arg.FolderID == nil {
			f.addRaw("folder_id IS NULL")
		} else {
			f.add("folder_id = ?", *arg.FolderID)
		}
	}
	if arg.FileType != "" {
		f.add("file_type = ?", arg.FileType)
	}
	if arg.Search != "" {
		f.add("(original_name ILIKE ? OR description ILIKE ?)", likePattern(arg.Search))
	}
	if arg.FavoriteOnly {
		f.addRaw("is_favorite")
	}
	if arg.Tag != "" {
		f.add("? = ANY(tags)", arg.Tag)
	}

	var total int64
	if err := q.db.QueryRow(ctx, `SELECT count(*) FROM files `+f.where(), f.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + fileColumns + ` FROM files ` + f.where() +
		` ORDER BY created_at DESC, id LIMIT ` + f.next(arg.Limit) + ` OFFSET ` + f.next(arg.Offset)
	rows, err := q.db.Query(ctx, query, f.args...)
	if err != nil {
		return nil, 0, err
	}

	files, err := collectFiles(rows)
	if err != nil {
		return nil, 0, err
	}
	return files, total, nil
}

func (q *Queries) RecentFiles(ctx context.Context, ownerID int64, limit int) ([]models.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE owner_id = $1 ORDER BY created_at DESC, id LIMIT $2`
	rows, err := q.db.Query(ctx, query, ownerID, limit)
	if err != nil {
		return nil, err
	}
	return collectFiles(rows)
}

type UpdateFileMetadataParams struct {
	ID           string
	OwnerID      int64
	OriginalName *string
	Description  *string
	Tags         []string
	IsFavorite   *bool
}

func (q *Queries) UpdateFileMetadata(ctx context.Context, arg UpdateFileMetadataParams) (bool, error) {
	query := `
		UPDATE files
		SET original_name = COALESCE($1, original_name),
			description = COALESCE($2, description),
			tags = COALESCE($3, tags),
			is_favorite = COALESCE($4, is_favorite),
			updated_at = now()
		WHERE id = $5 AND owner_id = $6
	`
	res, err := q.db.Exec(ctx, query, arg.OriginalName, arg.Description, arg.Tags, arg.IsFavorite, arg.ID, arg.OwnerID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (q *Queries) MoveFile(ctx context.Context, id string, ownerID int64, folderID *string) (bool, error) {
	query := `UPDATE files SET folder_id = $1, updated_at = now() WHERE id = $2 AND owner_id = $3`
	res, err := q.db.Exec(ctx, query, folderID, id, ownerID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (q *Queries) RecordFileDownload(ctx context.Context, id string, ownerID int64) (bool, error) {
	query := `
		UPDATE files
		SET download_count = download_count + 1, last_accessed = now()
		WHERE id = $1 AND owner_id = $2
	`
	res, err := q.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

// DeletedFile is what remains to clean up once a file row is gone.
type DeletedFile struct {
	ID         string
	StorageKey string
	SizeBytes  int64
}

func (q *Queries) DeleteFile(ctx context.Context, id string, ownerID int64) (*DeletedFile, error) {
	var deleted DeletedFile
	err := q.db.QueryRow(ctx,
		`DELETE FROM files WHERE id = $1 AND owner_id = $2 RETURNING id, storage_key, size_bytes`,
		id, ownerID,
	).Scan(&deleted.ID, &deleted.StorageKey, &deleted.SizeBytes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &deleted, nil
}

func (q *Queries) DeleteFilesInFolder(ctx context.Context, ownerID int64, folderID string) ([]DeletedFile, error) {
	rows, err := q.db.Query(ctx,
		`DELETE FROM files WHERE owner_id = $1 AND folder_id = $2 RETURNING id, storage_key, size_bytes`,
		ownerID, folderID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deleted []DeletedFile
	for rows.Next() {
		var d DeletedFile
		if err := rows.Scan(&d.ID, &d.StorageKey, &d.SizeBytes); err != nil {
			return nil, err
		}
		deleted = append(deleted, d)
	}
	return deleted, rows.Err()
}
