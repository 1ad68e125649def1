package database

import (
	"context"
	"errors"
	"storage-manager/internal/models"

	"github.com/jackc/pgx/v5"
)

const noteColumns = `id, owner_id, folder_id, title, content, tags, color, is_favorite, is_pinned, created_at, updated_at`

func scanNote(row pgx.Row) (*models.Note, error) {
	var note models.Note
	err := row.Scan(
		&note.ID,
		&note.OwnerID,
		&note.FolderID,
		&note.Title,
		&note.Content,
		&note.Tags,
		&note.Color,
		&note.IsFavorite,
		&note.IsPinned,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func collectNotes(rows pgx.Rows) ([]models.Note, error) {
	defer rows.Close()

	notes := []models.Note{}
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *note)
	}
	return notes, rows.Err()
}

type CreateNoteParams struct {
	ID       string
	OwnerID  int64
	FolderID *string
	Title    string
	Content  string
	Tags     []string
	Color    string
	IsPinned bool
}

func (q *Queries) CreateNote(ctx context.Context, arg CreateNoteParams) (*models.Note, error) {
	query := `
		INSERT INTO notes (id, owner_id, folder_id, title, content, tags, color, is_pinned)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + noteColumns
	return scanNote(q.db.QueryRow(ctx, query,
		arg.ID,
		arg.OwnerID,
		arg.FolderID,
		arg.Title,
		arg.Content,
		nonNilTags(arg.Tags),
		arg.Color,
		arg.IsPinned,
	))
}

func (q *Queries) NoteExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM notes WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

func (q *Queries) GetNoteByID(ctx context.Context, id string, ownerID int64) (*models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1 AND owner_id = $2`
	note, err := scanNote(q.db.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return note, nil
}

type ListNotesParams struct {
	OwnerID      int64
	ByFolder     bool
	FolderID     *string
	Search       string
	FavoriteOnly bool
	PinnedOnly   bool
	Tag          string
	Limit        int
	Offset       int
}

func (q *Queries) ListNotes(ctx context.Context, arg ListNotesParams) ([]models.Note, int64, error) {
	f := &filter{}
	f.add("owner_id = ?", arg.OwnerID)
	if arg.ByFolder {
		if arg.FolderID == nil {
			f.addRaw("folder_id IS NULL")
		} else {
			f.add("folder_id = ?", *arg.FolderID)
		}
	}
	if arg.Search != "" {
		f.add("(title ILIKE ? OR content ILIKE ?)", likePattern(arg.Search))
	}
	if arg.FavoriteOnly {
		f.addRaw("is_favorite")
	}
	if arg.PinnedOnly {
		f.addRaw("is_pinned")
	}
	if arg.Tag != "" {
		f.add("? = ANY(tags)", arg.Tag)
	}

	var total int64
	if err := q.db.QueryRow(ctx, `SELECT count(*) FROM notes `+f.where(), f.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + noteColumns + ` FROM notes ` + f.where() +
		` ORDER BY is_pinned DESC, updated_at DESC, id LIMIT ` + f.next(arg.Limit) + ` OFFSET ` + f.next(arg.Offset)
	rows, err := q.db.Query(ctx, query, f.args...)
	if err != nil {
		return nil, 0, err
	}

	notes, err := collectNotes(rows)
	if err != nil {
		return nil, 0, err
	}
	return notes, total, nil
}

func (q *Queries) RecentNotes(ctx context.Context, ownerID int64, limit int) ([]models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE owner_id = $1 ORDER BY updated_at DESC, id LIMIT $2`
	rows, err := q.db.Query(ctx, query, ownerID, limit)
	if err != nil {
		return nil, err
	}
	return collectNotes(rows)
}

type UpdateNoteParams struct {
	ID         string
	OwnerID    int64
	Title      *string
	Content    *string
	Tags       []string
	Color      *string
	IsFavorite *bool
	IsPinned   *bool
	// MoveFolder applies FolderID, which may be nil for the root.
	MoveFolder bool
	FolderID   *string
}

func (q *Queries) UpdateNote(ctx context.Context, arg UpdateNoteParams) (bool, error) {
	query := `
		UPDATE notes
		SET title = COALESCE($1, title),
			content = COALESCE($2, content),
			tags = COALESCE($3, tags),
			color = COALESCE($4, color),
			is_favorite = COALESCE($5, is_favorite),
			is_pinned = COALESCE($6, is_pinned),
			folder_id = CASE WHEN $7::boolean THEN $8::varchar ELSE folder_id END,
			updated_at = now()
		WHERE id = $9 AND owner_id = $10
	`
	res, err := q.db.Exec(ctx, query,
		arg.Title, arg.Content, arg.Tags, arg.Color, arg.IsFavorite, arg.IsPinned,
		arg.MoveFolder, arg.FolderID,
		arg.ID, arg.OwnerID,
	)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (q *Queries) DeleteNote(ctx context.Context, id string, ownerID int64) (bool, error) {
	res, err := q.db.Exec(ctx, `DELETE FROM notes WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (q *Queries) DeleteNotesInFolder(ctx context.Context, ownerID int64, folderID string) (int64, error) {
	res, err := q.db.Exec(ctx, `DELETE FROM notes WHERE owner_id = $1 AND folder_id = $2`, ownerID, folderID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}
