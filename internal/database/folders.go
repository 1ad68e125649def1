package database

import (
	"context"
	"errors"
	"storage-manager/internal/models"

	"github.com/jackc/pgx/v5"
)

const folderColumns = `
	f.id, f.owner_id, f.parent_id, f.name, f.path, f.description, f.color, f.is_favorite,
	(SELECT count(*) FROM folders c WHERE c.parent_id = f.id)
		+ (SELECT count(*) FROM files fi WHERE fi.folder_id = f.id)
		+ (SELECT count(*) FROM notes n WHERE n.folder_id = f.id) AS item_count,
	f.created_at, f.updated_at`

func scanFolder(row pgx.Row) (*models.Folder, error) {
	var folder models.Folder
	err := row.Scan(
		&folder.ID,
		&folder.OwnerID,
		&folder.ParentID,
		&folder.Name,
		&folder.Path,
		&folder.Description,
		&folder.Color,
		&folder.IsFavorite,
		&folder.ItemCount,
		&folder.CreatedAt,
		&folder.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &folder, nil
}

type CreateFolderParams struct {
	ID          string
	OwnerID     int64
	ParentID    *string
	Name        string
	Path        string
	Description string
	Color       string
}

func (q *Queries) CreateFolder(ctx context.Context, arg CreateFolderParams) (*models.Folder, error) {
	query := `
		INSERT INTO folders (id, owner_id, parent_id, name, path, description, color)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, owner_id, parent_id, name, path, description, color, is_favorite, 0::bigint, created_at, updated_at
	`
	folder, err := scanFolder(q.db.QueryRow(ctx, query,
		arg.ID,
		arg.OwnerID,
		arg.ParentID,
		arg.Name,
		arg.Path,
		arg.Description,
		arg.Color,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return folder, nil
}

func (q *Queries) GetFolderByID(ctx context.Context, id string, ownerID int64) (*models.Folder, error) {
	query := `SELECT ` + folderColumns + ` FROM folders f WHERE f.id = $1 AND f.owner_id = $2`
	folder, err := scanFolder(q.db.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return folder, nil
}

// FolderLink is the minimal part of a folder needed to walk up the tree.
type FolderLink struct {
	ID       string
	ParentID *string
	Name     string
}

func (q *Queries) GetFolderLink(ctx context.Context, id string, ownerID int64) (*FolderLink, error) {
	var link FolderLink
	err := q.db.QueryRow(ctx,
		`SELECT id, parent_id, name FROM folders WHERE id = $1 AND owner_id = $2`,
		id, ownerID,
	).Scan(&link.ID, &link.ParentID, &link.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

func (q *Queries) FolderExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM folders WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

// FolderNameTaken reports whether a sibling under parentID already uses name.
// excludeID lets a rename ignore the folder being renamed.
func (q *Queries) FolderNameTaken(ctx context.Context, ownerID int64, parentID *string, name string, excludeID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM folders
			WHERE owner_id = $1 AND parent_id IS NOT DISTINCT FROM $2 AND name = $3 AND id <> $4
		)
	`
	var taken bool
	err := q.db.QueryRow(ctx, query, ownerID, parentID, name, excludeID).Scan(&taken)
	return taken, err
}

// ListSiblingNames returns names under parentID that start with prefix.
func (q *Queries) ListSiblingNames(ctx context.Context, ownerID int64, parentID *string, prefix string) ([]string, error) {
	query := `
		SELECT name FROM folders
		WHERE owner_id = $1 AND parent_id IS NOT DISTINCT FROM $2 AND left(name, length($3::text)) = $3::text
	`
	rows, err := q.db.Query(ctx, query, ownerID, parentID, prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

type ListFoldersParams struct {
	OwnerID int64
	// ByParent restricts results to direct children of ParentID (nil = root).
	ByParent     bool
	ParentID     *string
	Search       string
	FavoriteOnly bool
}

func (q *Queries) ListFolders(ctx context.Context, arg ListFoldersParams) ([]models.Folder, error) {
	f := &filter{}
	f.add("f.owner_id = ?", arg.OwnerID)
	if arg.ByParent {
		if arg.ParentID == nil {
			f.addRaw("f.parent_id IS NULL")
		} else {
			f.add("f.parent_id = ?", *arg.ParentID)
		}
	}
	if arg.Search != "" {
		f.add("f.name ILIKE ?", likePattern(arg.Search))
	}
	if arg.FavoriteOnly {
		f.addRaw("f.is_favorite")
	}

	query := `SELECT ` + folderColumns + ` FROM folders f ` + f.where() + ` ORDER BY f.path`
	rows, err := q.db.Query(ctx, query, f.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	folders := []models.Folder{}
	for rows.Next() {
		folder, err := scanFolder(rows)
		if err != nil {
			return nil, err
		}
		folders = append(folders, *folder)
	}

	return folders, rows.Err()
}

// UpdateFolderPlacement sets name, parent and path of a single folder.
func (q *Queries) UpdateFolderPlacement(ctx context.Context, id string, ownerID int64, parentID *string, name, path string) (bool, error) {
	query := `
		UPDATE folders
		SET parent_id = $1, name = $2, path = $3, updated_at = now()
		WHERE id = $4 AND owner_id = $5
	`
	res, err := q.db.Exec(ctx, query, parentID, name, path, id, ownerID)
	if err != nil {
		if isUniqueViolation(err) {
			return false, ErrDuplicateName
		}
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

// RewriteDescendantPaths replaces the oldPath prefix of every folder below
// oldPath with newPath.
func (q *Queries) RewriteDescendantPaths(ctx context.Context, ownerID int64, oldPath, newPath string) (int64, error) {
	query := `
		UPDATE folders
		SET path = $3::text || substr(path, length($2::text) + 1), updated_at = now()
		WHERE owner_id = $1 AND left(path, length($2::text) + 1) = $2::text || '/'
	`
	res, err := q.db.Exec(ctx, query, ownerID, oldPath, newPath)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

type UpdateFolderMetadataParams struct {
	ID          string
	OwnerID     int64
	Description *string
	Color       *string
	IsFavorite  *bool
}

func (q *Queries) UpdateFolderMetadata(ctx context.Context, arg UpdateFolderMetadataParams) (bool, error) {
	query := `
		UPDATE folders
		SET description = COALESCE($1, description),
			color = COALESCE($2, color),
			is_favorite = COALESCE($3, is_favorite),
			updated_at = now()
		WHERE id = $4 AND owner_id = $5
	`
	res, err := q.db.Exec(ctx, query, arg.Description, arg.Color, arg.IsFavorite, arg.ID, arg.OwnerID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

// SubtreeCounts holds everything below a folder, not counting the folder itself.
type SubtreeCounts struct {
	Folders int64
	Files   int64
	Notes   int64
}

func (c SubtreeCounts) Total() int64 {
	return c.Folders + c.Files + c.Notes
}

func (q *Queries) CountFolderSubtree(ctx context.Context, id string, ownerID int64) (SubtreeCounts, error) {
	query := `
		WITH RECURSIVE subtree AS (
			SELECT id FROM folders WHERE id = $1 AND owner_id = $2

			UNION ALL

			SELECT f.id
			FROM folders f
			JOIN subtree s ON f.parent_id = s.id
		)
		SELECT
			(SELECT count(*) FROM subtree) - 1,
			(SELECT count(*) FROM files WHERE folder_id IN (SELECT id FROM subtree)),
			(SELECT count(*) FROM notes WHERE folder_id IN (SELECT id FROM subtree))
	`
	var counts SubtreeCounts
	err := q.db.QueryRow(ctx, query, id, ownerID).Scan(&counts.Folders, &counts.Files, &counts.Notes)
	return counts, err
}

func (q *Queries) ListChildFolderIDs(ctx context.Context, ownerID int64, parentID string) ([]string, error) {
	rows, err := q.db.Query(ctx, `SELECT id FROM folders WHERE owner_id = $1 AND parent_id = $2 ORDER BY id`, ownerID, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// IsDescendantOf reports whether nodeID is ancestorID itself or lies
// somewhere below it.
func (q *Queries) IsDescendantOf(ctx context.Context, nodeID string, ancestorID string) (bool, error) {
	if nodeID == ancestorID {
		return true, nil
	}

	query := `
		WITH RECURSIVE node_children AS (
			SELECT id FROM folders WHERE id = $1

			UNION ALL

			SELECT f.id
			FROM folders f
			JOIN node_children nc ON f.parent_id = nc.id
		)
		SELECT EXISTS (
			SELECT 1
			FROM node_children
			WHERE id = $2
		);
	`
	var isDescendant bool
	err := q.db.QueryRow(ctx, query, ancestorID, nodeID).Scan(&isDescendant)
	return isDescendant, err
}

func (q *Queries) DeleteFolder(ctx context.Context, id string, ownerID int64) (bool, error) {
	res, err := q.db.Exec(ctx, `DELETE FROM folders WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}
