package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"storage-manager/internal/database"
	"storage-manager/internal/models"
)

const maxFolderNameLength = 255

// FolderService keeps every folder's materialized path equal to the names
// along its parent chain. Structural changes for one owner are serialized by
// running them under that owner's advisory lock.
type FolderService struct {
	store  *database.Store
	ledger *Ledger
	blobs  *blobCleaner
	events *events
	log    *slog.Logger
	newID  func() string
}

type CreateFolderInput struct {
	Name        string
	ParentID    *string
	Description string
	Color       string
}

func (s *FolderService) Create(ctx context.Context, ownerID int64, in CreateFolderInput) (*models.Folder, error) {
	name, err := validateFolderName(in.Name)
	if err != nil {
		return nil, err
	}

	var folder *models.Folder
	err = s.store.ExecOwnerTx(ctx, ownerID, func(q *database.Queries) error {
		path := name
		if in.ParentID != nil {
			parent, err := q.GetFolderByID(ctx, *in.ParentID, ownerID)
			if err != nil {
				return err
			}
			if parent == nil {
				return ErrParentNotFound
			}
			path = joinPath(parent.Path, name)
		}

		taken, err := q.FolderNameTaken(ctx, ownerID, in.ParentID, name, "")
		if err != nil {
			return err
		}
		if taken {
			return ErrDuplicateName
		}

		id, err := uniqueID(ctx, s.newID, q.FolderExists)
		if err != nil {
			return err
		}

		folder, err = q.CreateFolder(ctx, database.CreateFolderParams{
			ID:          id,
			OwnerID:     ownerID,
			ParentID:    in.ParentID,
			Name:        name,
			Path:        path,
			Description: in.Description,
			Color:       in.Color,
		})
		if err != nil {
			return err
		}
		return s.events.record(ctx, q, ownerID, EventFolderCreated, folder)
	})
	if err != nil {
		return nil, err
	}

	s.events.push(ownerID, EventFolderCreated, folder)
	return folder, nil
}

func (s *FolderService) Get(ctx context.Context, ownerID int64, id string) (*models.Folder, error) {
	folder, err := s.store.GetFolderByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, ErrNotFound
	}
	return folder, nil
}

type FolderFilter struct {
	ParentID     *string
	Search       string
	FavoriteOnly bool
}

// List returns the direct children of ParentID. Without a parent it lists
// root folders, unless a search or favorite filter asks for matches across
// the whole tree.
func (s *FolderService) List(ctx context.Context, ownerID int64, filter FolderFilter) ([]models.Folder, error) {
	params := database.ListFoldersParams{
		OwnerID:      ownerID,
		ParentID:     filter.ParentID,
		Search:       strings.TrimSpace(filter.Search),
		FavoriteOnly: filter.FavoriteOnly,
	}
	params.ByParent = filter.ParentID != nil || (params.Search == "" && !filter.FavoriteOnly)

	if filter.ParentID != nil {
		parent, err := s.store.GetFolderLink(ctx, *filter.ParentID, ownerID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, ErrNotFound
		}
	}

	return s.store.ListFolders(ctx, params)
}

// Rename changes the folder's last path segment and rewrites the path prefix
// of every descendant. Parent links are left untouched.
func (s *FolderService) Rename(ctx context.Context, ownerID int64, id string, newName string) (*models.Folder, error) {
	name, err := validateFolderName(newName)
	if err != nil {
		return nil, err
	}

	var (
		folder  *models.Folder
		oldPath string
		changed bool
	)
	err = s.store.ExecOwnerTx(ctx, ownerID, func(q *database.Queries) error {
		current, err := q.GetFolderByID(ctx, id, ownerID)
		if err != nil {
			return err
		}
		if current == nil {
			return ErrNotFound
		}
		if current.Name == name {
			folder = current
			return nil
		}

		taken, err := q.FolderNameTaken(ctx, ownerID, current.ParentID, name, current.ID)
		if err != nil {
			return err
		}
		if taken {
			return ErrDuplicateName
		}

		oldPath = current.Path
		newPath := joinPath(parentPath(current.Path), name)
		if err := s.relocate(ctx, q, ownerID, current, current.ParentID, name, newPath); err != nil {
			return err
		}

		folder, err = q.GetFolderByID(ctx, id, ownerID)
		if err != nil {
			return err
		}
		changed = true
		return s.events.record(ctx, q, ownerID, EventFolderRenamed, folderChange{Folder: folder, OldPath: oldPath})
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.events.push(ownerID, EventFolderRenamed, folderChange{Folder: folder, OldPath: oldPath})
	}
	return folder, nil
}

// Move reparents the folder, nil meaning the root.
func (s *FolderService) Move(ctx context.Context, ownerID int64, id string, newParentID *string) (*models.Folder, error) {
	var (
		folder  *models.Folder
		oldPath string
		changed bool
	)
	err := s.store.ExecOwnerTx(ctx, ownerID, func(q *database.Queries) error {
		current, err := q.GetFolderByID(ctx, id, ownerID)
		if err != nil {
			return err
		}
		if current == nil {
			return ErrNotFound
		}
		if sameParent(current.ParentID, newParentID) {
			folder = current
			return nil
		}

		basePath := ""
		if newParentID != nil {
			if *newParentID == current.ID {
				return invalid("parent_id", "a folder cannot be moved into itself")
			}
			parent, err := q.GetFolderByID(ctx, *newParentID, ownerID)
			if err != nil {
				return err
			}
			if parent == nil {
				return ErrParentNotFound
			}
			below, err := q.IsDescendantOf(ctx, parent.ID, current.ID)
			if err != nil {
				return err
			}
			if below {
				return invalid("parent_id", "a folder cannot be moved into one of its descendants")
			}
			basePath = parent.Path
		}

		taken, err := q.FolderNameTaken(ctx, ownerID, newParentID, current.Name, current.ID)
		if err != nil {
			return err
		}
		if taken {
			return ErrDuplicateName
		}

		oldPath = current.Path
		if err := s.relocate(ctx, q, ownerID, current, newParentID, current.Name, joinPath(basePath, current.Name)); err != nil {
			return err
		}

		folder, err = q.GetFolderByID(ctx, id, ownerID)
		if err != nil {
			return err
		}
		changed = true
		return s.events.record(ctx, q, ownerID, EventFolderMoved, folderChange{Folder: folder, OldPath: oldPath})
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.events.push(ownerID, EventFolderMoved, folderChange{Folder: folder, OldPath: oldPath})
	}
	return folder, nil
}

// relocate must run under the owner lock.
func (s *FolderService) relocate(ctx context.Context, q *database.Queries, ownerID int64, folder *models.Folder, parentID *string, name, newPath string) error {
	ok, err := q.UpdateFolderPlacement(ctx, folder.ID, ownerID, parentID, name, newPath)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	n, err := q.RewriteDescendantPaths(ctx, ownerID, folder.Path, newPath)
	if err != nil {
		return fmt.Errorf("failed to rewrite paths below %q: %w", folder.Path, err)
	}
	s.log.Debug("folder relocated", "folder_id", folder.ID, "old_path", folder.Path, "new_path", newPath, "descendants", n)
	return nil
}

type FolderMetadata struct {
	Description *string
	Color       *string
	IsFavorite  *bool
}

func (s *FolderService) UpdateMetadata(ctx context.Context, ownerID int64, id string, meta FolderMetadata) (*models.Folder, error) {
	if meta.Description != nil && utf8.RuneCountInString(*meta.Description) > maxDescriptionLength {
		return nil, invalid("description", "must be at most "+strconv.Itoa(maxDescriptionLength)+" characters")
	}

	var folder *models.Folder
	err := s.store.ExecTx(ctx, func(q *database.Queries) error {
		ok, err := q.UpdateFolderMetadata(ctx, database.UpdateFolderMetadataParams{
			ID:          id,
			OwnerID:     ownerID,
			Description: meta.Description,
			Color:       meta.Color,
			IsFavorite:  meta.IsFavorite,
		})
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotFound
		}

		folder, err = q.GetFolderByID(ctx, id, ownerID)
		if err != nil {
			return err
		}
		return s.events.record(ctx, q, ownerID, EventFolderUpdated, folder)
	})
	if err != nil {
		return nil, err
	}

	s.events.push(ownerID, EventFolderUpdated, folder)
	return folder, nil
}

// DeleteResult describes what a folder delete removed.
type DeleteResult struct {
	FolderID      string `json:"folder_id"`
	Path          string `json:"path"`
	Folders       int64  `json:"folders"`
	Files         int64  `json:"files"`
	Notes         int64  `json:"notes"`
	ReleasedBytes int64  `json:"released_bytes"`
}

// Delete removes the folder. A folder with any content is only removed when
// force is set, in which case the whole subtree goes, children first, and
// the owner's usage drops by the size of every file removed.
func (s *FolderService) Delete(ctx context.Context, ownerID int64, id string, force bool) (*DeleteResult, error) {
	var (
		result  *DeleteResult
		removed []database.DeletedFile
	)
	err := s.store.ExecOwnerTx(ctx, ownerID, func(q *database.Queries) error {
		removed = nil

		folder, err := q.GetFolderByID(ctx, id, ownerID)
		if err != nil {
			return err
		}
		if folder == nil {
			return ErrNotFound
		}

		counts, err := q.CountFolderSubtree(ctx, id, ownerID)
		if err != nil {
			return err
		}
		if counts.Total() > 0 && !force {
			return &NotEmptyError{Count: counts.Total()}
		}

		order, err := subtreeBottomUp(ctx, q, ownerID, id)
		if err != nil {
			return err
		}

		result = &DeleteResult{FolderID: id, Path: folder.Path}
		for _, folderID := range order {
			files, err := q.DeleteFilesInFolder(ctx, ownerID, folderID)
			if err != nil {
				return err
			}
			for _, f := range files {
				result.ReleasedBytes += f.SizeBytes
			}
			removed = append(removed, files...)
			result.Files += int64(len(files))

			notes, err := q.DeleteNotesInFolder(ctx, ownerID, folderID)
			if err != nil {
				return err
			}
			result.Notes += notes

			if _, err := q.DeleteFolder(ctx, folderID, ownerID); err != nil {
				return err
			}
		}
		result.Folders = int64(len(order)) - 1

		if err := s.ledger.Release(ctx, q, ownerID, result.ReleasedBytes); err != nil {
			return err
		}
		return s.events.record(ctx, q, ownerID, EventFolderDeleted, result)
	})
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(removed))
	for _, f := range removed {
		keys = append(keys, f.StorageKey)
	}
	s.blobs.removeAll(ctx, keys)

	s.events.push(ownerID, EventFolderDeleted, result)
	return result, nil
}

// subtreeBottomUp lists rootID and every folder below it so that each folder
// comes after all of its descendants. It walks the tree with an explicit
// stack instead of recursion.
func subtreeBottomUp(ctx context.Context, q *database.Queries, ownerID int64, rootID string) ([]string, error) {
	seen := map[string]bool{rootID: true}
	stack := []string{rootID}
	var preorder []string

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		preorder = append(preorder, id)

		children, err := q.ListChildFolderIDs(ctx, ownerID, id)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			if seen[child] {
				return nil, fmt.Errorf("folder %s reached twice below %s", child, rootID)
			}
			seen[child] = true
			stack = append(stack, child)
		}
	}

	slices.Reverse(preorder)
	return preorder, nil
}

// Duplicate creates an empty sibling named "<name> (Copy)", or
// "<name> (Copy N)" with the smallest free N.
func (s *FolderService) Duplicate(ctx context.Context, ownerID int64, id string) (*models.Folder, error) {
	var folder *models.Folder
	var sourceID string
	err := s.store.ExecOwnerTx(ctx, ownerID, func(q *database.Queries) error {
		source, err := q.GetFolderByID(ctx, id, ownerID)
		if err != nil {
			return err
		}
		if source == nil {
			return ErrNotFound
		}
		sourceID = source.ID

		existing, err := q.ListSiblingNames(ctx, ownerID, source.ParentID, source.Name+" (Copy")
		if err != nil {
			return err
		}
		name := nextCopyName(source.Name, existing)
		if utf8.RuneCountInString(name) > maxFolderNameLength {
			return invalid("name", "copy name would exceed "+strconv.Itoa(maxFolderNameLength)+" characters")
		}

		newID, err := uniqueID(ctx, s.newID, q.FolderExists)
		if err != nil {
			return err
		}

		folder, err = q.CreateFolder(ctx, database.CreateFolderParams{
			ID:          newID,
			OwnerID:     ownerID,
			ParentID:    source.ParentID,
			Name:        name,
			Path:        joinPath(parentPath(source.Path), name),
			Description: source.Description,
			Color:       source.Color,
		})
		if err != nil {
			return err
		}
		return s.events.record(ctx, q, ownerID, EventFolderDuplicated, folderCopy{SourceID: sourceID, Folder: folder})
	})
	if err != nil {
		return nil, err
	}

	s.events.push(ownerID, EventFolderDuplicated, folderCopy{SourceID: sourceID, Folder: folder})
	return folder, nil
}

// GetFullPath rebuilds the path by following parent links up to the root.
func (s *FolderService) GetFullPath(ctx context.Context, ownerID int64, id string) (string, error) {
	var names []string
	seen := map[string]bool{}

	current := &id
	for current != nil {
		if seen[*current] {
			return "", fmt.Errorf("cycle in folder parents at %s", *current)
		}
		seen[*current] = true

		link, err := s.store.GetFolderLink(ctx, *current, ownerID)
		if err != nil {
			return "", err
		}
		if link == nil {
			if len(names) == 0 {
				return "", ErrNotFound
			}
			return "", fmt.Errorf("folder %s has a dangling parent %s", id, *current)
		}
		names = append(names, link.Name)
		current = link.ParentID
	}

	slices.Reverse(names)
	return strings.Join(names, "/"), nil
}

type folderChange struct {
	Folder  *models.Folder `json:"folder"`
	OldPath string         `json:"old_path"`
}

type folderCopy struct {
	SourceID string         `json:"source_id"`
	Folder   *models.Folder `json:"folder"`
}

func validateFolderName(name string) (string, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return "", invalid("name", "must not be empty")
	case utf8.RuneCountInString(name) > maxFolderNameLength:
		return "", invalid("name", "must be at most "+strconv.Itoa(maxFolderNameLength)+" characters")
	case strings.Contains(name, "/"):
		return "", invalid("name", `must not contain "/"`)
	}
	return name, nil
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}

// parentPath drops the last segment. Names never contain "/", so the last
// separator always marks the parent boundary.
func parentPath(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[:i]
	}
	return ""
}

func sameParent(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func copyName(name string, n int) string {
	if n == 1 {
		return name + " (Copy)"
	}
	return fmt.Sprintf("%s (Copy %d)", name, n)
}

func nextCopyName(name string, existing []string) string {
	taken := make(map[string]bool, len(existing))
	for _, e := range existing {
		taken[e] = true
	}
	for n := 1; ; n++ {
		if candidate := copyName(name, n); !taken[candidate] {
			return candidate
		}
	}
}
