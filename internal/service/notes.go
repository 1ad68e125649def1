package service

import (
	"context"
	"strconv"
	"strings"
	"unicode/utf8"

	"storage-manager/internal/database"
	"storage-manager/internal/models"
)

const (
	maxNoteTitleLength   = 200
	maxNoteContentLength = 100_000
)

// NoteService manages notes. Notes are not charged against the quota.
type NoteService struct {
	store  *database.Store
	events *events
	newID  func() string
}

type CreateNoteInput struct {
	Title    string
	Content  string
	FolderID *string
	Tags     []string
	Color    string
	IsPinned bool
}

func (s *NoteService) Create(ctx context.Context, ownerID int64, in CreateNoteInput) (*models.Note, error) {
	title, err := validateNoteTitle(in.Title)
	if err != nil {
		return nil, err
	}
	if err := validateNoteContent(in.Content); err != nil {
		return nil, err
	}
	tags, err := normalizeTags(in.Tags)
	if err != nil {
		return nil, err
	}

	var note *models.Note
	err = s.store.ExecOwnerTx(ctx, ownerID, func(q *database.Queries) error {
		if err := requireFolder(ctx, q, ownerID, in.FolderID); err != nil {
			return err
		}

		id, err := uniqueID(ctx, s.newID, q.NoteExists)
		if err != nil {
			return err
		}
		note, err = q.CreateNote(ctx, database.CreateNoteParams{
			ID:       id,
			OwnerID:  ownerID,
			FolderID: in.FolderID,
			Title:    title,
			Content:  in.Content,
			Tags:     tags,
			Color:    in.Color,
			IsPinned: in.IsPinned,
		})
		if err != nil {
			return err
		}
		return s.events.record(ctx, q, ownerID, EventNoteCreated, note)
	})
	if err != nil {
		return nil, err
	}

	s.events.push(ownerID, EventNoteCreated, note)
	return note, nil
}

func (s *NoteService) Get(ctx context.Context, ownerID int64, id string) (*models.Note, error) {
	note, err := s.store.GetNoteByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNotFound
	}
	return note, nil
}

type NoteFilter struct {
	FolderID     *string
	InRoot       bool
	Search       string
	FavoriteOnly bool
	PinnedOnly   bool
	Tag          string
}

// List orders pinned notes first, then the most recently updated.
func (s *NoteService) List(ctx context.Context, ownerID int64, filter NoteFilter, page PageRequest) (*Page[models.Note], error) {
	page = page.normalize()

	notes, total, err := s.store.ListNotes(ctx, database.ListNotesParams{
		OwnerID:      ownerID,
		ByFolder:     filter.FolderID != nil || filter.InRoot,
		FolderID:     filter.FolderID,
		Search:       strings.TrimSpace(filter.Search),
		FavoriteOnly: filter.FavoriteOnly,
		PinnedOnly:   filter.PinnedOnly,
		Tag:          filter.Tag,
		Limit:        page.PageSize,
		Offset:       page.offset(),
	})
	if err != nil {
		return nil, err
	}

	return &Page[models.Note]{Items: notes, Total: total, Page: page.Page, PageSize: page.PageSize}, nil
}

type NoteUpdate struct {
	Title      *string
	Content    *string
	Tags       []string
	Color      *string
	IsFavorite *bool
	IsPinned   *bool
	MoveFolder bool
	FolderID   *string
}

func (s *NoteService) Update(ctx context.Context, ownerID int64, id string, upd NoteUpdate) (*models.Note, error) {
	if upd.Title != nil {
		title, err := validateNoteTitle(*upd.Title)
		if err != nil {
			return nil, err
		}
		upd.Title = &title
	}
	if upd.Content != nil {
		if err := validateNoteContent(*upd.Content); err != nil {
			return nil, err
		}
	}
	tags, err := normalizeTags(upd.Tags)
	if err != nil {
		return nil, err
	}

	var note *models.Note
	err = s.store.ExecOwnerTx(ctx, ownerID, func(q *database.Queries) error {
		if upd.MoveFolder {
			if err := requireFolder(ctx, q, ownerID, upd.FolderID); err != nil {
				return err
			}
		}

		ok, err := q.UpdateNote(ctx, database.UpdateNoteParams{
			ID:         id,
			OwnerID:    ownerID,
			Title:      upd.Title,
			Content:    upd.Content,
			Tags:       tags,
			Color:      upd.Color,
			IsFavorite: upd.IsFavorite,
			IsPinned:   upd.IsPinned,
			MoveFolder: upd.MoveFolder,
			FolderID:   upd.FolderID,
		})
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotFound
		}

		note, err = q.GetNoteByID(ctx, id, ownerID)
		if err != nil {
			return err
		}
		return s.events.record(ctx, q, ownerID, EventNoteUpdated, note)
	})
	if err != nil {
		return nil, err
	}

	s.events.push(ownerID, EventNoteUpdated, note)
	return note, nil
}

func (s *NoteService) Delete(ctx context.Context, ownerID int64, id string) error {
	payload := map[string]string{"id": id}
	err := s.store.ExecTx(ctx, func(q *database.Queries) error {
		ok, err := q.DeleteNote(ctx, id, ownerID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotFound
		}
		return s.events.record(ctx, q, ownerID, EventNoteDeleted, payload)
	})
	if err != nil {
		return err
	}

	s.events.push(ownerID, EventNoteDeleted, payload)
	return nil
}

// requireFolder checks that folderID, when set, names one of the owner's
// folders.
func requireFolder(ctx context.Context, q *database.Queries, ownerID int64, folderID *string) error {
	if folderID == nil {
		return nil
	}
	folder, err := q.GetFolderLink(ctx, *folderID, ownerID)
	if err != nil {
		return err
	}
	if folder == nil {
		return ErrParentNotFound
	}
	return nil
}

func validateNoteTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", invalid("title", "must not be empty")
	}
	if utf8.RuneCountInString(title) > maxNoteTitleLength {
		return "", invalid("title", "must be at most "+strconv.Itoa(maxNoteTitleLength)+" characters")
	}
	return title, nil
}

func validateNoteContent(content string) error {
	if utf8.RuneCountInString(content) > maxNoteContentLength {
		return invalid("content", "must be at most "+strconv.Itoa(maxNoteContentLength)+" characters")
	}
	return nil
}
