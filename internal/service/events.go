package service

import (
	"context"
	"log/slog"

	"storage-manager/internal/database"
)

const (
	EventFolderCreated    = "folder_created"
	EventFolderRenamed    = "folder_renamed"
	EventFolderMoved      = "folder_moved"
	EventFolderUpdated    = "folder_updated"
	EventFolderDeleted    = "folder_deleted"
	EventFolderDuplicated = "folder_duplicated"
	EventFilesUploaded    = "files_uploaded"
	EventFileUpdated      = "file_updated"
	EventFileDeleted      = "file_deleted"
	EventFileDuplicated   = "file_duplicated"
	EventNoteCreated      = "note_created"
	EventNoteUpdated      = "note_updated"
	EventNoteDeleted      = "note_deleted"
)

// Publisher delivers an encoded event to the live connections of one user.
type Publisher interface {
	PublishEvent(userID int64, eventData []byte)
}

type events struct {
	pub Publisher
	log *slog.Logger
}

// record journals the event in the caller's transaction.
func (e *events) record(ctx context.Context, q *database.Queries, ownerID int64, eventType string, payload interface{}) error {
	return q.LogEvent(ctx, ownerID, eventType, payload)
}

// push is called after commit.
func (e *events) push(ownerID int64, eventType string, payload interface{}) {
	if e.pub == nil {
		return
	}
	data, err := database.EncodeEvent(eventType, payload)
	if err != nil {
		e.log.Error("failed to encode event", "event_type", eventType, "err", err)
		return
	}
	e.pub.PublishEvent(ownerID, data)
}
