package models

import (
	"strings"
	"time"
)

const (
	FileTypeImage    = "image"
	FileTypePDF      = "pdf"
	FileTypeDocument = "document"
	FileTypeOther    = "other"
)

type File struct {
	ID            string     `json:"id"`
	OwnerID       int64      `json:"owner_id"`
	FolderID      *string    `json:"folder_id"`
	OriginalName  string     `json:"original_name"`
	StorageKey    string     `json:"-"`
	MimeType      string     `json:"mime_type"`
	FileType      string     `json:"type"`
	SizeBytes     int64      `json:"size_bytes"`
	Description   string     `json:"description"`
	Tags          []string   `json:"tags"`
	IsFavorite    bool       `json:"is_favorite"`
	DownloadCount int64      `json:"download_count"`
	LastAccessed  *time.Time `json:"last_accessed,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// FileTypeFromMime maps a MIME type onto one of the four file type buckets.
func FileTypeFromMime(mimeType string) string {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return FileTypeImage
	case mimeType == "application/pdf":
		return FileTypePDF
	case strings.Contains(mimeType, "document"), strings.Contains(mimeType, "text"):
		return FileTypeDocument
	default:
		return FileTypeOther
	}
}

func IsValidFileType(t string) bool {
	switch t {
	case FileTypeImage, FileTypePDF, FileTypeDocument, FileTypeOther:
		return true
	}
	return false
}
