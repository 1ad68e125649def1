package models

import "time"

type Note struct {
	ID         string    `json:"id"`
	OwnerID    int64     `json:"owner_id"`
	FolderID   *string   `json:"folder_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Tags       []string  `json:"tags"`
	Color      string    `json:"color"`
	IsFavorite bool      `json:"is_favorite"`
	IsPinned   bool      `json:"is_pinned"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
