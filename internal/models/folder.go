package models

import "time"

type Folder struct {
	ID          string    `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	ParentID    *string   `json:"parent_id"`
	Name        string    `json:"name"`
	Path        string    `json:"path"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	IsFavorite  bool      `json:"is_favorite"`
	ItemCount   int64     `json:"item_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
