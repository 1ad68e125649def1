package models

import "time"

type StorageUsage struct {
	UsedBytes      int64   `json:"used_bytes"`
	QuotaBytes     int64   `json:"quota_bytes"`
	AvailableBytes int64   `json:"available_bytes"`
	UsagePercent   float64 `json:"usage_percent"`
}

type TypeBreakdown struct {
	FileType   string  `json:"type"`
	Count      int64   `json:"count"`
	SizeBytes  int64   `json:"size_bytes"`
	Percentage float64 `json:"percentage"`
}

type DailyActivity struct {
	Day            time.Time `json:"day"`
	FilesUploaded  int64     `json:"files_uploaded"`
	NotesCreated   int64     `json:"notes_created"`
	FoldersCreated int64     `json:"folders_created"`
}

type Counts struct {
	Folders   int64 `json:"folders"`
	Files     int64 `json:"files"`
	Notes     int64 `json:"notes"`
	Favorites int64 `json:"favorites"`
}

type Summary struct {
	Counts      Counts          `json:"counts"`
	Storage     StorageUsage    `json:"storage"`
	Breakdown   []TypeBreakdown `json:"breakdown"`
	RecentFiles []File          `json:"recent_files"`
	RecentNotes []Note          `json:"recent_notes"`
	Activity    []DailyActivity `json:"activity"`
}
