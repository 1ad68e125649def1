package service

import (
	"context"
	"testing"
	"time"

	"storage-manager/internal/models"

	"github.com/stretchr/testify/require"
)

func TestSummary_Get(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := createTestUser(t, 1000)

	folder := createFolder(t, env, user.ID, nil, "F")
	_, err := env.svc.Files.Upload(ctx, user.ID, &folder.ID, []UploadInput{
		upload("a.png", "image/png", 300),
		upload("b.txt", "text/plain", 100),
	})
	require.NoError(t, err)
	for i := 0; i < 7; i++ {
		_, err := env.svc.Notes.Create(ctx, user.ID, CreateNoteInput{Title: "n"})
		require.NoError(t, err)
	}

	summary, err := env.svc.Summary.Get(ctx, user.ID, SummaryOptions{Days: 7})
	require.NoError(t, err)

	require.Equal(t, models.Counts{Folders: 1, Files: 2, Notes: 7}, summary.Counts)
	require.Equal(t, int64(400), summary.Storage.UsedBytes)
	require.Equal(t, int64(600), summary.Storage.AvailableBytes)
	require.Equal(t, 40.0, summary.Storage.UsagePercent)

	byType := map[string]models.TypeBreakdown{}
	for _, b := range summary.Breakdown {
		byType[b.FileType] = b
	}
	require.Equal(t, 75.0, byType[models.FileTypeImage].Percentage)
	require.Equal(t, 25.0, byType[models.FileTypeDocument].Percentage)

	require.Len(t, summary.RecentFiles, 2)
	require.Len(t, summary.RecentNotes, defaultRecent)

	require.Len(t, summary.Activity, 7)
	today := summary.Activity[6]
	require.Equal(t, time.Now().UTC().Format("2006-01-02"), today.Day.Format("2006-01-02"))
	require.Equal(t, int64(2), today.FilesUploaded)
	require.Equal(t, int64(7), today.NotesCreated)
	require.Equal(t, int64(1), today.FoldersCreated)
}

func TestSummary_Defaults(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := createTestUser(t, 1000)

	summary, err := env.svc.Summary.Get(ctx, user.ID, SummaryOptions{})
	require.NoError(t, err)
	require.Len(t, summary.Activity, defaultActivityDays)
	require.NotNil(t, summary.Breakdown)
	require.Empty(t, summary.RecentFiles)

	_, err = env.svc.Summary.Get(ctx, user.ID, SummaryOptions{Days: 366})
	require.ErrorIs(t, err, ErrValidation)

	_, err = env.svc.Summary.Get(ctx, -1, SummaryOptions{})
	require.ErrorIs(t, err, ErrNotFound)
}
