package database

import (
	"context"
	"testing"
	"time"

	"storage-manager/internal/models"

	"github.com/stretchr/testify/require"
)

func TestCountResourcesAndBreakdown(t *testing.T) {
	ctx := context.Background()
	user := createTestUser(t, 1<<20)

	folder := createTestFolder(t, user.ID, nil, "F")
	createTestFile(t, user.ID, &folder.ID, "a.txt", 100)
	createTestFile(t, user.ID, nil, "b.txt", 50)
	_, err := testStore.CreateFile(ctx, CreateFileParams{
		ID: testID("file"), OwnerID: user.ID, OriginalName: "x.pdf", StorageKey: testID("key"),
		MimeType: "application/pdf", FileType: models.FileTypePDF, SizeBytes: 25,
	})
	require.NoError(t, err)
	_, err = testStore.CreateNote(ctx, CreateNoteParams{ID: testID("note"), OwnerID: user.ID, Title: "n"})
	require.NoError(t, err)

	fav := true
	_, err = testStore.UpdateFolderMetadata(ctx, UpdateFolderMetadataParams{ID: folder.ID, OwnerID: user.ID, IsFavorite: &fav})
	require.NoError(t, err)

	counts, err := testStore.CountResources(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, models.Counts{Folders: 1, Files: 3, Notes: 1, Favorites: 1}, counts)

	breakdown, err := testStore.StorageByType(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, breakdown, 2)
	require.Equal(t, models.FileTypeDocument, breakdown[0].FileType)
	require.Equal(t, int64(2), breakdown[0].Count)
	require.Equal(t, int64(150), breakdown[0].SizeBytes)
	require.Equal(t, models.FileTypePDF, breakdown[1].FileType)
}

func TestDailyActivity_ZeroFilled(t *testing.T) {
	ctx := context.Background()
	user := createTestUser(t, 1<<20)
	createTestFile(t, user.ID, nil, "today.txt", 1)

	now := time.Now().UTC()
	activity, err := testStore.DailyActivity(ctx, user.ID, now, 7)
	require.NoError(t, err)
	require.Len(t, activity, 7)

	last := activity[len(activity)-1]
	require.Equal(t, now.Format("2006-01-02"), last.Day.Format("2006-01-02"))
	require.Equal(t, int64(1), last.FilesUploaded)
	for _, day := range activity[:6] {
		require.Zero(t, day.FilesUploaded)
		require.Zero(t, day.NotesCreated)
		require.Zero(t, day.FoldersCreated)
	}
}
