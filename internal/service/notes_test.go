package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotes_Lifecycle(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := createTestUser(t, 10)
	folder := createFolder(t, env, user.ID, nil, "Journal")

	// Notatki nie są wliczane do limitu
	note, err := env.svc.Notes.Create(ctx, user.ID, CreateNoteInput{
		Title: "  Day one ", Content: strings.Repeat("z", 1000), FolderID: &folder.ID, Tags: []string{"life"},
	})
	require.NoError(t, err)
	require.Equal(t, "Day one", note.Title)
	require.Equal(t, int64(0), usedBytes(t, user.ID))

	pinned, err := env.svc.Notes.Create(ctx, user.ID, CreateNoteInput{Title: "Pinned", IsPinned: true})
	require.NoError(t, err)

	page, err := env.svc.Notes.List(ctx, user.ID, NoteFilter{}, PageRequest{})
	require.NoError(t, err)
	require.Equal(t, int64(2), page.Total)
	require.Equal(t, pinned.ID, page.Items[0].ID)

	page, err = env.svc.Notes.List(ctx, user.ID, NoteFilter{FolderID: &folder.ID}, PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	page, err = env.svc.Notes.List(ctx, user.ID, NoteFilter{PinnedOnly: true}, PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	fav := true
	updated, err := env.svc.Notes.Update(ctx, user.ID, note.ID, NoteUpdate{
		Content: strPtr("short"), IsFavorite: &fav, MoveFolder: true,
	})
	require.NoError(t, err)
	require.Equal(t, "short", updated.Content)
	require.True(t, updated.IsFavorite)
	require.Nil(t, updated.FolderID)

	require.NoError(t, env.svc.Notes.Delete(ctx, user.ID, note.ID))
	_, err = env.svc.Notes.Get(ctx, user.ID, note.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, env.svc.Notes.Delete(ctx, user.ID, note.ID), ErrNotFound)
}

func TestNotes_Validation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := createTestUser(t, 10)

	cases := []CreateNoteInput{
		{Title: ""},
		{Title: "   "},
		{Title: strings.Repeat("t", 201)},
		{Title: "ok", Content: strings.Repeat("c", 100_001)},
	}
	for _, in := range cases {
		_, err := env.svc.Notes.Create(ctx, user.ID, in)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	}

	_, err := env.svc.Notes.Create(ctx, user.ID, CreateNoteInput{Title: strings.Repeat("t", 200), Content: strings.Repeat("c", 100_000)})
	require.NoError(t, err)

	_, err = env.svc.Notes.Create(ctx, user.ID, CreateNoteInput{Title: "x", FolderID: strPtr("missing_folder_id_123")})
	require.ErrorIs(t, err, ErrParentNotFound)

	_, err = env.svc.Notes.Update(ctx, user.ID, "missing_note_id_12345", NoteUpdate{Title: strPtr("y")})
	require.ErrorIs(t, err, ErrNotFound)
}
