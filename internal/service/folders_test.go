package service

import (
	"context"
	"fmt"
	"testing"

	"storage-manager/internal/database"
	"storage-manager/internal/models"

	"github.com/stretchr/testify/require"
)

func createFolder(t *testing.T, env *testEnv, ownerID int64, parent *models.Folder, name string) *models.Folder {
	t.Helper()
	in := CreateFolderInput{Name: name}
	if parent != nil {
		in.ParentID = &parent.ID
	}
	folder, err := env.svc.Folders.Create(context.Background(), ownerID, in)
	require.NoError(t, err)
	return folder
}

// requirePathsConsistent checks every folder's stored path against the names
// along its parent chain.
func requirePathsConsistent(t *testing.T, env *testEnv, ownerID int64) {
	t.Helper()
	ctx := context.Background()
	all, err := testStore.ListFolders(ctx, database.ListFoldersParams{OwnerID: ownerID})
	require.NoError(t, err)
	for _, f := range all {
		full, err := env.svc.Folders.GetFullPath(ctx, ownerID, f.ID)
		require.NoError(t, err)
		require.Equal(t, full, f.Path, "folder %s", f.ID)
	}
}

func TestFolders_CreatePaths(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := createTestUser(t, 1000)

	a := createFolder(t, env, user.ID, nil, "A")
	require.Equal(t, "A", a.Path)
	require.Nil(t, a.ParentID)
	require.Equal(t, int64(0), a.ItemCount)

	b := createFolder(t, env, user.ID, a, "B")
	require.Equal(t, "A/B", b.Path)

	c := createFolder(t, env, user.ID, b, "C")
	require.Equal(t, "A/B/C", c.Path)

	got, err := env.svc.Folders.Get(ctx, user.ID, a.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), got.ItemCount)

	requirePathsConsistent(t, env, user.ID)
	require.Equal(t, 3, env.pub.count(user.ID))
}

func TestFolders_CreateErrors(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := createTestUser(t, 1000)
	other := createTestUser(t, 1000)

	a := createFolder(t, env, user.ID, nil, "Docs")
	b := createFolder(t, env, user.ID, nil, "Other")

	_, err := env.svc.Folders.Create(ctx, user.ID, CreateFolderInput{Name: "Docs"})
	require.ErrorIs(t, err, ErrDuplicateName)

	// Nazwy są porównywane z rozróżnieniem wielkości liter
	createFolder(t, env, user.ID, nil, "docs")

	createFolder(t, env, user.ID, a, "Inner")
	_, err = env.svc.Folders.Create(ctx, user.ID, CreateFolderInput{Name: "Inner", ParentID: &a.ID})
	require.ErrorIs(t, err, ErrDuplicateName)
	createFolder(t, env, user.ID, b, "Inner")

	_, err = env.svc.Folders.Create(ctx, user.ID, CreateFolderInput{Name: "X", ParentID: strPtr("missing_parent_id_123")})
	require.ErrorIs(t, err, ErrParentNotFound)

	_, err = env.svc.Folders.Create(ctx, other.ID, CreateFolderInput{Name: "X", ParentID: &a.ID})
	require.ErrorIs(t, err, ErrParentNotFound)

	for _, name := range []string{"", "   ", "a/b", string(make([]rune, 256))} {
		_, err = env.svc.Folders.Create(ctx, user.ID, CreateFolderInput{Name: name})
		require.ErrorIs(t, err, ErrValidation, "name %q", name)
	}

	_, err = env.svc.Folders.Get(ctx, other.ID, a.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFolders_RenameRewritesDescendants(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := createTestUser(t, 1000)

	a := createFolder(t, env, user.ID, nil, "A")
	b := createFolder(t, env, user.ID, a, "B")
	c := createFolder(t, env, user.ID, b, "C")
	sibling := createFolder(t, env, user.ID, nil, "AB")

	renamed, err := env.svc.Folders.Rename(ctx, user.ID, a.ID, "A2")
	require.NoError(t, err)
	require.Equal(t, "A2", renamed.Path)

	gotB, err := env.svc.Folders.Get(ctx, user.ID, b.ID)
	require.NoError(t, err)
	require.Equal(t, "A2/B", gotB.Path)
	require.Equal(t, a.ID, *gotB.ParentID)

	gotC, err := env.svc.Folders.Get(ctx, user.ID, c.ID)
	require.NoError(t, err)
	require.Equal(t, "A2/B/C", gotC.Path)
	require.Equal(t, b.ID, *gotC.ParentID)

	gotSibling, err := env.svc.Folders.Get(ctx, user.ID, sibling.ID)
	require.NoError(t, err)
	require.Equal(t, "AB", gotSibling.Path)

	// Zmiana nazwy folderu w środku drzewa
	_, err = env.svc.Folders.Rename(ctx, user.ID, b.ID, "Beta")
	require.NoError(t, err)
	gotC, err = env.svc.Folders.Get(ctx, user.ID, c.ID)
	require.NoError(t, err)
	require.Equal(t, "A2/Beta/C", gotC.Path)

	requirePathsConsistent(t, env, user.ID)
}

func TestFolders_RenameConflictsAndNoop(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := createTestUser(t, 1000)

	createFolder(t, env, user.ID, nil, "Taken")
	f := createFolder(t, env, user.ID, nil, "Mine")

	_, err := env.svc.Folders.Rename(ctx, user.ID, f.ID, "Taken")
	require.ErrorIs(t, err, ErrDuplicateName)

	before := env.pub.count(user.ID)
	same, err := env.svc.Folders.Rename(ctx, user.ID, f.ID, "Mine")
	require.NoError(t, err)
	require.Equal(t, "Mine", same.Path)
	require.Equal(t, before, env.pub.count(user.ID), "no-op rename publishes nothing")

	_, err = env.svc.Folders.Rename(ctx, user.ID, "missing_folder_id_123", "Z")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFolders_Move(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := createTestUser(t, 1000)

	a := createFolder(t, env, user.ID, nil, "A")
	b := createFolder(t, env, user.ID, a, "B")
	c := createFolder(t, env, user.ID, b, "C")
	target := createFolder(t, env, user.ID, nil, "Target")

	moved, err := env.svc.Folders.Move(ctx, user.ID, b.ID, &target.ID)
	require.NoError(t, err)
	require.Equal(t, "Target/B", moved.Path)
	require.Equal(t, target.ID, *moved.ParentID)

	gotC, err := env.svc.Folders.Get(ctx, user.ID, c.ID)
	require.NoError(t, err)
	require.Equal(t, "Target/B/C", gotC.Path)

	moved, err = env.svc.Folders.Move(ctx, user.ID, b.ID, nil)
	require.NoError(t, err)
	require.Equal(t, "B", moved.Path)
	require.Nil(t, moved.ParentID)

	requirePathsConsistent(t, env, user.ID)
}

func TestFolders_MoveIntoDescendantFails(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := createTestUser(t, 1000)

	a := createFolder(t, env, user.ID, nil, "A")
	b := createFolder(t, env, user.ID, a, "B")
	c := createFolder(t, env, user.ID, b, "C")

	_, err := env.svc.Folders.Move(ctx, user.ID, a.ID, &c.ID)
	require.ErrorIs(t, err, ErrValidation)

	_, err = env.svc.Folders.Move(ctx, user.ID, a.ID, &a.ID)
	require.ErrorIs(t, err, ErrValidation)

	_, err = env.svc.Folders.Move(ctx, user.ID, a.ID, strPtr("missing_folder_id_123"))
	require.ErrorIs(t, err, ErrParentNotFound)

	for id, want := range map[string]string{a.ID: "A", b.ID: "A/B", c.ID: "A/B/C"} {
		got, err := env.svc.Folders.Get(ctx, user.ID, id)
		require.NoError(t, err)
		require.Equal(t, want, got.Path)
	}
	got, err := env.svc.Folders.Get(ctx, user.ID, a.ID)
	require.NoError(t, err)
	require.Nil(t, got.ParentID)
}

func TestFolders_MoveNameCollision(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := createTestUser(t, 1000)

	target := createFolder(t, env, user.ID, nil, "Target")
	createFolder(t, env, user.ID, target, "Same")
	loose := createFolder(t, env, user.ID, nil, "Same")

	_, err := env.svc.Folders.Move(ctx, user.ID, loose.ID, &target.ID)
	require.ErrorIs(t, err, ErrDuplicateName)
}

func TestFolders_UpdateMetadata(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := createTestUser(t, 1000)
	f := createFolder(t, env, user.ID, nil, "Meta")

	fav := true
	updated, err := env.svc.Folders.UpdateMetadata(ctx, user.ID, f.ID, FolderMetadata{
		Description: strPtr("about"), Color: strPtr("#ff0000"), IsFavorite: &fav,
	})
	require.NoError(t, err)
	require.Equal(t, "about", updated.Description)
	require.Equal(t, "#ff0000", updated.Color)
	require.True(t, updated.IsFavorite)

	updated, err = env.svc.Folders.UpdateMetadata(ctx, user.ID, f.ID, FolderMetadata{Color: strPtr("blue")})
	require.NoError(t, err)
	require.Equal(t, "about", updated.Description)
	require.Equal(t, "blue", updated.Color)

	_, err = env.svc.Folders.UpdateMetadata(ctx, user.ID, "missing_folder_id_123", FolderMetadata{})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFolders_List(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := createTestUser(t, 1000)

	work := createFolder(t, env, user.ID, nil, "Work")
	createFolder(t, env, user.ID, work, "Reports")
	createFolder(t, env, user.ID, work, "Invoices")
	createFolder(t, env, user.ID, nil, "Home")

	roots, err := env.svc.Folders.List(ctx, user.ID, FolderFilter{})
	require.NoError(t, err)
	require.Len(t, roots, 2)

	children, err := env.svc.Folders.List(ctx, user.ID, FolderFilter{ParentID: &work.ID})
	require.NoError(t, err)
	require.Len(t, children, 2)

	found, err := env.svc.Folders.List(ctx, user.ID, FolderFilter{Search: "REPO"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, "Work/Reports", found[0].Path)

	_, err = env.svc.Folders.List(ctx, user.ID, FolderFilter{ParentID: strPtr("missing_folder_id_123")})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFolders_DeleteNotEmptyReportsSubtreeCount(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := createTestUser(t, 1<<20)

	root := createFolder(t, env, user.ID, nil, "Root")
	mid := createFolder(t, env, user.ID, root, "Mid")
	leaf := createFolder(t, env, user.ID, mid, "Leaf")

	_, err := env.svc.Files.Upload(ctx, user.ID, &leaf.ID, []UploadInput{upload("a.txt", "text/plain", 100)})
	require.NoError(t, err)
	_, err = env.svc.Files.Upload(ctx, user.ID, &root.ID, []UploadInput{upload("b.png", "image/png", 50)})
	require.NoError(t, err)
	_, err = env.svc.Notes.Create(ctx, user.ID, CreateNoteInput{Title: "n", FolderID: &mid.ID})
	require.NoError(t, err)

	_, err = env.svc.Folders.Delete(ctx, user.ID, root.ID, false)
	var notEmpty *NotEmptyError
	require.ErrorAs(t, err, &notEmpty)
	require.ErrorIs(t, err, ErrNotEmpty)
	// Mid, Leaf, dwa pliki i notatka
	require.Equal(t, int64(5), notEmpty.Count)

	_, err = env.svc.Folders.Get(ctx, user.ID, leaf.ID)
	require.NoError(t, err)
	require.Equal(t, int64(150), usedBytes(t, user.ID))
}

func TestFolders_ForceDeleteReleasesQuota(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := createTestUser(t, 1<<20)

	keep := createFolder(t, env, user.ID, nil, "Keep")
	root := createFolder(t, env, user.ID, nil, "Root")
	mid := createFolder(t, env, user.ID, root, "Mid")
	leaf := createFolder(t, env, user.ID, mid, "Leaf")
	createFolder(t, env, user.ID, root, "Empty")

	_, err := env.svc.Files.Upload(ctx, user.ID, &leaf.ID, []UploadInput{upload("a.txt", "text/plain", 100), upload("b.txt", "text/plain", 30)})
	require.NoError(t, err)
	_, err = env.svc.Files.Upload(ctx, user.ID, &root.ID, []UploadInput{upload("c.pdf", "application/pdf", 20)})
	require.NoError(t, err)
	_, err = env.svc.Files.Upload(ctx, user.ID, &keep.ID, []UploadInput{upload("kept.txt", "text/plain", 7)})
	require.NoError(t, err)
	_, err = env.svc.Notes.Create(ctx, user.ID, CreateNoteInput{Title: "n", FolderID: &leaf.ID})
	require.NoError(t, err)
	require.Equal(t, 4, blobCount(t, env.dir))

	result, err := env.svc.Folders.Delete(ctx, user.ID, root.ID, true)
	require.NoError(t, err)
	require.Equal(t, &DeleteResult{
		FolderID: root.ID, Path: "Root", Folders: 3, Files: 3, Notes: 1, ReleasedBytes: 150,
	}, result)

	require.Equal(t, int64(7), usedBytes(t, user.ID))
	requireLedgerMatchesFiles(t, user.ID)
	require.Equal(t, 1, blobCount(t, env.dir))

	for _, id := range []string{root.ID, mid.ID, leaf.ID} {
		_, err := env.svc.Folders.Get(ctx, user.ID, id)
		require.ErrorIs(t, err, ErrNotFound)
	}
	_, err = env.svc.Folders.Get(ctx, user.ID, keep.ID)
	require.NoError(t, err)
}

func TestFolders_DeleteEmptyWithoutForce(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := createTestUser(t, 1000)
	f := createFolder(t, env, user.ID, nil, "Empty")

	result, err := env.svc.Folders.Delete(ctx, user.ID, f.ID, false)
	require.NoError(t, err)
	require.Equal(t, int64(0), result.Folders)

	_, err = env.svc.Folders.Delete(ctx, user.ID, f.ID, false)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFolders_DeleteDeepTree(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := createTestUser(t, 1000)

	root := createFolder(t, env, user.ID, nil, "Deep")
	parent := root
	for i := 0; i < 40; i++ {
		parent = createFolder(t, env, user.ID, parent, fmt.Sprintf("L%d", i))
	}

	result, err := env.svc.Folders.Delete(ctx, user.ID, root.ID, true)
	require.NoError(t, err)
	require.Equal(t, int64(40), result.Folders)

	all, err := testStore.ListFolders(ctx, database.ListFoldersParams{OwnerID: user.ID})
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestFolders_Duplicate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := createTestUser(t, 1000)

	parent := createFolder(t, env, user.ID, nil, "Parent")
	docs, err := env.svc.Folders.Create(ctx, user.ID, CreateFolderInput{
		Name: "Docs", ParentID: &parent.ID, Description: "desc", Color: "green",
	})
	require.NoError(t, err)
	createFolder(t, env, user.ID, docs, "Child")

	first, err := env.svc.Folders.Duplicate(ctx, user.ID, docs.ID)
	require.NoError(t, err)
	require.Equal(t, "Docs (Copy)", first.Name)
	require.Equal(t, "Parent/Docs (Copy)", first.Path)
	require.Equal(t, "desc", first.Description)
	require.Equal(t, "green", first.Color)
	require.Equal(t, parent.ID, *first.ParentID)

	second, err := env.svc.Folders.Duplicate(ctx, user.ID, docs.ID)
	require.NoError(t, err)
	require.Equal(t, "Docs (Copy 2)", second.Name)

	// Kopia jest płytka
	got, err := env.svc.Folders.Get(ctx, user.ID, first.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), got.ItemCount)
}

func TestFolders_DuplicateWithExistingCopySibling(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := createTestUser(t, 1000)

	docs := createFolder(t, env, user.ID, nil, "Docs")
	createFolder(t, env, user.ID, nil, "Docs (Copy)")

	dup, err := env.svc.Folders.Duplicate(ctx, user.ID, docs.ID)
	require.NoError(t, err)
	require.Equal(t, "Docs (Copy 2)", dup.Name)
	require.Equal(t, "Docs (Copy 2)", dup.Path)
}

func TestFolders_GetFullPath(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := createTestUser(t, 1000)

	a := createFolder(t, env, user.ID, nil, "A")
	b := createFolder(t, env, user.ID, a, "B")

	full, err := env.svc.Folders.GetFullPath(ctx, user.ID, b.ID)
	require.NoError(t, err)
	require.Equal(t, "A/B", full)

	_, err = env.svc.Folders.GetFullPath(ctx, user.ID, "missing_folder_id_123")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestNextCopyName(t *testing.T) {
	require.Equal(t, "X (Copy)", nextCopyName("X", nil))
	require.Equal(t, "X (Copy 2)", nextCopyName("X", []string{"X (Copy)"}))
	require.Equal(t, "X (Copy)", nextCopyName("X", []string{"X (Copy 2)"}))
	require.Equal(t, "X (Copy 4)", nextCopyName("X", []string{"X (Copy)", "X (Copy 2)", "X (Copy 3)", "X (Copy 5)"}))
}

func TestPathHelpers(t *testing.T) {
	require.Equal(t, "a", joinPath("", "a"))
	require.Equal(t, "a/b", joinPath("a", "b"))
	require.Equal(t, "", parentPath("a"))
	require.Equal(t, "a/b", parentPath("a/b/c"))
	require.True(t, sameParent(nil, nil))
	require.False(t, sameParent(strPtr("x"), nil))
	require.True(t, sameParent(strPtr("x"), strPtr("x")))
}
