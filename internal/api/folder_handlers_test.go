package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"storage-manager/internal/models"
	"storage-manager/internal/service"

	"github.com/stretchr/testify/require"
)

func createFolderAPI(t *testing.T, user *testUser, name string, parentID *string) models.Folder {
	t.Helper()
	rr := doRequest(t, "POST", "/api/v1/folders", user.token, CreateFolderRequest{Name: name, ParentID: parentID})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decodeBody[models.Folder](t, rr)
}

func TestAPI_CreateFolder(t *testing.T) {
	user := createTestUser(t, 1<<20)

	parent := createFolderAPI(t, user, "Projects", nil)
	child := createFolderAPI(t, user, "2024", &parent.ID)
	require.Equal(t, "Projects/2024", child.Path)

	rr := doRequest(t, "POST", "/api/v1/folders", user.token, CreateFolderRequest{Name: "Projects"})
	require.Equal(t, http.StatusConflict, rr.Code)

	rr = doRequest(t, "POST", "/api/v1/folders", user.token, CreateFolderRequest{Name: "  "})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "name", decodeBody[ErrorResponse](t, rr).Field)

	missing := "missing_folder_id_123"
	rr = doRequest(t, "POST", "/api/v1/folders", user.token, CreateFolderRequest{Name: "x", ParentID: &missing})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(t, "GET", "/api/v1/folders?parent_id="+parent.ID, user.token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	children := decodeBody[[]models.Folder](t, rr)
	require.Len(t, children, 1)

	rr = doRequest(t, "GET", "/api/v1/folders/"+child.ID+"/path", user.token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "Projects/2024", decodeBody[FolderPathResponse](t, rr).Path)

	other := createTestUser(t, 1<<20)
	rr = doRequest(t, "GET", "/api/v1/folders/"+parent.ID, other.token, nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAPI_UpdateFolder(t *testing.T) {
	user := createTestUser(t, 1<<20)
	a := createFolderAPI(t, user, "A", nil)
	b := createFolderAPI(t, user, "B", &a.ID)
	c := createFolderAPI(t, user, "C", &b.ID)

	rr := doRequest(t, "PATCH", "/api/v1/folders/"+a.ID, user.token, map[string]interface{}{"name": "A2", "is_favorite": true})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	updated := decodeBody[models.Folder](t, rr)
	require.Equal(t, "A2", updated.Path)
	require.True(t, updated.IsFavorite)

	rr = doRequest(t, "GET", "/api/v1/folders/"+c.ID, user.token, nil)
	require.Equal(t, "A2/B/C", decodeBody[models.Folder](t, rr).Path)

	// parent_id: null przenosi folder do korzenia
	rr = doRequest(t, "PATCH", "/api/v1/folders/"+b.ID, user.token, json.RawMessage(`{"parent_id": null}`))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	moved := decodeBody[models.Folder](t, rr)
	require.Nil(t, moved.ParentID)
	require.Equal(t, "B", moved.Path)

	rr = doRequest(t, "PATCH", "/api/v1/folders/"+b.ID, user.token, map[string]interface{}{"parent_id": c.ID})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(t, "PATCH", "/api/v1/folders/"+b.ID, user.token, map[string]interface{}{"unknown": 1})
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAPI_DeleteFolder(t *testing.T) {
	user := createTestUser(t, 1<<20)
	root := createFolderAPI(t, user, "Root", nil)
	createFolderAPI(t, user, "Child", &root.ID)
	rr := doRequest(t, "POST", "/api/v1/notes", user.token, CreateNoteRequest{Title: "n", FolderID: &root.ID})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doRequest(t, "DELETE", "/api/v1/folders/"+root.ID, user.token, nil)
	require.Equal(t, http.StatusConflict, rr.Code)
	errBody := decodeBody[ErrorResponse](t, rr)
	require.NotNil(t, errBody.ItemCount)
	require.Equal(t, int64(2), *errBody.ItemCount)

	rr = doRequest(t, "DELETE", "/api/v1/folders/"+root.ID+"?force=true", user.token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	result := decodeBody[service.DeleteResult](t, rr)
	require.Equal(t, int64(1), result.Folders)
	require.Equal(t, int64(1), result.Notes)

	rr = doRequest(t, "GET", "/api/v1/folders/"+root.ID, user.token, nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAPI_DuplicateFolder(t *testing.T) {
	user := createTestUser(t, 1<<20)
	docs := createFolderAPI(t, user, "Docs", nil)

	rr := doRequest(t, "POST", "/api/v1/folders/"+docs.ID+"/duplicate", user.token, nil)
	require.Equal(t, http.StatusCreated, rr.Code)
	require.Equal(t, "Docs (Copy)", decodeBody[models.Folder](t, rr).Name)

	rr = doRequest(t, "POST", "/api/v1/folders/"+docs.ID+"/duplicate", user.token, nil)
	require.Equal(t, http.StatusCreated, rr.Code)
	require.Equal(t, "Docs (Copy 2)", decodeBody[models.Folder](t, rr).Name)
}
