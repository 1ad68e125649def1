package api

import (
	"net/http"

	"storage-manager/internal/service"

	"github.com/go-chi/chi/v5"

	_ "storage-manager/internal/models"
)

type CreateFolderRequest struct {
	Name        string  `json:"name" example:"Projects"`
	ParentID    *string `json:"parent_id" example:"V1StGXR8_Z5jdHi6B-myT"`
	Description string  `json:"description" example:"Work in progress"`
	Color       string  `json:"color" example:"#3b82f6"`
}

// UpdateFolderRequest changes any subset of the folder. A present parent_id
// moves the folder, null meaning the root.
type UpdateFolderRequest struct {
	Name        *string        `json:"name,omitempty" example:"Archive"`
	ParentID    optionalString `json:"parent_id" swaggertype:"string" example:"V1StGXR8_Z5jdHi6B-myT"`
	Description *string        `json:"description,omitempty"`
	Color       *string        `json:"color,omitempty"`
	IsFavorite  *bool          `json:"is_favorite,omitempty"`
}

type FolderPathResponse struct {
	Path string `json:"path" example:"Projects/2024/Reports"`
}

// @Summary      Create a folder
// @Tags         folders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      CreateFolderRequest  true  "Folder"
// @Success      201      {object}  models.Folder
// @Failure      400      {object}  ErrorResponse "Invalid name or parent folder"
// @Failure      409      {object}  ErrorResponse "Name already used in this location"
// @Router       /folders [post]
func (s *Server) CreateFolderHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	var req CreateFolderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	folder, err := s.services.Folders.Create(r.Context(), claims.UserID, service.CreateFolderInput{
		Name:        req.Name,
		ParentID:    req.ParentID,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, folder)
}

// @Summary      List folders
// @Description  Lists the direct children of parent_id, or the root folders. With search or favorite set and no parent_id, matches are returned from the whole tree.
// @Tags         folders
// @Produce      json
// @Security     BearerAuth
// @Param        parent_id  query     string  false  "Parent folder ID"
// @Param        search     query     string  false  "Name contains"
// @Param        favorite   query     bool    false  "Favorites only"
// @Success      200        {array}   models.Folder
// @Failure      404        {object}  ErrorResponse "Parent folder not found"
// @Router       /folders [get]
func (s *Server) ListFoldersHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	folders, err := s.services.Folders.List(r.Context(), claims.UserID, service.FolderFilter{
		ParentID:     queryString(r, "parent_id"),
		Search:       r.URL.Query().Get("search"),
		FavoriteOnly: queryBool(r, "favorite"),
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, folders)
}

// @Summary      Get a folder
// @Tags         folders
// @Produce      json
// @Security     BearerAuth
// @Param        folderId  path      string  true  "Folder ID"
// @Success      200       {object}  models.Folder
// @Failure      404       {object}  ErrorResponse
// @Router       /folders/{folderId} [get]
func (s *Server) GetFolderHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	folder, err := s.services.Folders.Get(r.Context(), claims.UserID, chi.URLParam(r, "folderId"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, folder)
}

// @Summary      Get a folder's full path
// @Description  Rebuilds the path from the parent chain.
// @Tags         folders
// @Produce      json
// @Security     BearerAuth
// @Param        folderId  path      string  true  "Folder ID"
// @Success      200       {object}  FolderPathResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /folders/{folderId}/path [get]
func (s *Server) GetFolderPathHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	path, err := s.services.Folders.GetFullPath(r.Context(), claims.UserID, chi.URLParam(r, "folderId"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, FolderPathResponse{Path: path})
}

// @Summary      Update a folder
// @Description  Renames, moves and updates metadata. Each part is applied in turn; a failure leaves earlier parts applied.
// @Tags         folders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        folderId  path      string               true  "Folder ID"
// @Param        request   body      UpdateFolderRequest  true  "Changes"
// @Success      200       {object}  models.Folder
// @Failure      400       {object}  ErrorResponse "Invalid name, target folder or cycle"
// @Failure      404       {object}  ErrorResponse
// @Failure      409       {object}  ErrorResponse "Name already used in the target location"
// @Router       /folders/{folderId} [patch]
func (s *Server) UpdateFolderHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())
	folderID := chi.URLParam(r, "folderId")

	var req UpdateFolderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx := r.Context()
	if req.Name != nil {
		if _, err := s.services.Folders.Rename(ctx, claims.UserID, folderID, *req.Name); err != nil {
			s.writeServiceError(w, r, err)
			return
		}
	}
	if req.ParentID.Set {
		if _, err := s.services.Folders.Move(ctx, claims.UserID, folderID, req.ParentID.Value); err != nil {
			s.writeServiceError(w, r, err)
			return
		}
	}
	if req.Description != nil || req.Color != nil || req.IsFavorite != nil {
		_, err := s.services.Folders.UpdateMetadata(ctx, claims.UserID, folderID, service.FolderMetadata{
			Description: req.Description,
			Color:       req.Color,
			IsFavorite:  req.IsFavorite,
		})
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
	}

	folder, err := s.services.Folders.Get(ctx, claims.UserID, folderID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, folder)
}

// @Summary      Delete a folder
// @Description  Deletes an empty folder. With force=true the whole subtree goes, including files and notes, and their bytes are released from the quota.
// @Tags         folders
// @Produce      json
// @Security     BearerAuth
// @Param        folderId  path      string  true   "Folder ID"
// @Param        force     query     bool    false  "Delete content too"
// @Success      200       {object}  service.DeleteResult
// @Failure      404       {object}  ErrorResponse
// @Failure      409       {object}  ErrorResponse "Folder is not empty"
// @Router       /folders/{folderId} [delete]
func (s *Server) DeleteFolderHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	result, err := s.services.Folders.Delete(r.Context(), claims.UserID, chi.URLParam(r, "folderId"), queryBool(r, "force"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// @Summary      Duplicate a folder
// @Description  Creates an empty sibling named "<name> (Copy)" or "<name> (Copy N)".
// @Tags         folders
// @Produce      json
// @Security     BearerAuth
// @Param        folderId  path      string  true  "Folder ID"
// @Success      201       {object}  models.Folder
// @Failure      404       {object}  ErrorResponse
// @Router       /folders/{folderId}/duplicate [post]
func (s *Server) DuplicateFolderHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	folder, err := s.services.Folders.Duplicate(r.Context(), claims.UserID, chi.URLParam(r, "folderId"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, folder)
}
