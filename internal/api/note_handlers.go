package api

import (
	"net/http"

	"storage-manager/internal/service"

	"github.com/go-chi/chi/v5"

	_ "storage-manager/internal/models"
)

type CreateNoteRequest struct {
	Title    string   `json:"title" example:"Shopping list"`
	Content  string   `json:"content" example:"Milk, eggs"`
	FolderID *string  `json:"folder_id"`
	Tags     []string `json:"tags"`
	Color    string   `json:"color" example:"#facc15"`
	IsPinned bool     `json:"is_pinned"`
}

type UpdateNoteRequest struct {
	Title      *string        `json:"title,omitempty"`
	Content    *string        `json:"content,omitempty"`
	Tags       []string       `json:"tags,omitempty"`
	Color      *string        `json:"color,omitempty"`
	IsFavorite *bool          `json:"is_favorite,omitempty"`
	IsPinned   *bool          `json:"is_pinned,omitempty"`
	FolderID   optionalString `json:"folder_id" swaggertype:"string"`
}

// @Summary      Create a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      CreateNoteRequest  true  "Note"
// @Success      201      {object}  models.Note
// @Failure      400      {object}  ErrorResponse
// @Router       /notes [post]
func (s *Server) CreateNoteHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	var req CreateNoteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	note, err := s.services.Notes.Create(r.Context(), claims.UserID, service.CreateNoteInput{
		Title:    req.Title,
		Content:  req.Content,
		FolderID: req.FolderID,
		Tags:     req.Tags,
		Color:    req.Color,
		IsPinned: req.IsPinned,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, note)
}

// @Summary      List notes
// @Description  Pinned notes come first, then the most recently updated.
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        folder_id  query     string  false  "Only notes in this folder"
// @Param        root       query     bool    false  "Only notes outside any folder"
// @Param        search     query     string  false  "Title or content contains"
// @Param        favorite   query     bool    false  "Favorites only"
// @Param        pinned     query     bool    false  "Pinned only"
// @Param        tag        query     string  false  "Has tag"
// @Param        page       query     int     false  "Page, from 1"
// @Param        page_size  query     int     false  "Page size, at most 100"
// @Success      200        {object}  service.Page[models.Note]
// @Failure      400        {object}  ErrorResponse
// @Router       /notes [get]
func (s *Server) ListNotesHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	page, err := parsePagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.services.Notes.List(r.Context(), claims.UserID, service.NoteFilter{
		FolderID:     queryString(r, "folder_id"),
		InRoot:       queryBool(r, "root"),
		Search:       r.URL.Query().Get("search"),
		FavoriteOnly: queryBool(r, "favorite"),
		PinnedOnly:   queryBool(r, "pinned"),
		Tag:          r.URL.Query().Get("tag"),
	}, page)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// @Summary      Get a note
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        noteId  path      string  true  "Note ID"
// @Success      200     {object}  models.Note
// @Failure      404     {object}  ErrorResponse
// @Router       /notes/{noteId} [get]
func (s *Server) GetNoteHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	note, err := s.services.Notes.Get(r.Context(), claims.UserID, chi.URLParam(r, "noteId"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, note)
}

// @Summary      Update a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        noteId   path      string             true  "Note ID"
// @Param        request  body      UpdateNoteRequest  true  "Changes"
// @Success      200      {object}  models.Note
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /notes/{noteId} [patch]
func (s *Server) UpdateNoteHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	var req UpdateNoteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	note, err := s.services.Notes.Update(r.Context(), claims.UserID, chi.URLParam(r, "noteId"), service.NoteUpdate{
		Title:      req.Title,
		Content:    req.Content,
		Tags:       req.Tags,
		Color:      req.Color,
		IsFavorite: req.IsFavorite,
		IsPinned:   req.IsPinned,
		MoveFolder: req.FolderID.Set,
		FolderID:   req.FolderID.Value,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, note)
}

// @Summary      Delete a note
// @Tags         notes
// @Security     BearerAuth
// @Param        noteId  path      string  true  "Note ID"
// @Success      204     {null}    nil "No Content"
// @Failure      404     {object}  ErrorResponse
// @Router       /notes/{noteId} [delete]
func (s *Server) DeleteNoteHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	if err := s.services.Notes.Delete(r.Context(), claims.UserID, chi.URLParam(r, "noteId")); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
