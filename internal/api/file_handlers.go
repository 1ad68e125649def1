package api

import (
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"

	"storage-manager/internal/models"
	"storage-manager/internal/service"

	"github.com/go-chi/chi/v5"
)

const multipartMemory = 32 << 20

type FilesResponse struct {
	Files []models.File `json:"files"`
}

// @Summary      Upload files
// @Description  Uploads one or more files in a single batch. Either every file is stored or none is.
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        files      formData  file    true   "Files to upload (repeat the field)"
// @Param        folder_id  formData  string  false  "Target folder ID"
// @Success      201        {object}  FilesResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse "Target folder not found"
// @Failure      413        {object}  ErrorResponse "Storage quota exceeded"
// @Router       /files [post]
func (s *Server) UploadFilesHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	if s.config.HTTP.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.config.HTTP.MaxUploadBytes)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "Error parsing multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		writeError(w, http.StatusBadRequest, "At least one file is required in the 'files' field")
		return
	}

	var folderID *string
	if v := r.FormValue("folder_id"); v != "" {
		folderID = &v
	}

	inputs := make([]service.UploadInput, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			writeError(w, http.StatusBadRequest, "Error retrieving the file")
			return
		}
		opened = append(opened, f)
		inputs = append(inputs, service.UploadInput{
			Name:     h.Filename,
			MimeType: h.Header.Get("Content-Type"),
			Size:     h.Size,
			Body:     f,
		})
	}

	files, err := s.services.Files.Upload(r.Context(), claims.UserID, folderID, inputs)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, FilesResponse{Files: files})
}

// @Summary      List files
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        folder_id  query     string  false  "Only files in this folder"
// @Param        root       query     bool    false  "Only files outside any folder"
// @Param        type       query     string  false  "image, pdf, document or other"
// @Param        search     query     string  false  "Name or description contains"
// @Param        favorite   query     bool    false  "Favorites only"
// @Param        tag        query     string  false  "Has tag"
// @Param        page       query     int     false  "Page, from 1"
// @Param        page_size  query     int     false  "Page size, at most 100"
// @Success      200        {object}  service.Page[models.File]
// @Failure      400        {object}  ErrorResponse
// @Router       /files [get]
func (s *Server) ListFilesHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	page, err := parsePagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.services.Files.List(r.Context(), claims.UserID, service.FileFilter{
		FolderID:     queryString(r, "folder_id"),
		InRoot:       queryBool(r, "root"),
		Type:         r.URL.Query().Get("type"),
		Search:       r.URL.Query().Get("search"),
		FavoriteOnly: queryBool(r, "favorite"),
		Tag:          r.URL.Query().Get("tag"),
	}, page)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// @Summary      Get file metadata
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        fileId  path      string  true  "File ID"
// @Success      200     {object}  models.File
// @Failure      404     {object}  ErrorResponse
// @Router       /files/{fileId} [get]
func (s *Server) GetFileHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	file, err := s.services.Files.Get(r.Context(), claims.UserID, chi.URLParam(r, "fileId"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, file)
}

// @Summary      Download a file
// @Tags         files
// @Produce      application/octet-stream
// @Security     BearerAuth
// @Param        fileId  path      string  true  "File ID"
// @Success      200     {file}    file
// @Failure      404     {object}  ErrorResponse
// @Router       /files/{fileId}/download [get]
func (s *Server) DownloadFileHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	file, body, err := s.services.Files.Download(r.Context(), claims.UserID, chi.URLParam(r, "fileId"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	defer body.Close()

	contentType := file.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.OriginalName}))
	w.Header().Set("Content-Length", strconv.FormatInt(file.SizeBytes, 10))

	if _, err := io.Copy(w, body); err != nil {
		s.log.Warn("download interrupted", "file_id", file.ID, "err", err)
	}
}

// UpdateFileRequest changes any subset of the file. A present folder_id moves
// the file, null meaning the root.
type UpdateFileRequest struct {
	Name        *string        `json:"name,omitempty" example:"report.pdf"`
	Description *string        `json:"description,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	IsFavorite  *bool          `json:"is_favorite,omitempty"`
	FolderID    optionalString `json:"folder_id" swaggertype:"string"`
}

// @Summary      Update file metadata
// @Tags         files
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        fileId   path      string             true  "File ID"
// @Param        request  body      UpdateFileRequest  true  "Changes"
// @Success      200      {object}  models.File
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /files/{fileId} [patch]
func (s *Server) UpdateFileHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	var req UpdateFileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	file, err := s.services.Files.Update(r.Context(), claims.UserID, chi.URLParam(r, "fileId"), service.FileUpdate{
		Name:        req.Name,
		Description: req.Description,
		Tags:        req.Tags,
		IsFavorite:  req.IsFavorite,
		MoveFolder:  req.FolderID.Set,
		FolderID:    req.FolderID.Value,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, file)
}

// @Summary      Delete a file
// @Description  Deletes the file and releases its size from the quota.
// @Tags         files
// @Security     BearerAuth
// @Param        fileId  path      string  true  "File ID"
// @Success      204     {null}    nil "No Content"
// @Failure      404     {object}  ErrorResponse
// @Router       /files/{fileId} [delete]
func (s *Server) DeleteFileHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	if err := s.services.Files.Delete(r.Context(), claims.UserID, chi.URLParam(r, "fileId")); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Duplicate a file
// @Description  Copies the bytes and creates "<base> (Copy)<ext>" in the same folder. The copy counts against the quota.
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        fileId  path      string  true  "File ID"
// @Success      201     {object}  models.File
// @Failure      404     {object}  ErrorResponse
// @Failure      413     {object}  ErrorResponse "Storage quota exceeded"
// @Router       /files/{fileId}/duplicate [post]
func (s *Server) DuplicateFileHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	file, err := s.services.Files.Duplicate(r.Context(), claims.UserID, chi.URLParam(r, "fileId"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, file)
}
