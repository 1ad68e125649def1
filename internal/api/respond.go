package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"storage-manager/internal/service"
)

type ErrorResponse struct {
	Error     string `json:"error" example:"resource not found"`
	Field     string `json:"field,omitempty" example:"name"`
	ItemCount *int64 `json:"item_count,omitempty" example:"5"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeServiceError maps service errors onto status codes. Anything it does
// not recognise is logged and reported as 500 without details.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		notEmpty   *service.NotEmptyError
		validation *service.ValidationError
		maxBytes   *http.MaxBytesError
	)
	switch {
	case errors.As(err, &notEmpty):
		count := notEmpty.Count
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: notEmpty.Error(), ItemCount: &count})
	case errors.As(err, &validation):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: validation.Error(), Field: validation.Field})
	case errors.As(err, &maxBytes):
		writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
	case errors.Is(err, service.ErrParentNotFound):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrDuplicateName):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrQuotaExceeded):
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
	default:
		s.log.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// parsePagination reads page and page_size. Missing values are left at zero
// for the service to default; malformed ones are an error.
func parsePagination(r *http.Request) (service.PageRequest, error) {
	var page service.PageRequest
	var err error
	if v := r.URL.Query().Get("page"); v != "" {
		if page.Page, err = strconv.Atoi(v); err != nil || page.Page < 1 {
			return page, errors.New("invalid 'page' parameter, must be a positive number")
		}
	}
	if v := r.URL.Query().Get("page_size"); v != "" {
		if page.PageSize, err = strconv.Atoi(v); err != nil || page.PageSize < 1 {
			return page, errors.New("invalid 'page_size' parameter, must be a positive number")
		}
	}
	return page, nil
}

func queryBool(r *http.Request, name string) bool {
	b, _ := strconv.ParseBool(r.URL.Query().Get(name))
	return b
}

func queryString(r *http.Request, name string) *string {
	if v := r.URL.Query().Get(name); v != "" {
		return &v
	}
	return nil
}

// optionalString tells an absent JSON field apart from an explicit null.
// Set is true whenever the key was present.
type optionalString struct {
	Set   bool
	Value *string
}

func (o *optionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}
