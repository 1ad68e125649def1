package api

import (
	"net/http"
	"strconv"

	"storage-manager/internal/service"

	_ "storage-manager/internal/models"
)

// @Summary      Dashboard summary
// @Description  Counts, storage usage and per-type breakdown, the latest files and notes, and zero-filled daily activity.
// @Tags         summary
// @Produce      json
// @Security     BearerAuth
// @Param        days    query     int  false  "Activity window in days, 1-365 (default 30)"
// @Param        recent  query     int  false  "Number of recent files and notes, 1-50 (default 5)"
// @Success      200     {object}  models.Summary
// @Failure      400     {object}  ErrorResponse
// @Router       /summary [get]
func (s *Server) GetSummaryHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	var opts service.SummaryOptions
	for name, dst := range map[string]*int{"days": &opts.Days, "recent": &opts.Recent} {
		v := r.URL.Query().Get(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "Invalid '"+name+"' parameter, must be a positive number")
			return
		}
		*dst = n
	}

	summary, err := s.services.Summary.Get(r.Context(), claims.UserID, opts)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
