package api

import (
	"context"
	"net/http"
	"time"
	"unicode/utf8"

	"storage-manager/internal/auth"
	"storage-manager/internal/database"

	_ "storage-manager/internal/models"
)

// @Summary      Get current user info
// @Description  Retrieves the profile of the currently authenticated user.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.User
// @Failure      401  {object}  ErrorResponse "Unauthorized"
// @Failure      404  {object}  ErrorResponse "User not found"
// @Router       /me [get]
func (s *Server) GetCurrentUserHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	user, err := s.store.GetUserByID(r.Context(), claims.UserID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// @Summary      Get storage usage
// @Description  Retrieves the current storage usage and quota for the authenticated user.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.StorageUsage
// @Failure      401  {object}  ErrorResponse "Unauthorized"
// @Failure      404  {object}  ErrorResponse "User not found"
// @Router       /me/storage [get]
func (s *Server) GetStorageUsageHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	usage, err := s.services.Ledger.Usage(r.Context(), claims.UserID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, usage)
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" example:"password123"`
	NewPassword     string `json:"new_password" example:"correct-horse-battery"`
}

// @Summary      Change password
// @Description  Replaces the password and ends every session of the user, so refresh tokens issued before the change stop working.
// @Tags         users
// @Accept       json
// @Security     BearerAuth
// @Param        request  body      ChangePasswordRequest  true  "Passwords"
// @Success      204      {null}    nil "No Content"
// @Failure      400      {object}  ErrorResponse
// @Failure      401      {object}  ErrorResponse "Current password is wrong"
// @Router       /me/password [post]
func (s *Server) ChangePasswordHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	var req ChangePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if utf8.RuneCountInString(req.NewPassword) < minPasswordLength {
		writeError(w, http.StatusBadRequest, "Password must be at least 8 characters")
		return
	}

	user, err := s.store.GetUserByID(r.Context(), claims.UserID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if user == nil || !auth.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		writeError(w, http.StatusUnauthorized, "Current password is wrong")
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	err = s.store.ExecTx(r.Context(), func(q *database.Queries) error {
		if err := q.UpdateUserPassword(r.Context(), user.ID, hash); err != nil {
			return err
		}
		return q.DeleteAllSessionsForUser(r.Context(), user.ID)
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.log.Info("password changed", "user_id", user.ID)
	w.WriteHeader(http.StatusNoContent)
}

type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"ok"`
}

// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Failure      503  {object}  HealthResponse
// @Router       /health [get]
func (s *Server) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		s.log.Warn("health check failed", "err", err)
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Database: "down"})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Database: "ok"})
}

