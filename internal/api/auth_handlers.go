package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"storage-manager/internal/auth"
	"storage-manager/internal/database"
	"storage-manager/internal/models"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

const (
	refreshTokenLength = 40
	minPasswordLength  = 8
	maxUsernameLength  = 50
)

var errInvalidRefreshToken = errors.New("invalid or expired refresh token")

type RegisterRequest struct {
	Username    string  `json:"username" example:"alice"`
	Password    string  `json:"password" example:"password123"`
	DisplayName *string `json:"display_name,omitempty" example:"Alice"`
}

type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"password123"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJ1c2VyX2lkIjoxLCJ1c2VybmFtZSI6ImFkbWluIiwiZXhwIjoxNjE2NDI2NzY2fQ...."`
	RefreshToken string `json:"refresh_token" example:"V1StGXR8_Z5jdHi6B-myT78q_Z5jdHi6B-myT78q"`
}

type RegisterResponse struct {
	User *models.User `json:"user"`
	TokenResponse
}

// issueTokens signs an access token and stores a new refresh session for user.
func (s *Server) issueTokens(ctx context.Context, q *database.Queries, user *models.User, r *http.Request) (*TokenResponse, error) {
	accessToken, err := auth.GenerateJWT(user, s.config.JWT.Secret, s.config.JWT.AccessTTL)
	if err != nil {
		return nil, err
	}

	generateID, err := nanoid.Standard(refreshTokenLength)
	if err != nil {
		return nil, err
	}
	refreshToken := generateID()

	err = q.CreateSession(ctx, database.CreateSessionParams{
		ID:           uuid.New(),
		UserID:       user.ID,
		RefreshToken: refreshToken,
		UserAgent:    r.UserAgent(),
		ClientIP:     clientIP(r),
		ExpiresAt:    time.Now().Add(s.config.JWT.RefreshTTL),
	})
	if err != nil {
		return nil, err
	}

	return &TokenResponse{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// @Summary      Register a new user
// @Description  Creates an account with the default storage quota and logs it in.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        registerRequest  body      RegisterRequest  true  "New account"
// @Success      201              {object}  RegisterResponse
// @Failure      400              {object}  ErrorResponse
// @Failure      409              {object}  ErrorResponse "Username taken"
// @Failure      429              {string}  string "Too many requests"
// @Router       /auth/register [post]
func (s *Server) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	username := strings.TrimSpace(req.Username)
	if n := utf8.RuneCountInString(username); n < 3 || n > maxUsernameLength {
		writeError(w, http.StatusBadRequest, "Username must be between 3 and 50 characters")
		return
	}
	if utf8.RuneCountInString(req.Password) < minPasswordLength {
		writeError(w, http.StatusBadRequest, "Password must be at least 8 characters")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	var (
		user   *models.User
		tokens *TokenResponse
	)
	err = s.store.ExecTx(r.Context(), func(q *database.Queries) error {
		var err error
		user, err = q.CreateUser(r.Context(), database.CreateUserParams{
			Username:     username,
			PasswordHash: hash,
			DisplayName:  req.DisplayName,
			QuotaBytes:   s.config.Quota.DefaultBytes,
		})
		if err != nil {
			return err
		}
		tokens, err = s.issueTokens(r.Context(), q, user, r)
		return err
	})
	if err != nil {
		if errors.Is(err, database.ErrUsernameTaken) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		s.writeServiceError(w, r, err)
		return
	}

	s.log.Info("user registered", "user_id", user.ID, "username", user.Username)
	writeJSON(w, http.StatusCreated, RegisterResponse{User: user, TokenResponse: *tokens})
}

// @Summary      Logs a user in
// @Description  Authenticates a user and returns a short-lived access token and a long-lived refresh token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        loginRequest   body      LoginRequest  true  "Login Credentials"
// @Success      200            {object}  TokenResponse
// @Failure      400            {object}  ErrorResponse "Invalid request body"
// @Failure      401            {object}  ErrorResponse "Invalid username or password"
// @Failure      429            {string}  string "Too many requests"
// @Failure      500            {object}  ErrorResponse
// @Router       /auth/login [post]
func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := s.store.GetUserByUsername(r.Context(), strings.TrimSpace(req.Username))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if user == nil || !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	tokens, err := s.issueTokens(r.Context(), s.store.Queries, user, r)
	if err != nil {
		s.log.Error("failed to create session", "user_id", user.ID, "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to process login session")
		return
	}

	writeJSON(w, http.StatusOK, tokens)
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" example:"V1StGXR8_Z5jdHi6B-myT78q_Z5jdHi6B-myT78q"`
}

// @Summary      Refresh access token
// @Description  Provides a new short-lived access token and a new refresh token in exchange for a valid, non-expired refresh token. Implements refresh token rotation.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        refreshTokenRequest   body      RefreshTokenRequest  true  "Refresh Token"
// @Success      200                   {object}  TokenResponse
// @Failure      400                   {object}  ErrorResponse "Invalid request body or missing token"
// @Failure      401                   {object}  ErrorResponse "Invalid or expired refresh token"
// @Failure      500                   {object}  ErrorResponse
// @Router       /auth/refresh [post]
func (s *Server) RefreshTokenHandler(w http.ResponseWriter, r *http.Request) {
	var req RefreshTokenRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.RefreshToken == "" {
		writeError(w, http.StatusBadRequest, "Refresh token is required")
		return
	}

	var tokens *TokenResponse
	txErr := s.store.ExecTx(r.Context(), func(q *database.Queries) error {
		user, err := q.GetUserByRefreshToken(r.Context(), req.RefreshToken)
		if err != nil {
			return err
		}
		if user == nil {
			return errInvalidRefreshToken
		}

		deleted, err := q.DeleteSessionByRefreshToken(r.Context(), req.RefreshToken)
		if err != nil {
			return err
		}
		// Ktoś inny zdążył już zużyć ten token
		if !deleted {
			return errInvalidRefreshToken
		}

		tokens, err = s.issueTokens(r.Context(), q, user, r)
		return err
	})
	if txErr != nil {
		if errors.Is(txErr, errInvalidRefreshToken) {
			writeError(w, http.StatusUnauthorized, txErr.Error())
			return
		}
		s.writeServiceError(w, r, txErr)
		return
	}

	writeJSON(w, http.StatusOK, tokens)
}

// @Summary      Log out
// @Description  Ends the session that owns the given refresh token. Unknown tokens are ignored.
// @Tags         auth
// @Accept       json
// @Param        refreshTokenRequest   body      RefreshTokenRequest  true  "Refresh Token"
// @Success      204                   {null}    nil "No Content"
// @Failure      400                   {object}  ErrorResponse
// @Router       /auth/logout [post]
func (s *Server) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	var req RefreshTokenRequest
	if err := decodeJSON(r, &req); err != nil || req.RefreshToken == "" {
		writeError(w, http.StatusBadRequest, "Refresh token is required")
		return
	}

	if _, err := s.store.DeleteSessionByRefreshToken(r.Context(), req.RefreshToken); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
