package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"storage-manager/internal/auth"
	"storage-manager/internal/config"
	"storage-manager/internal/database"
	"storage-manager/internal/models"
	"storage-manager/internal/service"
	"storage-manager/internal/storage"
	"storage-manager/internal/websocket"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	testServer  *Server
	testHandler http.Handler
	testConfig  *config.Config
)

func TestMain(m *testing.M) {
	os.Exit(run(m))
}

func run(m *testing.M) int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_api_db"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		),
	)
	if err != nil {
		log.Fatalf("Could not start postgres: %s", err)
	}
	defer pgContainer.Terminate(context.Background())

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("Could not get connection string: %s", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		log.Fatalf("Could not connect to database: %s", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("Could not apply migrations: %s", err)
	}

	tempDir, err := os.MkdirTemp("", "api-storage-test")
	if err != nil {
		log.Fatalf("Could not create temp dir: %s", err)
	}
	defer os.RemoveAll(tempDir)

	blobs, err := storage.NewLocalStorage(tempDir)
	if err != nil {
		log.Fatalf("Could not create local storage: %s", err)
	}

	wsHub := websocket.NewHub(nil)
	go wsHub.Run(ctx)

	store := database.NewStore(pool)
	services, err := service.New(service.Deps{Store: store, Blobs: blobs, Publisher: wsHub})
	if err != nil {
		log.Fatalf("Could not build services: %s", err)
	}

	testConfig = &config.Config{
		JWT:   config.JWTConfig{Secret: "api_test_secret", AccessTTL: time.Hour, RefreshTTL: time.Hour},
		Quota: config.QuotaConfig{DefaultBytes: 1 << 20},
		HTTP:  config.HTTPConfig{MaxUploadBytes: 1 << 20, AllowedOrigins: []string{"*"}},
	}
	testServer = NewServer(testConfig, store, services, wsHub, nil, nil)
	testHandler = testServer.Routes()

	return m.Run()
}

var userSeq atomic.Int64

type testUser struct {
	*models.User
	token string
}

// createTestUser inserts a user directly and signs a token for it.
func createTestUser(t *testing.T, quota int64) *testUser {
	t.Helper()
	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user, err := testServer.store.CreateUser(context.Background(), database.CreateUserParams{
		Username:     fmt.Sprintf("api_user_%d", userSeq.Add(1)),
		PasswordHash: hash,
		QuotaBytes:   quota,
	})
	require.NoError(t, err)

	token, err := auth.GenerateJWT(user, testConfig.JWT.Secret, time.Hour)
	require.NoError(t, err)
	return &testUser{User: user, token: token}
}

func doRequest(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	testHandler.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}
