package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync/atomic"
	"testing"

	"storage-manager/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var testStore *Store

func TestMain(m *testing.M) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		),
	)
	if err != nil {
		log.Fatalf("failed to start postgres container: %s", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("failed to get connection string: %s", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		log.Fatalf("failed to connect to test database: %s", err)
	}

	if err := Migrate(ctx, pool); err != nil {
		log.Fatalf("failed to apply migrations: %s", err)
	}

	testStore = NewStore(pool)

	code := m.Run()

	pool.Close()
	if err := pgContainer.Terminate(ctx); err != nil {
		log.Printf("failed to terminate postgres container: %s", err)
	}
	os.Exit(code)
}

var idSeq atomic.Int64

// testID returns a unique 21 character identifier.
func testID(prefix string) string {
	return fmt.Sprintf("%-6.6s%015d", prefix+"______", idSeq.Add(1))
}

func createTestUser(t *testing.T, quota int64) *models.User {
	t.Helper()
	user, err := testStore.CreateUser(context.Background(), CreateUserParams{
		Username:     fmt.Sprintf("user_%d", idSeq.Add(1)),
		PasswordHash: "hash",
		QuotaBytes:   quota,
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

func createTestFolder(t *testing.T, ownerID int64, parent *models.Folder, name string) *models.Folder {
	t.Helper()
	var parentID *string
	path := name
	if parent != nil {
		parentID = &parent.ID
		path = parent.Path + "/" + name
	}
	folder, err := testStore.CreateFolder(context.Background(), CreateFolderParams{
		ID:       testID("fold"),
		OwnerID:  ownerID,
		ParentID: parentID,
		Name:     name,
		Path:     path,
	})
	require.NoError(t, err)
	return folder
}

func createTestFile(t *testing.T, ownerID int64, folderID *string, name string, size int64) *models.File {
	t.Helper()
	id := testID("file")
	file, err := testStore.CreateFile(context.Background(), CreateFileParams{
		ID:           id,
		OwnerID:      ownerID,
		FolderID:     folderID,
		OriginalName: name,
		StorageKey:   "key_" + id,
		MimeType:     "text/plain",
		FileType:     string(models.FileTypeDocument),
		SizeBytes:    size,
	})
	require.NoError(t, err)
	return file
}
