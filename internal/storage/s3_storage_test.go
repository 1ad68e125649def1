package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startMinio(t *testing.T) *S3Storage {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping minio container in short mode")
	}
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "minio/minio:latest",
			ExposedPorts: []string{"9000/tcp"},
			Env: map[string]string{
				"MINIO_ROOT_USER":     "minioadmin",
				"MINIO_ROOT_PASSWORD": "minioadmin",
			},
			Cmd:        []string{"server", "/data"},
			WaitingFor: wait.ForHTTP("/minio/health/ready").WithPort("9000/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "9000/tcp")
	require.NoError(t, err)

	store, err := NewS3Storage(ctx, S3Options{
		Bucket:       "blobs",
		Region:       "us-east-1",
		Endpoint:     fmt.Sprintf("http://%s:%s", host, port.Port()),
		AccessKey:    "minioadmin",
		SecretKey:    "minioadmin",
		UsePathStyle: true,
	})
	require.NoError(t, err)
	require.NoError(t, store.EnsureBucket(ctx))
	return store
}

func TestS3Storage_RoundTrip(t *testing.T) {
	store := startMinio(t)
	ctx := context.Background()

	// io.MultiReader nie implementuje Seek, więc treść zostanie zbuforowana
	n, err := store.Save(ctx, "ab/cd", io.MultiReader(strings.NewReader("hello "), strings.NewReader("s3")))
	require.NoError(t, err)
	require.Equal(t, int64(8), n)

	require.NoError(t, store.Copy(ctx, "ab/cd", "copy-key"))

	rc, err := store.Get(ctx, "copy-key")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	rc.Close()
	require.NoError(t, err)
	require.Equal(t, "hello s3", string(data))

	require.NoError(t, store.Delete(ctx, "ab/cd"))
	require.NoError(t, store.Delete(ctx, "ab/cd"))

	_, err = store.Get(ctx, "ab/cd")
	require.ErrorIs(t, err, ErrBlobNotFound)
}

func TestNewS3Storage_RequiresBucket(t *testing.T) {
	_, err := NewS3Storage(context.Background(), S3Options{Region: "us-east-1"})
	require.Error(t, err)
}

func TestSeekableBody(t *testing.T) {
	r := strings.NewReader("0123456789")
	_, err := r.Seek(4, io.SeekStart)
	require.NoError(t, err)

	body, size, err := seekableBody(r)
	require.NoError(t, err)
	require.Equal(t, int64(6), size)
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	require.Equal(t, "456789", string(data))
}
