package service

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func blobCount(t *testing.T, dir string) int {
	t.Helper()
	n := 0
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			n++
		}
		return nil
	})
	require.NoError(t, err)
	return n
}

func upload(name, mime string, size int) UploadInput {
	return UploadInput{Name: name, MimeType: mime, Body: bytes.NewReader(bytes.Repeat([]byte("x"), size))}
}

func strPtr(s string) *string { return &s }
