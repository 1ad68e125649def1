package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type LocalStorage struct {
	basePath string
}

func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		return nil, err
	}
	return &LocalStorage{basePath: basePath}, nil
}

// getPathFromKey shards blobs by the first characters of the key so that no
// single directory grows unbounded.
func (ls *LocalStorage) getPathFromKey(key string) string {
	clean := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	if len(clean) < 4 {
		return filepath.Join(ls.basePath, clean)
	}
	return filepath.Join(ls.basePath, clean[0:2], clean[2:4], clean)
}

func (ls *LocalStorage) Save(ctx context.Context, key string, data io.Reader) (int64, error) {
	filePath := ls.getPathFromKey(key)

	if err := os.MkdirAll(filepath.Dir(filePath), os.ModePerm); err != nil {
		return 0, err
	}

	file, err := os.Create(filePath)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(file, &ctxReader{ctx: ctx, r: data})
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(filePath)
		return 0, err
	}

	return n, nil
}

func (ls *LocalStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	file, err := os.Open(ls.getPathFromKey(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("blob %s: %w", key, ErrBlobNotFound)
		}
		return nil, err
	}

	return file, nil
}

func (ls *LocalStorage) Delete(ctx context.Context, key string) error {
	err := os.Remove(ls.getPathFromKey(key))
	if os.IsNotExist(err) {
		return fmt.Errorf("blob %s: %w", key, ErrBlobNotFound)
	}

	return err
}

func (ls *LocalStorage) Copy(ctx context.Context, srcKey, dstKey string) error {
	src, err := ls.Get(ctx, srcKey)
	if err != nil {
		return err
	}
	defer src.Close()

	_, err = ls.Save(ctx, dstKey, src)
	return err
}

// ctxReader stops a long copy once the request is gone.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
