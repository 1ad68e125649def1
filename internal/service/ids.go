package service

import (
	"context"
	"fmt"

	"github.com/jaevor/go-nanoid"
)

const (
	idLength         = 21
	storageKeyLength = 32
)

func newIDGenerator(length int) (func() string, error) {
	gen, err := nanoid.Standard(length)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize nanoid generator: %w", err)
	}
	return gen, nil
}

func uniqueID(ctx context.Context, generate func() string, exists func(context.Context, string) (bool, error)) (string, error) {
	maxRetries := 10

	for i := 0; i < maxRetries; i++ {
		id := generate()
		taken, err := exists(ctx, id)
		if err != nil {
			return "", fmt.Errorf("failed to check for id existence: %w", err)
		}
		if !taken {
			return id, nil
		}
	}

	return "", fmt.Errorf("failed to generate a unique ID after %d attempts", maxRetries)
}
