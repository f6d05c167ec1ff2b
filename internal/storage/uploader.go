package storage

import (
	"context"
	"io"
	"path"
	"regexp"

	"github.com/google/uuid"
)

const (
	MaxUploadBytes = 5 << 20
	DefaultFolder  = "images"
)

var folderPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,31}$`)

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

func AllowedType(contentType string) bool {
	return allowedTypes[contentType]
}

type Uploader struct {
	store    Store
	maxWidth int
}

func NewUploader(store Store) *Uploader {
	return &Uploader{store: store, maxWidth: MaxWidth}
}

// Upload normalizes the image and stores it as <folder>/<uuid>.webp.
// Unknown folder names fall back to DefaultFolder.
func (u *Uploader) Upload(ctx context.Context, folder string, r io.Reader) (string, error) {
	body, err := Normalize(r, u.maxWidth)
	if err != nil {
		return "", err
	}

	if !folderPattern.MatchString(folder) {
		folder = DefaultFolder
	}
	key := path.Join(folder, uuid.NewString()+".webp")

	return u.store.Put(ctx, key, body, "image/webp")
}
