package storage

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/png"

	"github.com/nfnt/resize"
)

const thumbnailSize = 300

var ErrBadName = errors.New("file name must not contain path separators")

// BlobStore persists uploaded photo bytes under generated file names.
type BlobStore interface {
	Save(name string, data []byte) error
	SaveThumbnail(name string, data []byte) error
}

// DiskStore writes blobs into a flat directory, the same directory the
// frontend serves images from.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{dir: dir}
}

func (s *DiskStore) Save(name string, data []byte) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// SaveThumbnail decodes the upload and writes a bounded-size preview next
// to the original. Non-image uploads return the decode error.
func (s *DiskStore) SaveThumbnail(name string, data []byte) error {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return err
	}

	thumb := resize.Thumbnail(thumbnailSize, thumbnailSize, img, resize.Lanczos3)

	path, err := s.path("thumb_" + name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	return jpeg.Encode(out, thumb, nil)
}

func (s *DiskStore) path(name string) (string, error) {
	if name == "" || filepath.Base(name) != name {
		return "", ErrBadName
	}
	return filepath.Join(s.dir, name), nil
}
