package storage

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndRead(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	if err := store.Save("U123photo.jpg", []byte("bytes")); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(store.dir, "U123photo.jpg"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "bytes" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	store := NewDiskStore(dir)

	if err := store.Save("a.jpg", []byte("x")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "a.jpg")); err != nil {
		t.Fatalf("stat: %v", err)
	}
}

func TestSaveRejectsPathEscape(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	for _, name := range []string{"", "../escape.jpg", "nested/name.jpg"} {
		if err := store.Save(name, []byte("x")); err != ErrBadName {
			t.Fatalf("expected ErrBadName for %q, got %v", name, err)
		}
	}
}

func TestSaveThumbnail(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 600, 400))); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}

	if err := store.SaveThumbnail("pic.png", buf.Bytes()); err != nil {
		t.Fatalf("thumbnail: %v", err)
	}
	if _, err := os.Stat(filepath.Join(store.dir, "thumb_pic.png")); err != nil {
		t.Fatalf("stat thumbnail: %v", err)
	}
}

func TestSaveThumbnailRejectsNonImage(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	if err := store.SaveThumbnail("notes.txt", []byte("plain text")); err == nil {
		t.Fatalf("expected decode error")
	}
}
