package utils

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveBase64Image(t *testing.T) {
	dir := t.TempDir()
	payload := base64.StdEncoding.EncodeToString([]byte("fake image bytes"))

	path, err := SaveBase64Image(payload, dir)
	if err != nil {
		t.Fatalf("SaveBase64Image: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("saved outside dest dir: %s", path)
	}
	if !strings.HasSuffix(path, ".jpg") {
		t.Errorf("raw payload should default to .jpg, got %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "fake image bytes" {
		t.Errorf("content mismatch: %q", data)
	}
}

func TestSaveBase64ImageDataURI(t *testing.T) {
	dir := t.TempDir()
	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte{0x89, 'P', 'N', 'G'})

	path, err := SaveBase64Image(payload, dir)
	if err != nil {
		t.Fatalf("SaveBase64Image: %v", err)
	}
	if !strings.HasSuffix(path, ".png") {
		t.Errorf("png data URI should keep .png extension, got %s", path)
	}
}

func TestSaveBase64ImageRejectsEmpty(t *testing.T) {
	if _, err := SaveBase64Image("  ", t.TempDir()); err == nil {
		t.Fatal("expected error for empty input")
	}
	if _, err := SaveBase64Image("!!!not-base64!!!", t.TempDir()); err == nil {
		t.Fatal("expected error for invalid base64")
	}
}
