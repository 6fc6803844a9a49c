package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fridgemate/domain"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore[record](t.TempDir(), "records.json")

	want := []record{{Name: "Milk", Count: 2}, {Name: "Eggs", Count: 12}}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Load = %v, want %v", got, want)
	}
}

func TestFileStoreNeverWritten(t *testing.T) {
	store := NewFileStore[record](t.TempDir(), "records.json")

	_, err := store.Load()
	if !errors.Is(err, domain.ErrCollectionNotFound) {
		t.Errorf("Load on missing file: got %v, want ErrCollectionNotFound", err)
	}
}

func TestFileStoreDecodeError(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "records.json"), []byte("{oops"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewFileStore[record](dir, "records.json")
	_, err := store.Load()
	if !errors.Is(err, domain.ErrCollectionDecode) {
		t.Errorf("Load on garbage: got %v, want ErrCollectionDecode", err)
	}
}

func TestFileStoreSaveEmptyIsNotMissing(t *testing.T) {
	store := NewFileStore[record](t.TempDir(), "records.json")

	if err := store.Save([]record{}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Load = %v, want empty", got)
	}
}

func TestFileStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store := NewFileStore[record](dir, "records.json")

	if err := store.Save([]record{{Name: "Milk", Count: 1}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := store.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
}
