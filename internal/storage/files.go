package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ayabdnabi/virtual-pet/internal/catalog"
	"github.com/ayabdnabi/virtual-pet/internal/platform/logger"
)

const saveExt = ".toml"

// SavePath names the save file for a pet under the data directory.
func SavePath(dataDir, petName string) string {
	return filepath.Join(dataDir, "saves", petName+saveExt)
}

// ValidSaveName reports whether a pet name can safely serve as a save file
// name.
func ValidSaveName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}

// SaveGame writes the state to the pet's slot, creating the saves
// directory as needed. Callers serialize writes per slot.
func SaveGame(dataDir string, gs GameState) error {
	data, err := Encode(gs)
	if err != nil {
		return err
	}
	path := SavePath(dataDir, gs.Pet.Name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create saves directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}
	return nil
}

// LoadGame reads and decodes the named pet's slot. A missing or malformed
// file is an error; the caller's in-memory state is untouched either way.
func LoadGame(dataDir, petName string, cat *catalog.Catalog, log logger.Logger) (GameState, error) {
	data, err := os.ReadFile(SavePath(dataDir, petName))
	if err != nil {
		return GameState{}, fmt.Errorf("failed to read save file: %w", err)
	}
	return Decode(data, cat, log)
}

// DeleteSave removes the named pet's slot.
func DeleteSave(dataDir, petName string) error {
	if err := os.Remove(SavePath(dataDir, petName)); err != nil {
		return fmt.Errorf("failed to delete save file: %w", err)
	}
	return nil
}

// ListSaves returns the pet names with a save slot, sorted. A data
// directory with no saves yet lists empty.
func ListSaves(dataDir string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(dataDir, "saves"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read saves directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), saveExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), saveExt))
	}
	sort.Strings(names)
	return names, nil
}

// CountSaves reports how many save slots are in use. The slot cap is
// policy for the caller; the codec itself never refuses a write.
func CountSaves(dataDir string) (int, error) {
	names, err := ListSaves(dataDir)
	if err != nil {
		return 0, err
	}
	return len(names), nil
}
