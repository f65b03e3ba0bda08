package guardian

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const ledgerFile = "guardian.toml"

// LedgerPath returns where the guardian ledger lives under dataDir. It is
// kept apart from the pet saves so wiping a save never touches the
// guardian's history.
func LedgerPath(dataDir string) string {
	return filepath.Join(dataDir, ledgerFile)
}

// LoadLedger reads the ledger from dataDir. A missing file yields a fresh
// default ledger; a present but unreadable one is an error.
func LoadLedger(dataDir string) (*Ledger, error) {
	data, err := os.ReadFile(LedgerPath(dataDir))
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read guardian ledger: %w", err)
	}

	var l Ledger
	if err := toml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to parse guardian ledger: %w", err)
	}
	return &l, nil
}

// SaveLedger writes the ledger under dataDir, creating the directory if
// needed. The file holds the secret hash, so it is not group readable.
func SaveLedger(dataDir string, l *Ledger) error {
	data, err := toml.Marshal(l)
	if err != nil {
		return fmt.Errorf("failed to encode guardian ledger: %w", err)
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := os.WriteFile(LedgerPath(dataDir), data, 0600); err != nil {
		return fmt.Errorf("failed to write guardian ledger: %w", err)
	}
	return nil
}
