package backup

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"
)

// Metadata describes a single backup.
type Metadata struct {
	ID         string    `json:"id"`          // timestamp and content hash prefix
	SourcePath string    `json:"source_path"` // file that was about to be overwritten
	BackupPath string    `json:"backup_path"`
	Platform   string    `json:"platform"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"` // source modification time
	Hash       string    `json:"hash"`        // SHA256 of content
	Size       int64     `json:"size"`
}

// Index lists every backup under a Store's root.
type Index struct {
	Version string              `json:"version"`
	Updated time.Time           `json:"updated"`
	Backups map[string]Metadata `json:"backups"` // Key: backup ID
}

const (
	// IndexVersion is the current version of the backup index format
	IndexVersion = "1.0"
	// IndexFilename is the name of the index file
	IndexFilename = "index.json"
)

// LoadIndex reads the index, returning an empty one when none exists yet.
func (s *Store) LoadIndex() (*Index, error) {
	indexPath := filepath.Join(s.root, IndexFilename)

	// #nosec G304 - indexPath is built from the store root
	data, err := os.ReadFile(indexPath)
	if errors.Is(err, fs.ErrNotExist) {
		return &Index{
			Version: IndexVersion,
			Updated: s.now(),
			Backups: make(map[string]Metadata),
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read index file: %w", err)
	}

	var index Index
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("failed to parse index file: %w", err)
	}
	if index.Backups == nil {
		index.Backups = make(map[string]Metadata)
	}
	return &index, nil
}

// SaveIndex writes the index to disk.
func (s *Store) SaveIndex(index *Index) error {
	if err := os.MkdirAll(s.root, BackupDirPerm); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	index.Updated = s.now()
	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal index: %w", err)
	}

	if err := os.WriteFile(filepath.Join(s.root, IndexFilename), data, BackupFilePerm); err != nil {
		return fmt.Errorf("failed to write index file: %w", err)
	}
	return nil
}

func (s *Store) addBackup(index *Index, metadata Metadata) error {
	if index.Backups == nil {
		index.Backups = make(map[string]Metadata)
	}
	index.Backups[metadata.ID] = metadata
	return s.SaveIndex(index)
}

// ListBackups returns all backups sorted by creation time, newest first.
func (idx *Index) ListBackups() []Metadata {
	backups := make([]Metadata, 0, len(idx.Backups))
	for _, b := range idx.Backups {
		backups = append(backups, b)
	}
	slices.SortFunc(backups, func(a, b Metadata) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return backups
}

func slogBackupID(id string) slog.Attr {
	return slog.String("backup_id", id)
}
