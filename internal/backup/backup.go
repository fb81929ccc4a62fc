// Package backup keeps copies of installed files before --force replaces them.
package backup

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/klauern/pbspec/internal/logging"
	"github.com/klauern/pbspec/internal/util"
)

const (
	// BackupDirPerm is the permission for backup directories (rwxr-x---)
	BackupDirPerm = 0o750
	// BackupFilePerm is the permission for backup files (rw-r-----)
	BackupFilePerm = 0o640
)

// Store manages backups under a root directory, one subdirectory per platform.
type Store struct {
	root string
	now  func() time.Time
}

// New returns a Store rooted at root. An empty root uses the default
// location under the pb-spec home directory.
func New(root string) *Store {
	if root == "" {
		root = util.PbspecBackupsPath()
	}
	return &Store{root: util.ExpandPath(root, ""), now: time.Now}
}

// Root returns the directory backups are written to.
func (s *Store) Root() string {
	return s.root
}

// Create copies sourcePath into the platform's backup directory and records
// it in the index.
func (s *Store) Create(sourcePath, platform string) (*Metadata, error) {
	sourceInfo, err := os.Stat(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat source path %q: %w", sourcePath, err)
	}

	// #nosec G304 - sourcePath is an install target resolved by pb-spec
	content, err := os.ReadFile(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read source file %q: %w", sourcePath, err)
	}

	index, err := s.LoadIndex()
	if err != nil {
		return nil, fmt.Errorf("failed to load backup index: %w", err)
	}

	hash := sha256.Sum256(content)
	hashStr := hex.EncodeToString(hash[:])
	created := s.now()
	id := uniqueID(index, created.Format("20060102-150405-")+hashStr[:8])

	platformDir := filepath.Join(s.root, platform)
	if err := os.MkdirAll(platformDir, BackupDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create platform backup directory: %w", err)
	}

	backupPath := filepath.Join(platformDir, id+"-"+filepath.Base(sourcePath))
	if err := os.WriteFile(backupPath, content, BackupFilePerm); err != nil {
		return nil, fmt.Errorf("failed to write backup file: %w", err)
	}

	metadata := Metadata{
		ID:         id,
		SourcePath: sourcePath,
		BackupPath: backupPath,
		Platform:   platform,
		CreatedAt:  created,
		ModifiedAt: sourceInfo.ModTime(),
		Hash:       hashStr,
		Size:       sourceInfo.Size(),
	}
	if err := s.addBackup(index, metadata); err != nil {
		return nil, fmt.Errorf("failed to add backup to index: %w", err)
	}

	logging.Debug("backed up file",
		logging.Platform(platform),
		logging.Path(sourcePath),
		slogBackupID(id),
	)
	return &metadata, nil
}

// Restore writes the backup with the given id back to its source path after
// checking its hash, and returns the restored backup.
func (s *Store) Restore(id string) (*Metadata, error) {
	index, err := s.LoadIndex()
	if err != nil {
		return nil, fmt.Errorf("failed to load backup index: %w", err)
	}

	metadata, exists := index.Backups[id]
	if !exists {
		return nil, fmt.Errorf("backup %q not found", id)
	}

	content, err := os.ReadFile(metadata.BackupPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup file: %w", err)
	}

	hash := sha256.Sum256(content)
	if got := hex.EncodeToString(hash[:]); got != metadata.Hash {
		return nil, fmt.Errorf("backup file corrupted: hash mismatch (expected %s, got %s)", metadata.Hash, got)
	}

	if err := os.MkdirAll(filepath.Dir(metadata.SourcePath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create target directory: %w", err)
	}
	// #nosec G306 - restored skills are read by other tools
	if err := os.WriteFile(metadata.SourcePath, content, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write target file: %w", err)
	}
	return &metadata, nil
}

// List returns backups newest first, optionally filtered by platform.
func (s *Store) List(platform string) ([]Metadata, error) {
	index, err := s.LoadIndex()
	if err != nil {
		return nil, fmt.Errorf("failed to load backup index: %w", err)
	}

	backups := index.ListBackups()
	if platform == "" {
		return backups, nil
	}
	return slices.DeleteFunc(backups, func(m Metadata) bool {
		return m.Platform != platform
	}), nil
}

func uniqueID(index *Index, id string) string {
	if _, taken := index.Backups[id]; !taken {
		return id
	}
	for n := 2; ; n++ {
		candidate := id + "-" + strconv.Itoa(n)
		if _, taken := index.Backups[candidate]; !taken {
			return candidate
		}
	}
}
