package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/dirsum/dirsum/pkg/dirsum"
)

// CurrentVersion is the manifest format version written by this build.
const CurrentVersion = 1

// Entry records one file's digest at manifest creation time.
type Entry struct {
	Path   string `yaml:"path"`
	Digest string `yaml:"digest"`
}

// Manifest is the on-disk record of a scanned directory tree.
type Manifest struct {
	Version     int       `yaml:"version"`
	ID          string    `yaml:"id"`
	Algorithm   string    `yaml:"algorithm"`
	Root        string    `yaml:"root"`
	GeneratedAt time.Time `yaml:"generated_at"`
	Entries     []Entry   `yaml:"entries"`
}

// New builds a manifest from scan output. Entries are sorted by path so
// repeated runs over an unchanged tree produce identical files modulo
// the id and timestamp.
func New(root string, kind dirsum.ChecksumKind, digests []dirsum.FileDigest) Manifest {
	entries := make([]Entry, 0, len(digests))
	for _, d := range digests {
		// Slash-normalized so manifests travel across platforms.
		entries = append(entries, Entry{Path: filepath.ToSlash(d.Path), Digest: d.Digest})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})

	return Manifest{
		Version:     CurrentVersion,
		ID:          uuid.NewString(),
		Algorithm:   kind.String(),
		Root:        root,
		GeneratedAt: time.Now().UTC(),
		Entries:     entries,
	}
}

// Kind returns the checksum kind the manifest was generated with.
func (m *Manifest) Kind() (dirsum.ChecksumKind, error) {
	return dirsum.ParseChecksumKind(m.Algorithm)
}

// Index returns the entries as a path -> digest lookup map.
func (m *Manifest) Index() map[string]string {
	idx := make(map[string]string, len(m.Entries))
	for _, e := range m.Entries {
		idx[e.Path] = e.Digest
	}
	return idx
}

// Validate checks structural invariants of a loaded manifest.
func (m *Manifest) Validate() error {
	if m.Version != CurrentVersion {
		return fmt.Errorf("unsupported manifest version %d: %w", m.Version, dirsum.ErrInvalidConfig)
	}
	kind, err := m.Kind()
	if err != nil {
		return err
	}
	for _, e := range m.Entries {
		if e.Path == "" {
			return fmt.Errorf("manifest entry with empty path: %w", dirsum.ErrInvalidConfig)
		}
		// Empty digests are legal: they record files that were present
		// but unreadable when the manifest was written.
		if e.Digest != "" && len(e.Digest) != kind.HexLength() {
			return fmt.Errorf("manifest entry %s: digest length %d does not match %s: %w",
				e.Path, len(e.Digest), kind, dirsum.ErrInvalidConfig)
		}
	}
	return nil
}

// Read loads and validates a manifest file.
// A missing file yields dirsum.ErrManifestNotFound.
func Read(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Manifest{}, fmt.Errorf("%s: %w", path, dirsum.ErrManifestNotFound)
		}
		return Manifest{}, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// Write serializes the manifest to path. The file is written to a
// temporary sibling first and renamed into place so a crashed run never
// leaves a truncated manifest behind.
func Write(path string, m Manifest) error {
	if err := m.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("failed to serialize manifest: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary manifest: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close manifest: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace manifest: %w", err)
	}
	return nil
}

// Exists reports whether a manifest file is present at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
