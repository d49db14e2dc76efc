package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"graphar/internal/domain"
	"graphar/internal/schema"
)

// ErrDuplicateName is the expected outcome of ingesting a dataset whose
// name (case-insensitive) is already in the catalog. The existing
// dataset is left untouched.
var ErrDuplicateName = errors.New("dataset name already exists")

// ErrNotFound is returned when a dataset name is not in the catalog.
var ErrNotFound = errors.New("dataset not found")

// DatasetStore manages the catalog of accepted datasets, backed by flat
// JSON files in a single directory. Newest datasets sit at the front.
type DatasetStore struct {
	mu  sync.RWMutex
	dir string

	datasets []*domain.Dataset
}

// New opens (or creates) the store directory and scans it.
func New(dir string) (*DatasetStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	s := &DatasetStore{dir: dir}
	if err := s.LoadAll(); err != nil {
		return nil, err
	}
	return s, nil
}

// Dir returns the backing directory.
func (s *DatasetStore) Dir() string { return s.dir }

// List returns the catalog, newest first.
func (s *DatasetStore) List() []*domain.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Dataset, len(s.datasets))
	copy(out, s.datasets)
	return out
}

// Get looks a dataset up by name, case-insensitively.
func (s *DatasetStore) Get(name string) (*domain.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.datasets {
		if strings.EqualFold(d.Name, name) {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Add registers a dataset in the catalog without touching disk.
// Duplicate names (case-insensitive) are rejected, first wins; new
// datasets go to the front.
func (s *DatasetStore) Add(ds *domain.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLocked(ds)
}

func (s *DatasetStore) addLocked(ds *domain.Dataset) error {
	for _, d := range s.datasets {
		if strings.EqualFold(d.Name, ds.Name) {
			return fmt.Errorf("%w: %s", ErrDuplicateName, d.Name)
		}
	}
	s.datasets = append([]*domain.Dataset{ds}, s.datasets...)
	return nil
}

// Delete removes a dataset from the catalog and deletes its backing file.
func (s *DatasetStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, d := range s.datasets {
		if !strings.EqualFold(d.Name, name) {
			continue
		}
		path := s.fileFor(d.Name)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove dataset file: %w", err)
		}
		s.datasets = append(s.datasets[:i], s.datasets[i+1:]...)
		return nil
	}
	return fmt.Errorf("%w: %s", ErrNotFound, name)
}

// LoadAll rescans the backing directory and rebuilds the catalog from
// dataset headers. Full schema validation happened at ingest time and is
// not repeated here; files that fail to decode or lack a name are
// treated as missing datasets and skipped.
func (s *DatasetStore) LoadAll() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("scan data directory: %w", err)
	}

	var datasets []*domain.Dataset
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		ds, err := readHeader(filepath.Join(s.dir, e.Name()))
		if err != nil {
			continue // partial or malformed file, skip
		}
		datasets = append(datasets, ds)
	}

	s.mu.Lock()
	s.datasets = datasets
	s.mu.Unlock()
	return nil
}

// LoadRecords reads the full record set for a cataloged dataset.
// Records already loaded are reused.
func (s *DatasetStore) LoadRecords(ds *domain.Dataset) error {
	if ds.Loaded() {
		return nil
	}
	raw, err := os.ReadFile(s.fileFor(ds.Name))
	if err != nil {
		return fmt.Errorf("read dataset file: %w", err)
	}
	doc, err := schema.Decode(raw)
	if err != nil {
		return fmt.Errorf("decode dataset %q: %w", ds.Name, err)
	}
	ds.Records = doc.Records
	ds.FieldNames = doc.FieldNames
	return nil
}

// Ingest validates raw JSON, persists it on success and adds the new
// dataset to the catalog. Name uniqueness is enforced against both the
// in-memory catalog and the files on disk; nothing is persisted on any
// failure.
func (s *DatasetStore) Ingest(raw []byte, sourceLocation string) (*domain.Dataset, *schema.ValidatedDataset, error) {
	validated, err := schema.Validate(raw)
	if err != nil {
		return nil, nil, err
	}
	doc, _ := schema.Decode(raw) // already known to decode

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.datasets {
		if strings.EqualFold(d.Name, validated.Name) {
			return nil, nil, fmt.Errorf("%w: %s", ErrDuplicateName, d.Name)
		}
	}
	path := s.fileFor(validated.Name)
	if _, err := os.Stat(path); err == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrDuplicateName, validated.Name)
	}

	if err := writePretty(path, raw); err != nil {
		return nil, nil, fmt.Errorf("persist dataset: %w", err)
	}

	ds := &domain.Dataset{
		ID:             uuid.New().String(),
		Name:           validated.Name,
		Description:    validated.Description,
		SourceLocation: sourceLocation,
		CreatedAt:      time.Now(),
		FieldNames:     doc.FieldNames,
		Records:        doc.Records,
	}
	if err := s.addLocked(ds); err != nil {
		os.Remove(path)
		return nil, nil, err
	}
	return ds, validated, nil
}

// fileFor maps a dataset name to its backing file path.
func (s *DatasetStore) fileFor(name string) string {
	return filepath.Join(s.dir, slug(name)+".json")
}

// slug lowercases a name and collapses non-alphanumerics to dashes.
func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// readHeader decodes only the name/description header of a dataset file.
func readHeader(path string) (*domain.Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var header struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(raw, &header); err != nil {
		return nil, err
	}
	if header.Name == "" {
		return nil, fmt.Errorf("dataset file %s has no name", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	return &domain.Dataset{
		ID:             uuid.New().String(),
		Name:           header.Name,
		Description:    header.Description,
		SourceLocation: path,
		CreatedAt:      info.ModTime(),
	}, nil
}

// writePretty persists the raw document re-indented for readability.
func writePretty(path string, raw []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
