package learned

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/solintent/engine/internal/intent"
)

// FileStore is the default backend: a single JSON file under
// data/learned-intents.json per the external interface (§6), loaded
// lazily and idempotently on first query, guarded by one RWMutex per
// the concurrency model's "single lock per map" rule for read-mostly
// shared state.
type FileStore struct {
	path string

	mu      sync.RWMutex
	loaded  bool
	records []intent.LearnedPattern
}

// NewFileStore builds a store backed by the given path. The file is not
// touched until the first Lookup or Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) ensureLoaded() {
	if s.loaded {
		return
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", s.path).Msg("learned store: read failed, starting empty")
		}
		s.loaded = true
		return
	}
	var records []intent.LearnedPattern
	if err := json.Unmarshal(data, &records); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("learned store: corrupt file, starting empty")
		s.loaded = true
		return
	}
	s.records = records
	s.loaded = true
}

// Lookup implements the two-tier algorithm from store.go against the
// in-memory record set, loading it first if needed.
func (s *FileStore) Lookup(_ context.Context, prompt string) (*intent.ParsedIntent, bool, error) {
	s.mu.Lock()
	s.ensureLoaded()
	records := s.records
	s.mu.Unlock()

	result, ok := lookupInRecords(records, prompt)
	return result, ok, nil
}

// Save appends a record unless one with the same normalized key
// already exists (the store never contains two entries with the same
// normalized key — an explicit invariant of §3). The write is
// create-dir-then-atomic-rename: write to a temp file in the same
// directory, then os.Rename over the target, so a crash mid-write
// never leaves a truncated file behind.
func (s *FileStore) Save(_ context.Context, raw string, result intent.ParsedIntent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded()

	normalized := Normalize(raw)
	for _, r := range s.records {
		if r.NormalizedKey == normalized {
			return nil
		}
	}

	s.records = append(s.records, intent.LearnedPattern{
		RawPrompt:     raw,
		NormalizedKey: normalized,
		Result:        result,
	})

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".learned-intents-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, s.path)
}
