package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// cacheFileExtension is the file extension used for cache entries.
const cacheFileExtension = ".json"

// Common cache errors.
var (
	ErrCacheNotFound   = errors.New("cache entry not found")
	ErrCacheExpired    = errors.New("cache entry expired")
	ErrInvalidCacheKey = errors.New("cache key cannot be empty")
	ErrCacheDisabled   = errors.New("cache is disabled")
)

// Stats summarizes the cache directory.
type Stats struct {
	Directory  string `json:"directory"   yaml:"directory"`
	Entries    int    `json:"entries"     yaml:"entries"`
	Expired    int    `json:"expired"     yaml:"expired"`
	SizeBytes  int64  `json:"size_bytes"  yaml:"size_bytes"`
	TTLSeconds int    `json:"ttl_seconds" yaml:"ttl_seconds"`
}

// FileStore stores cache entries as JSON files in one directory.
// Safe for concurrent use.
type FileStore struct {
	directory  string
	enabled    bool
	ttlSeconds int

	mu sync.RWMutex
}

// NewFileStore creates a file store, creating directory if needed.
// A disabled store accepts no directory and rejects every operation.
func NewFileStore(directory string, enabled bool, ttlSeconds int) (*FileStore, error) {
	if !enabled {
		return &FileStore{enabled: false}, nil
	}
	if directory == "" {
		return nil, errors.New("cache directory cannot be empty")
	}
	if err := os.MkdirAll(directory, 0750); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &FileStore{
		directory:  directory,
		enabled:    true,
		ttlSeconds: ttlSeconds,
	}, nil
}

// Get returns the entry for key. Expired entries are deleted and reported as
// ErrCacheExpired.
func (s *FileStore) Get(key string) (*CacheEntry, error) {
	if !s.enabled {
		return nil, ErrCacheDisabled
	}
	if key == "" {
		return nil, ErrInvalidCacheKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	filePath := s.keyToFilePath(key)
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrCacheNotFound
		}
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	var entry CacheEntry
	if unmarshalErr := json.Unmarshal(data, &entry); unmarshalErr != nil {
		_ = os.Remove(filePath)
		return nil, fmt.Errorf("failed to unmarshal cache entry: %w", unmarshalErr)
	}

	if entry.IsExpired() {
		_ = os.Remove(filePath)
		return nil, ErrCacheExpired
	}
	return &entry, nil
}

// Set stores data under key with the store's default TTL.
func (s *FileStore) Set(key string, data json.RawMessage) error {
	return s.SetWithTTL(key, data, s.ttlSeconds)
}

// SetWithTTL stores data under key, expiring after ttlSeconds.
func (s *FileStore) SetWithTTL(key string, data json.RawMessage, ttlSeconds int) error {
	if !s.enabled {
		return ErrCacheDisabled
	}
	if key == "" {
		return ErrInvalidCacheKey
	}

	entryData, err := json.MarshalIndent(NewCacheEntry(key, data, ttlSeconds), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	filePath := s.keyToFilePath(key)
	tempPath := filePath + ".tmp"
	if writeErr := os.WriteFile(tempPath, entryData, 0600); writeErr != nil {
		return fmt.Errorf("failed to write cache file: %w", writeErr)
	}
	if renameErr := os.Rename(tempPath, filePath); renameErr != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to rename cache file: %w", renameErr)
	}
	return nil
}

// SetValue marshals v and stores it under key.
func (s *FileStore) SetValue(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.Set(key, data)
}

// Delete removes key. Missing keys are not an error.
func (s *FileStore) Delete(key string) error {
	if !s.enabled {
		return ErrCacheDisabled
	}
	if key == "" {
		return ErrInvalidCacheKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.keyToFilePath(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete cache file: %w", err)
	}
	return nil
}

// Clear removes every cache entry.
func (s *FileStore) Clear() error {
	if !s.enabled {
		return ErrCacheDisabled
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	files, err := s.entryFiles()
	if err != nil {
		return err
	}
	for _, path := range files {
		if removeErr := os.Remove(path); removeErr != nil {
			return fmt.Errorf("failed to remove cache file %s: %w", filepath.Base(path), removeErr)
		}
	}
	return nil
}

// CleanupExpired removes expired and unreadable entries and returns how many
// files were removed.
func (s *FileStore) CleanupExpired() (int, error) {
	if !s.enabled {
		return 0, ErrCacheDisabled
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	files, err := s.entryFiles()
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, path := range files {
		if _, ok := readEntry(path); ok {
			continue
		}
		if os.Remove(path) == nil {
			removed++
		}
	}
	return removed, nil
}

// Stats reports entry counts and total size.
func (s *FileStore) Stats() (Stats, error) {
	if !s.enabled {
		return Stats{}, ErrCacheDisabled
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	files, err := s.entryFiles()
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{Directory: s.directory, TTLSeconds: s.ttlSeconds, Entries: len(files)}
	for _, path := range files {
		if info, statErr := os.Stat(path); statErr == nil {
			stats.SizeBytes += info.Size()
		}
		if _, ok := readEntry(path); !ok {
			stats.Expired++
		}
	}
	return stats, nil
}

// IsEnabled returns true if caching is enabled.
func (s *FileStore) IsEnabled() bool {
	return s.enabled
}

// Directory returns the cache directory path.
func (s *FileStore) Directory() string {
	return s.directory
}

// TTL returns the default TTL in seconds.
func (s *FileStore) TTL() int {
	return s.ttlSeconds
}

// readEntry loads the entry at path; ok is false for unreadable or expired entries.
func readEntry(path string) (*CacheEntry, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var entry CacheEntry
	if json.Unmarshal(data, &entry) != nil || entry.IsExpired() {
		return nil, false
	}
	return &entry, true
}

// entryFiles lists cache entry files. Must be called with mu held.
func (s *FileStore) entryFiles() ([]string, error) {
	dirEntries, err := os.ReadDir(s.directory)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache directory: %w", err)
	}
	files := make([]string, 0, len(dirEntries))
	for _, e := range dirEntries {
		if e.IsDir() || filepath.Ext(e.Name()) != cacheFileExtension {
			continue
		}
		files = append(files, filepath.Join(s.directory, e.Name()))
	}
	return files, nil
}

// keyToFilePath converts a cache key to a filesystem-safe path.
func (s *FileStore) keyToFilePath(key string) string {
	r := strings.NewReplacer("/", "_", "\\", "_", ":", "_")
	return filepath.Join(s.directory, r.Replace(key)+cacheFileExtension)
}
