package cache

import (
	"encoding/json"
	"errors"
	"time"
)

// CacheEntry is a single cached value with expiration metadata.
//
//nolint:revive // CacheEntry is the canonical name for this exported type.
type CacheEntry struct {
	Key        string          `json:"key"`
	Data       json.RawMessage `json:"data"`
	CreatedAt  time.Time       `json:"created_at"`
	ExpiresAt  time.Time       `json:"expires_at"`
	TTLSeconds int             `json:"ttl_seconds"`
}

// NewCacheEntry creates an entry that expires ttlSeconds from now.
func NewCacheEntry(key string, data json.RawMessage, ttlSeconds int) *CacheEntry {
	now := time.Now()
	return &CacheEntry{
		Key:        key,
		Data:       data,
		CreatedAt:  now,
		ExpiresAt:  now.Add(time.Duration(ttlSeconds) * time.Second),
		TTLSeconds: ttlSeconds,
	}
}

// IsExpired reports whether the entry is past its expiration time.
func (e *CacheEntry) IsExpired() bool {
	return time.Now().After(e.ExpiresAt)
}

// Age returns the duration since the entry was created.
func (e *CacheEntry) Age() time.Duration {
	return time.Since(e.CreatedAt)
}

// TimeUntilExpiration returns the remaining lifetime, or 0 if expired.
func (e *CacheEntry) TimeUntilExpiration() time.Duration {
	return max(time.Until(e.ExpiresAt), 0)
}

// Decode unmarshals the cached data into v.
func (e *CacheEntry) Decode(v any) error {
	if e == nil {
		return errors.New("nil cache entry")
	}
	return json.Unmarshal(e.Data, v)
}

// MarshalJSON writes times as RFC3339 so cache files stay readable.
func (e *CacheEntry) MarshalJSON() ([]byte, error) {
	type Alias CacheEntry
	return json.Marshal(&struct {
		*Alias

		CreatedAt string `json:"created_at"`
		ExpiresAt string `json:"expires_at"`
	}{
		Alias:     (*Alias)(e),
		CreatedAt: e.CreatedAt.Format(time.RFC3339Nano),
		ExpiresAt: e.ExpiresAt.Format(time.RFC3339Nano),
	})
}

// UnmarshalJSON parses the RFC3339 timestamps written by MarshalJSON.
func (e *CacheEntry) UnmarshalJSON(data []byte) error {
	if e == nil {
		return errors.New("cannot unmarshal into nil CacheEntry")
	}
	type Alias CacheEntry
	aux := &struct {
		*Alias

		CreatedAt string `json:"created_at"`
		ExpiresAt string `json:"expires_at"`
	}{
		Alias: (*Alias)(e),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	var err error
	if e.CreatedAt, err = time.Parse(time.RFC3339Nano, aux.CreatedAt); err != nil {
		return err
	}
	e.ExpiresAt, err = time.Parse(time.RFC3339Nano, aux.ExpiresAt)
	return err
}
