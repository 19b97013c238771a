// Package cache provides a file-based key/value cache with TTL expiration.
//
// Search results are cached so repeated queries over the same item files skip
// loading, filtering and sorting. Key features:
//   - One JSON file per entry in ~/.selectkit/cache/ (or SELECTKIT_CACHE_DIR)
//   - Default expiration of one day, overridable per store and per entry
//   - Expired entries are removed on read and by CleanupExpired
//   - SHA256-based keys built from normalized search parameters
package cache
