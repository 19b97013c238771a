package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// KeyParams are the search parameters that determine a cached result.
type KeyParams struct {
	Operation string   `json:"operation"`
	Sources   []string `json:"sources"`
	Query     string   `json:"query"`
	Fields    []string `json:"fields"`
	Display   string   `json:"display,omitempty"`
	SortField string   `json:"sort_field,omitempty"`
	SortOrder string   `json:"sort_order,omitempty"`

	Pagination *PaginationKeyParams `json:"pagination,omitempty"`
	Window     *WindowKeyParams     `json:"window,omitempty"`
}

// PaginationKeyParams identifies a page of results.
type PaginationKeyParams struct {
	Limit    int `json:"limit"`
	Offset   int `json:"offset"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// WindowKeyParams identifies a virtual scroll window.
type WindowKeyParams struct {
	ItemHeight      float64 `json:"item_height"`
	ContainerHeight float64 `json:"container_height"`
	ScrollTop       float64 `json:"scroll_top"`
}

// normalize returns a copy with case, whitespace and field order folded so
// equivalent requests share a key. Source order is kept: it determines item order.
func (p KeyParams) normalize() KeyParams {
	n := p
	n.Operation = strings.ToLower(strings.TrimSpace(p.Operation))
	n.Query = strings.ToLower(strings.TrimSpace(p.Query))
	n.SortOrder = strings.ToLower(strings.TrimSpace(p.SortOrder))
	n.Fields = slices.Clone(p.Fields)
	slices.Sort(n.Fields)
	n.Fields = slices.Compact(n.Fields)
	return n
}

// GenerateKey returns a SHA256 hex key for the normalized params.
func GenerateKey(params KeyParams) (string, error) {
	data, err := json.Marshal(params.normalize())
	if err != nil {
		return "", fmt.Errorf("failed to marshal cache key params: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// GenerateSimpleKey hashes the given parts joined by '|'.
func GenerateSimpleKey(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}
