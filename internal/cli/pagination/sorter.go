package pagination

import (
	"slices"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/rshade/selectkit/internal/searchutil"
)

// Sorter sorts items by a field.
type Sorter interface {
	// Sort returns a sorted copy of items.
	Sort(items []searchutil.Item, field, order string) []searchutil.Item
}

// ItemSorter sorts records like a clickable table column: when both values
// parse as numbers they compare numerically, otherwise they compare as text
// using locale collation.
type ItemSorter struct {
	mu       sync.Mutex // collate.Collator is not safe for concurrent use
	collator *collate.Collator
}

// NewItemSorter creates an ItemSorter using English collation rules.
func NewItemSorter() *ItemSorter {
	return &ItemSorter{
		collator: collate.New(language.English, collate.IgnoreCase),
	}
}

// Sort returns a stably sorted copy of items. An empty field returns items unchanged.
func (s *ItemSorter) Sort(items []searchutil.Item, field, order string) []searchutil.Item {
	if field == "" {
		return items
	}

	sorted := slices.Clone(items)

	s.mu.Lock()
	defer s.mu.Unlock()

	slices.SortStableFunc(sorted, func(a, b searchutil.Item) int {
		c := s.compare(a.Get(field), b.Get(field))
		if order == SortOrderDesc {
			return -c
		}
		return c
	})
	return sorted
}

func (s *ItemSorter) compare(a, b any) int {
	aText := strings.TrimSpace(searchutil.ToString(a))
	bText := strings.TrimSpace(searchutil.ToString(b))

	aNum, aErr := strconv.ParseFloat(aText, 64)
	bNum, bErr := strconv.ParseFloat(bText, 64)
	if aErr == nil && bErr == nil {
		switch {
		case aNum < bNum:
			return -1
		case aNum > bNum:
			return 1
		default:
			return 0
		}
	}
	return s.collator.CompareString(aText, bText)
}
