package searchutil

import (
	"crypto/rand"
	"strings"

	"github.com/oklog/ulid/v2"
)

// IDPrefix prefixes every token from GenerateID.
const IDPrefix = "ss-"

// ulidTimeChars is the length of the timestamp part of an encoded ULID.
const ulidTimeChars = 10

// idRandomChars is how many random chars GenerateID keeps.
const idRandomChars = 10

// GenerateID returns a short random token such as "ss-4x8k1r0zq2", suitable
// for element ids within one session. It is not cryptographically secure.
func GenerateID() string {
	// Fresh entropy per call. ulid.Make is monotonic within a millisecond, so
	// its leading random chars repeat across a burst.
	id := ulid.MustNew(ulid.Now(), rand.Reader).String()
	return IDPrefix + strings.ToLower(id[ulidTimeChars:ulidTimeChars+idRandomChars])
}

// GenerateSortableID returns a lowercase ULID. IDs sort by creation time.
func GenerateSortableID() string {
	return strings.ToLower(ulid.Make().String())
}
