// Package intern implements the two interning schemes described in
// spec.md §3: Name (case-insensitive) and StringID (case-sensitive),
// both stable 64-bit hashes registered in a process-wide table so the
// original text can always be recovered.
//
// Grounded on internal/core/string_pool.go's dedup-by-lookup-map shape
// and on internal/idcodec for the "stable id round-trips to source"
// contract; the hash function itself is xxhash (the teacher's own
// fast-hash choice in file_content_store.go) in place of the original
// C implementation's CRC64.
package intern

import (
	"fmt"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Name is a case-insensitive interned 64-bit identifier. Zero means
// "no name / empty".
type Name uint64

// StringID is a case-sensitive interned 64-bit identifier. Zero means
// "no name / empty".
type StringID uint64

func (n Name) IsEmpty() bool     { return n == 0 }
func (s StringID) IsEmpty() bool { return s == 0 }

// entry is what a registry stores per hash: the original (first-seen
// casing) text returned to callers, and the key that text was hashed
// from (lowercased for Name, identical to original for StringID).
type entry struct {
	original string
	key      string
}

// registry is a process-wide hash -> entry table, one per interning
// scheme. Reads are lock-free-able via RWMutex; writes take the write
// lock and double-check, same pattern as StringPool.Intern.
type registry struct {
	mu     sync.RWMutex
	lookup map[uint64]entry
}

func newRegistry() *registry {
	return &registry{lookup: make(map[uint64]entry)}
}

// insert registers hash -> (key, original) if absent, returning the
// original text that ended up stored for that hash so the caller can
// detect a genuine collision: a DIFFERENT key already claiming the
// same hash. key is what was actually hashed (so two different
// casings of the same Name, both hashing the same lowercased key,
// are never flagged as colliding), while original is what callers get
// back from a lookup.
func (r *registry) insert(hash uint64, key, original string) (stored string, collided bool) {
	r.mu.RLock()
	if e, ok := r.lookup[hash]; ok {
		r.mu.RUnlock()
		return e.original, e.key != key
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.lookup[hash]; ok {
		return e.original, e.key != key
	}
	r.lookup[hash] = entry{original: original, key: key}
	return original, false
}

func (r *registry) get(hash uint64) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.lookup[hash]
	return e.original, ok
}

var (
	nameRegistry     = newRegistry()
	stringIDRegistry = newRegistry()
)

// NewName interns s case-insensitively: the hash is computed over a
// lowercased copy, but the ORIGINAL text (first-seen casing) is what
// NameString returns. A hash of 0 is never produced for non-empty
// input: creation aborts (via panic, matching the original's BASSERT)
// rather than silently returning the reserved "empty" value.
func NewName(s string) Name {
	if s == "" {
		return Name(0)
	}
	lower := strings.ToLower(s)
	hash := xxhash.Sum64String(lower)
	if hash == 0 {
		panic(fmt.Sprintf("intern: NewName(%q) hashed to 0, an invalid value; rename to avoid this", s))
	}
	if stored, collided := nameRegistry.insert(hash, lower, s); collided {
		panic(fmt.Sprintf("intern: hash collision creating Name(%q): hash already claimed by %q", s, stored))
	}
	return Name(hash)
}

// NameString recovers the original text registered for n, or "" if n
// is empty or was never interned in this process.
func NameString(n Name) string {
	if n == 0 {
		return ""
	}
	s, _ := nameRegistry.get(uint64(n))
	return s
}

// NewStringID interns s case-sensitively.
func NewStringID(s string) StringID {
	if s == "" {
		return StringID(0)
	}
	hash := xxhash.Sum64String(s)
	if hash == 0 {
		panic(fmt.Sprintf("intern: NewStringID(%q) hashed to 0, an invalid value; rename to avoid this", s))
	}
	if stored, collided := stringIDRegistry.insert(hash, s, s); collided {
		panic(fmt.Sprintf("intern: hash collision creating StringID(%q): hash already claimed by %q", s, stored))
	}
	return StringID(hash)
}

// StringIDString recovers the original text registered for s.
func StringIDString(s StringID) string {
	if s == 0 {
		return ""
	}
	str, _ := stringIDRegistry.get(uint64(s))
	return str
}
