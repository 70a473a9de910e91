// Package intern deduplicates text values: equal content maps to one
// canonical Text instance, so programs holding many repeated short strings
// (symbol tables, parsed tokens) pay for each distinct content once.
package intern

import (
	"github.com/arloliu/tinytext"
)

// Table maps content to canonical values, keyed by xxHash64 with a bucket
// per hash. Hash collisions are handled by byte equality within the bucket,
// so colliding contents stay distinct, merely sharing a bucket.
//
// Tables are not safe for concurrent use; wrap one in a mutex or shard it
// if multiple goroutines intern.
type Table struct {
	buckets map[uint64][]tinytext.Text
	count   int
}

// NewTable creates an empty interning table.
func NewTable() *Table {
	return &Table{
		buckets: make(map[uint64][]tinytext.Text),
	}
}

// Intern returns the canonical instance for v's content. The first value
// with a given content becomes canonical; later equal values return it
// unchanged, allowing the argument (and its buffer) to be dropped.
func (t *Table) Intern(v tinytext.Text) tinytext.Text {
	h := v.Hash()
	for _, c := range t.buckets[h] {
		if c.Equal(v) {
			return c
		}
	}

	t.buckets[h] = append(t.buckets[h], v)
	t.count++

	return v
}

// InternString validates s and interns it.
func (t *Table) InternString(s string) (tinytext.Text, error) {
	v, err := tinytext.FromString(s)
	if err != nil {
		return tinytext.Empty, err
	}

	return t.Intern(v), nil
}

// InternBytes validates data and interns it.
func (t *Table) InternBytes(data []byte) (tinytext.Text, error) {
	v, err := tinytext.FromBytes(data)
	if err != nil {
		return tinytext.Empty, err
	}

	return t.Intern(v), nil
}

// Len returns the number of distinct contents interned so far.
func (t *Table) Len() int {
	return t.count
}
