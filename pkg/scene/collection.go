package scene

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrIndexOutOfRange is returned when an index does not address an entry
	// in the collection's current state.
	ErrIndexOutOfRange = errors.New("scene: index out of range")
	// ErrEntryNotFound is returned when an entry is not owned by the collection.
	ErrEntryNotFound = errors.New("scene: entry not found")
)

// Collection is the ordered list of models in a scene. Order is render order.
// Alongside each entry it keeps the label shown to the user, which only
// changes through Add and Rename.
//
// Indices are only meaningful between mutations. Collection is not safe for
// concurrent use.
type Collection struct {
	entries []*ModelEntry
	labels  []string
}

// NewCollection returns a collection holding the given entries in order.
func NewCollection(entries ...*ModelEntry) *Collection {
	c := &Collection{}
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		c.Add(entry)
	}
	return c
}

// Add appends entry and returns its index.
func (c *Collection) Add(entry *ModelEntry) int {
	c.entries = append(c.entries, entry)
	c.labels = append(c.labels, entry.DisplayName())
	return len(c.entries) - 1
}

// Remove deletes the entries at the given indices as one operation. Indices
// are resolved against the state at the start of the call; duplicates are
// ignored. If any index is out of range nothing is removed.
func (c *Collection) Remove(indices ...int) error {
	if len(indices) == 0 {
		return nil
	}
	unique := make(map[int]struct{}, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(c.entries) {
			return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, idx, len(c.entries))
		}
		unique[idx] = struct{}{}
	}
	ordered := make([]int, 0, len(unique))
	for idx := range unique {
		ordered = append(ordered, idx)
	}
	// highest first, so earlier removals never shift a pending index
	sort.Sort(sort.Reverse(sort.IntSlice(ordered)))
	for _, idx := range ordered {
		c.entries = append(c.entries[:idx], c.entries[idx+1:]...)
		c.labels = append(c.labels[:idx], c.labels[idx+1:]...)
	}
	return nil
}

// Rename refreshes the label of entry from its current display name, leaving
// its position unchanged.
func (c *Collection) Rename(entry *ModelEntry) error {
	idx := c.IndexOf(entry)
	if idx < 0 {
		return ErrEntryNotFound
	}
	c.labels[idx] = entry.DisplayName()
	return nil
}

// IndexOf returns the position of entry, or -1.
func (c *Collection) IndexOf(entry *ModelEntry) int {
	if entry == nil {
		return -1
	}
	for idx, e := range c.entries {
		if e == entry {
			return idx
		}
	}
	return -1
}

// At returns the entry at idx.
func (c *Collection) At(idx int) (*ModelEntry, bool) {
	if idx < 0 || idx >= len(c.entries) {
		return nil, false
	}
	return c.entries[idx], true
}

// Len reports the number of entries.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Entries returns the entries in order. The slice is a copy; the entries are
// shared.
func (c *Collection) Entries() []*ModelEntry {
	if c == nil {
		return nil
	}
	return append([]*ModelEntry(nil), c.entries...)
}

// Labels returns the displayed labels in order.
func (c *Collection) Labels() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.labels...)
}

// Label returns the displayed label at idx.
func (c *Collection) Label(idx int) (string, bool) {
	if idx < 0 || idx >= len(c.labels) {
		return "", false
	}
	return c.labels[idx], true
}
