package knowledge

import "strings"

// Entry is one fact about the candidate, addressed as "category/key".
type Entry struct {
	Category string
	Key      string
	Value    string
}

func (e Entry) Ref() string {
	return e.Category + "/" + e.Key
}

// Base is the candidate profile the scorer and tailor prompt against,
// in insertion order.
type Base struct {
	entries []Entry
}

func NewBase(entries []Entry) *Base {
	return &Base{entries: entries}
}

func (b *Base) Len() int {
	return len(b.entries)
}

func (b *Base) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Get returns the value stored under category/key, or "" when absent.
func (b *Base) Get(category, key string) string {
	for _, e := range b.entries {
		if e.Category == category && e.Key == key {
			return e.Value
		}
	}
	return ""
}

// Format renders the base as a markdown definition block, one
// "**category/key:** value" line per entry, for prompt embedding.
func (b *Base) Format() string {
	lines := make([]string, 0, len(b.entries))
	for _, e := range b.entries {
		lines = append(lines, "**"+e.Ref()+":** "+e.Value)
	}
	return strings.Join(lines, "\n")
}
