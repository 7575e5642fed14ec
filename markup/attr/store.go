// Package attr holds the ordered attribute map that backs an element's
// open tag.
package attr

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// Pair is a single name/value attribute.
type Pair struct {
	Name  string
	Value string
}

// FromMap turns m into pairs sorted by name so the render order is stable.
func FromMap(m map[string]string) []Pair {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)

	pairs := make([]Pair, 0, len(names))
	for _, n := range names {
		pairs = append(pairs, Pair{Name: n, Value: m[n]})
	}
	return pairs
}

// Store is an insertion ordered attribute map. A nil *Store reads as empty.
type Store struct {
	names  []string
	values map[string]string
}

// New returns a store seeded with pairs.
func New(pairs ...Pair) *Store {
	s := &Store{values: make(map[string]string, len(pairs))}
	s.SetAll(pairs...)
	return s
}

// Clone returns a copy that shares no state with s.
func (s *Store) Clone() *Store {
	c := &Store{values: make(map[string]string, s.Len())}
	if s == nil {
		return c
	}
	c.names = append(make([]string, 0, len(s.names)), s.names...)
	for k, v := range s.values {
		c.values[k] = v
	}
	return c
}

// ValidName reports whether name can be written into an open tag as is.
// Empty names and names holding whitespace, quotes, '>', '/' or '=' are
// rejected.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
		switch r {
		case '"', '\'', '>', '<', '/', '=':
			return false
		}
	}
	return true
}

// Set overwrites name in place, or appends it when unseen. Names that fail
// ValidName are dropped.
func (s *Store) Set(name, value string) {
	if !ValidName(name) {
		return
	}
	if s.values == nil {
		s.values = make(map[string]string)
	}
	if _, ok := s.values[name]; !ok {
		s.names = append(s.names, name)
	}
	s.values[name] = value
}

func (s *Store) SetAll(pairs ...Pair) {
	for _, p := range pairs {
		s.Set(p.Name, p.Value)
	}
}

// Forget removes name. Missing names are ignored.
func (s *Store) Forget(name string) {
	if _, ok := s.values[name]; !ok {
		return
	}
	delete(s.values, name)
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
}

// Get returns the value stored for name, or fallback.
func (s *Store) Get(name, fallback string) string {
	if s == nil {
		return fallback
	}
	if v, ok := s.values[name]; ok {
		return v
	}
	return fallback
}

func (s *Store) Has(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.values[name]
	return ok
}

// AddClass unions the whitespace separated tokens in values into the
// class attribute. Existing tokens keep their position.
func (s *Store) AddClass(values ...string) {
	var (
		tokens = strings.Fields(s.Get("class", ""))
		seen   = make(map[string]bool, len(tokens))
	)
	for _, t := range tokens {
		seen[t] = true
	}
	added := false
	for _, v := range values {
		for _, t := range strings.Fields(v) {
			if seen[t] {
				continue
			}
			seen[t] = true
			tokens = append(tokens, t)
			added = true
		}
	}
	if !added {
		return
	}
	s.Set("class", strings.Join(tokens, " "))
}

func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

func (s *Store) IsEmpty() bool {
	return s.Len() == 0
}

// Pairs returns the attributes in insertion order.
func (s *Store) Pairs() []Pair {
	pairs := make([]Pair, 0, s.Len())
	if s == nil {
		return pairs
	}
	for _, n := range s.names {
		pairs = append(pairs, Pair{Name: n, Value: s.values[n]})
	}
	return pairs
}

// Render serializes the store as space separated name="value" tokens.
// Values are escaped; names were checked by Set.
func (s *Store) Render() string {
	if s.IsEmpty() {
		return ""
	}
	var b strings.Builder
	for i, n := range s.names {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(n)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(s.values[n]))
		b.WriteByte('"')
	}
	return b.String()
}
