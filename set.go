package mathset

import "github.com/pkg/errors"

// Set is a finite, unordered, deduplicated collection of Elements with
// value-based equality. Iteration order is unspecified and must not be
// relied on across calls or mutations. A Set is not safe for concurrent use;
// only id assignment is synchronized.
type Set struct {
	id  uint64
	tbl *table[Element]
}

var _ Collection[Element] = (*Set)(nil)

func NewSet() *Set {
	return &Set{id: nextID(), tbl: newTable[Element]()}
}

// SetOf builds a set from an element sequence, absorbing duplicates. It
// fails with ErrNullElement if any element is null.
func SetOf(elements ...Element) (*Set, error) {
	s := NewSet()
	for _, e := range elements {
		if err := s.Add(e); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// ID is the unique id taken from the identity registry at construction.
// Diagnostic only: it never participates in equality or hashing.
func (s *Set) ID() uint64 { return s.id }

// Add inserts e unless an equal element is already present. Adding the null
// element fails with ErrNullElement; adding a duplicate is a no-op.
func (s *Set) Add(e Element) error {
	if e.IsNull() {
		return errors.Wrap(ErrNullElement, "add")
	}
	s.tbl.insert(e)
	return nil
}

// Remove reports whether an equal element was found and removed. Removing an
// absent or null element returns false rather than failing; the asymmetry
// with Add is deliberate.
func (s *Set) Remove(e Element) bool {
	if e.IsNull() {
		return false
	}
	return s.tbl.remove(e)
}

// Contains is false for the null element.
func (s *Set) Contains(e Element) bool {
	if e.IsNull() {
		return false
	}
	return s.tbl.contains(e)
}

// Get returns the stored element equal to e, recovering the canonical
// instance behind a structurally equal probe.
func (s *Set) Get(e Element) (Element, bool) {
	if e.IsNull() {
		return Element{}, false
	}
	return s.tbl.get(e)
}

func (s *Set) Len() int { return s.tbl.size }

func (s *Set) IsEmpty() bool { return s.tbl.size == 0 }

func (s *Set) Clear() { s.tbl.clear() }

func (s *Set) Items() []Element { return s.tbl.items() }

// Each walks the members until fn returns false.
func (s *Set) Each(fn func(e Element) bool) { s.tbl.each(fn) }

// Clone deep-copies the set: nested members are cloned recursively into new
// sets with fresh ids, so the copy shares no mutable structure with the
// original. Assumes sets are acyclic.
func (s *Set) Clone() *Set {
	out := NewSet()
	s.tbl.each(func(e Element) bool {
		if inner, ok := e.SetValue(); ok {
			out.tbl.insert(Nested(inner.Clone()))
		} else {
			out.tbl.insert(e)
		}
		return true
	})
	return out
}

// Equal holds iff both sets have the same cardinality and every member of
// one is contained in the other, regardless of order. A nil other is never
// equal.
func (s *Set) Equal(other *Set) bool {
	if other == nil {
		return false
	}
	return s.tbl.equal(other.tbl)
}

// Hash combines member hashes order-independently, so equal sets hash equal.
func (s *Set) Hash() uint64 { return s.tbl.hash() }

// String renders the literal form, members joined with ", " in unspecified
// order. Round-trips through Parse for members without embedded quote or
// brace characters.
func (s *Set) String() string { return s.tbl.format() }

// UnionWith inserts every member of other, absorbing duplicates. A nil
// collaborator is treated as the empty collection.
func (s *Set) UnionWith(other Collection[Element]) (modified bool) {
	return s.tbl.unionWith(other)
}

// IntersectWith drops every member absent from other. Intersecting with a
// nil collaborator empties the set.
func (s *Set) IntersectWith(other Collection[Element]) (modified bool) {
	return s.tbl.intersectWith(other)
}

// ExceptWith removes every member present in other.
func (s *Set) ExceptWith(other Collection[Element]) (modified bool) {
	return s.tbl.exceptWith(other)
}
