package mathset

import "github.com/pkg/errors"

// Family is a set of sets: the same container core as Set instantiated with
// *Set members compared by set value-equality. Power-set generation produces
// a Family; it carries the full container surface so results compose.
type Family struct {
	id  uint64
	tbl *table[*Set]
}

var _ Collection[*Set] = (*Family)(nil)

func NewFamily() *Family {
	return &Family{id: nextID(), tbl: newTable[*Set]()}
}

// FamilyOf builds a family from a sequence of sets, absorbing structurally
// equal duplicates. It fails with ErrNullElement on a nil set.
func FamilyOf(sets ...*Set) (*Family, error) {
	f := NewFamily()
	for _, s := range sets {
		if err := f.Add(s); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// ID is the unique id taken from the identity registry at construction.
func (f *Family) ID() uint64 { return f.id }

// Add inserts s unless an equal set is already a member. Adding nil fails
// with ErrNullElement.
func (f *Family) Add(s *Set) error {
	if s == nil {
		return errors.Wrap(ErrNullElement, "add")
	}
	f.tbl.insert(s)
	return nil
}

// Remove reports whether an equal member set was found and removed; nil and
// absent inputs return false.
func (f *Family) Remove(s *Set) bool {
	if s == nil {
		return false
	}
	return f.tbl.remove(s)
}

func (f *Family) Contains(s *Set) bool {
	if s == nil {
		return false
	}
	return f.tbl.contains(s)
}

// Get returns the stored member equal to s.
func (f *Family) Get(s *Set) (*Set, bool) {
	if s == nil {
		return nil, false
	}
	return f.tbl.get(s)
}

func (f *Family) Len() int { return f.tbl.size }

func (f *Family) IsEmpty() bool { return f.tbl.size == 0 }

func (f *Family) Clear() { f.tbl.clear() }

func (f *Family) Items() []*Set { return f.tbl.items() }

func (f *Family) Each(fn func(s *Set) bool) { f.tbl.each(fn) }

func (f *Family) Equal(other *Family) bool {
	if other == nil {
		return false
	}
	return f.tbl.equal(other.tbl)
}

func (f *Family) Hash() uint64 { return f.tbl.hash() }

func (f *Family) String() string { return f.tbl.format() }

func (f *Family) UnionWith(other Collection[*Set]) (modified bool) {
	return f.tbl.unionWith(other)
}

func (f *Family) IntersectWith(other Collection[*Set]) (modified bool) {
	return f.tbl.intersectWith(other)
}

func (f *Family) ExceptWith(other Collection[*Set]) (modified bool) {
	return f.tbl.exceptWith(other)
}
