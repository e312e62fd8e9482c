package mathset

import "github.com/pkg/errors"

// Union returns a new set holding every member of a and b: a deep copy of a
// with b's members inserted, duplicates silently absorbed. Commutative,
// associative and idempotent. Fails with ErrNullOperand if either operand is
// nil.
func Union(a, b *Set) (*Set, error) {
	if a == nil || b == nil {
		return nil, errors.Wrap(ErrNullOperand, "union")
	}

	out := a.Clone()
	out.tbl.unionWith(b)
	return out, nil
}

// Intersection returns a new set of the members of a contained in b.
// Commutative and associative. Fails with ErrNullOperand if either operand
// is nil.
func Intersection(a, b *Set) (*Set, error) {
	if a == nil || b == nil {
		return nil, errors.Wrap(ErrNullOperand, "intersection")
	}

	out := NewSet()
	a.tbl.each(func(e Element) bool {
		if b.Contains(e) {
			out.tbl.insert(e)
		}
		return true
	})
	return out, nil
}

// Difference returns a new set of the members of a absent from b. Not
// commutative. Fails with ErrNullOperand if either operand is nil.
func Difference(a, b *Set) (*Set, error) {
	if a == nil || b == nil {
		return nil, errors.Wrap(ErrNullOperand, "difference")
	}

	out := NewSet()
	a.tbl.each(func(e Element) bool {
		if !b.Contains(e) {
			out.tbl.insert(e)
		}
		return true
	})
	return out, nil
}

// SymmetricDifference returns the members of exactly one of a and b:
// Difference(a,b) ∪ Difference(b,a). Fails with ErrNullOperand if either
// operand is nil.
func SymmetricDifference(a, b *Set) (*Set, error) {
	if a == nil || b == nil {
		return nil, errors.Wrap(ErrNullOperand, "symmetric difference")
	}

	left, err := Difference(a, b)
	if err != nil {
		return nil, err
	}
	right, err := Difference(b, a)
	if err != nil {
		return nil, err
	}
	return Union(left, right)
}

// IsSubset reports whether every member of a is in b. The empty set is a
// subset of anything, but a nil operand on either side is false, never
// vacuously true.
func IsSubset(a, b *Set) bool {
	if a == nil || b == nil {
		return false
	}
	if a.Len() > b.Len() {
		return false
	}

	subset := true
	a.tbl.each(func(e Element) bool {
		if !b.Contains(e) {
			subset = false
			return false
		}
		return true
	})
	return subset
}

// IsProperSubset is IsSubset with strictly smaller cardinality.
func IsProperSubset(a, b *Set) bool {
	return IsSubset(a, b) && a.Len() < b.Len()
}

// AreDisjoint reports whether a and b share no member. A nil operand is
// trivially disjoint.
func AreDisjoint(a, b *Set) bool {
	if a == nil || b == nil {
		return true
	}

	disjoint := true
	a.tbl.each(func(e Element) bool {
		if b.Contains(e) {
			disjoint = false
			return false
		}
		return true
	})
	return disjoint
}
