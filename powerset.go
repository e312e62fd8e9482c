package mathset

import "github.com/pkg/errors"

// PowerSet enumerates every subset of s, the empty set and s itself
// included, into a Family with independent storage: nested members are
// deep-copied into each subset. For n members it builds exactly 2^n subsets
// in O(2^n · n) time, so it is only tractable for small sets; around n = 20
// (a million subsets) is a practical ceiling. Fails with ErrNullOperand on a
// nil set.
func PowerSet(s *Set) (*Family, error) {
	if s == nil {
		return nil, errors.Wrap(ErrNullOperand, "power set")
	}

	members := s.Items()
	n := uint(len(members))
	family := NewFamily()
	for mask := uint64(0); mask < 1<<n; mask++ {
		subset := NewSet()
		for j := uint(0); j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			e := members[j]
			if inner, ok := e.SetValue(); ok {
				e = Nested(inner.Clone())
			}
			subset.tbl.insert(e)
		}
		family.tbl.insert(subset)
	}
	return family, nil
}
