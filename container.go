package mathset

import (
	"strings"

	"github.com/denismitr/dll"
	"github.com/denismitr/mathset/utils"
)

type (
	// Value is the capability a member type must provide to live in a
	// container: structural equality, a hash consistent with it, and a
	// literal rendering. Element and *Set both satisfy it.
	Value[T any] interface {
		Equal(other T) bool
		Hash() uint64
		String() string
	}

	// Collection is the read surface the in-place mutators accept, so they
	// can operate against any container implementation, not only the
	// concrete ones in this package.
	Collection[T any] interface {
		Len() int
		Contains(item T) bool
		Items() []T
	}
)

// table is the backing store shared by Set and Family: members are bucketed
// by hash for lookup and threaded on a doubly linked list for iteration.
// Buckets hold slices so hash collisions stay correct and are resolved by
// Equal.
type table[T Value[T]] struct {
	buckets map[uint64][]*dll.Element[T]
	list    *dll.DoublyLinkedList[T]
	size    int
}

func newTable[T Value[T]]() *table[T] {
	return &table[T]{
		buckets: make(map[uint64][]*dll.Element[T]),
		list:    dll.New[T](),
	}
}

func (t *table[T]) insert(item T) (modified bool) {
	h := item.Hash()
	for _, el := range t.buckets[h] {
		if el.Value().Equal(item) {
			return false
		}
	}

	newEl := dll.NewElement(item)
	t.buckets[h] = append(t.buckets[h], newEl)
	t.list.PushTail(newEl)
	t.size++
	return true
}

func (t *table[T]) remove(item T) bool {
	h := item.Hash()
	bucket := t.buckets[h]
	for i, el := range bucket {
		if el.Value().Equal(item) {
			t.buckets[h] = append(bucket[:i], bucket[i+1:]...)
			if len(t.buckets[h]) == 0 {
				delete(t.buckets, h)
			}
			t.list.Remove(el)
			t.size--
			return true
		}
	}

	return false
}

func (t *table[T]) contains(item T) bool {
	for _, el := range t.buckets[item.Hash()] {
		if el.Value().Equal(item) {
			return true
		}
	}
	return false
}

// get returns the stored member equal to item, letting callers recover the
// canonical instance behind a structurally equal probe.
func (t *table[T]) get(item T) (T, bool) {
	for _, el := range t.buckets[item.Hash()] {
		if el.Value().Equal(item) {
			return el.Value(), true
		}
	}
	return utils.GetZero[T](), false
}

func (t *table[T]) clear() {
	t.buckets = make(map[uint64][]*dll.Element[T])
	t.list = dll.New[T]()
	t.size = 0
}

func (t *table[T]) items() []T {
	items := make([]T, 0, t.size)
	curr := t.list.Head()
	for curr != nil {
		items = append(items, curr.Value())
		curr = curr.Next()
	}
	return items
}

func (t *table[T]) each(fn func(item T) bool) {
	curr := t.list.Head()
	for curr != nil {
		if !fn(curr.Value()) {
			return
		}
		curr = curr.Next()
	}
}

// equal holds iff both stores have the same cardinality and every member of
// one is contained in the other. Dedup makes one-way containment sufficient.
func (t *table[T]) equal(other *table[T]) bool {
	if t.size != other.size {
		return false
	}

	eq := true
	t.each(func(item T) bool {
		if !other.contains(item) {
			eq = false
			return false
		}
		return true
	})
	return eq
}

const hashSeed = 0x9e3779b97f4a7c15

// hash folds member hashes with XOR, a commutative combiner, so equal stores
// hash equal regardless of insertion order.
func (t *table[T]) hash() uint64 {
	h := uint64(hashSeed)
	t.each(func(item T) bool {
		h ^= item.Hash()
		return true
	})
	return h
}

func (t *table[T]) format() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	t.each(func(item T) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(item.String())
		return true
	})
	b.WriteByte('}')
	return b.String()
}

func (t *table[T]) unionWith(other Collection[T]) (modified bool) {
	if other == nil {
		return false
	}

	for _, item := range other.Items() {
		if t.insert(item) {
			modified = true
		}
	}
	return modified
}

func (t *table[T]) intersectWith(other Collection[T]) (modified bool) {
	if other == nil {
		modified = t.size > 0
		t.clear()
		return modified
	}

	for _, item := range t.items() {
		if !other.Contains(item) {
			t.remove(item)
			modified = true
		}
	}
	return modified
}

func (t *table[T]) exceptWith(other Collection[T]) (modified bool) {
	if other == nil {
		return false
	}

	for _, item := range other.Items() {
		if t.remove(item) {
			modified = true
		}
	}
	return modified
}
