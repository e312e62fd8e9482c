package mathset

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Kind discriminates the closed set of element variants.
type Kind uint8

const (
	KindNull Kind = iota
	KindInteger
	KindFloat
	KindText
	KindSet
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindSet:
		return "set"
	default:
		return "null"
	}
}

// Element is one member of a Set: an integer, a float, a text or a nested
// set. The zero value is the null element, which no container accepts.
// Equality and hashing are variant-aware: an integer and a float holding
// numerically equal values are never equal.
type Element struct {
	kind Kind
	i    int64
	f    float64
	t    string
	s    *Set
}

func Int(v int64) Element { return Element{kind: KindInteger, i: v} }

func Float(v float64) Element { return Element{kind: KindFloat, f: v} }

func Text(v string) Element { return Element{kind: KindText, t: v} }

// Nested wraps a set as an element. A nil set yields the null element.
// Callers own the inner set: mutating it afterwards changes the equality and
// hash of every set the element belongs to.
func Nested(s *Set) Element {
	if s == nil {
		return Element{}
	}
	return Element{kind: KindSet, s: s}
}

// Ints builds integer elements from any integer-typed values.
func Ints[T constraints.Integer](vs ...T) []Element {
	elements := make([]Element, 0, len(vs))
	for _, v := range vs {
		elements = append(elements, Int(int64(v)))
	}
	return elements
}

// Floats builds float elements from any float-typed values.
func Floats[T constraints.Float](vs ...T) []Element {
	elements := make([]Element, 0, len(vs))
	for _, v := range vs {
		elements = append(elements, Float(float64(v)))
	}
	return elements
}

func Texts(vs ...string) []Element {
	elements := make([]Element, 0, len(vs))
	for _, v := range vs {
		elements = append(elements, Text(v))
	}
	return elements
}

func (e Element) Kind() Kind { return e.kind }

func (e Element) IsNull() bool { return e.kind == KindNull }

func (e Element) IntValue() (int64, bool) {
	return e.i, e.kind == KindInteger
}

func (e Element) FloatValue() (float64, bool) {
	return e.f, e.kind == KindFloat
}

func (e Element) TextValue() (string, bool) {
	return e.t, e.kind == KindText
}

func (e Element) SetValue() (*Set, bool) {
	return e.s, e.kind == KindSet
}

// Equal reports structural equality. Distinct variants never compare equal;
// nested elements compare by set value-equality. The null element equals
// nothing, itself included.
func (e Element) Equal(other Element) bool {
	if e.kind != other.kind {
		return false
	}

	switch e.kind {
	case KindInteger:
		return e.i == other.i
	case KindFloat:
		return e.f == other.f
	case KindText:
		return e.t == other.t
	case KindSet:
		return e.s.Equal(other.s)
	default:
		return false
	}
}

// Hash is consistent with Equal. Every variant mixes in a tag byte, so an
// integer and a float over the same bits hash apart. A nested element folds
// its members order-independently via Set.Hash. Assumes sets are acyclic.
func (e Element) Hash() uint64 {
	switch e.kind {
	case KindInteger:
		return scalarHash('i', uint64(e.i))
	case KindFloat:
		return scalarHash('f', math.Float64bits(e.f))
	case KindText:
		d := xxhash.New()
		_, _ = d.Write([]byte{'t'})
		_, _ = d.WriteString(e.t)
		return d.Sum64()
	case KindSet:
		return scalarHash('s', e.s.Hash())
	default:
		return 0
	}
}

func scalarHash(tag byte, v uint64) uint64 {
	var buf [9]byte
	buf[0] = tag
	binary.LittleEndian.PutUint64(buf[1:], v)
	return xxhash.Sum64(buf[:])
}

// String renders the element in literal form. Nested members recurse into
// the brace syntax; numbers use locale-invariant formatting.
func (e Element) String() string {
	switch e.kind {
	case KindInteger:
		return strconv.FormatInt(e.i, 10)
	case KindFloat:
		return formatFloat(e.f)
	case KindText:
		return formatText(e.t)
	case KindSet:
		return e.s.String()
	default:
		return "<null>"
	}
}

// formatFloat keeps whole floats readable back as the Float variant by
// forcing an explicit decimal point.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEIN") {
		s += ".0"
	}
	return s
}

// formatText quotes a text member when its bare form would be misread as a
// number, a nested literal or a token boundary.
func formatText(s string) string {
	if needsQuoting(s) {
		return `"` + s + `"`
	}
	return s
}

func needsQuoting(s string) bool {
	if s == "" || s != strings.TrimSpace(s) {
		return true
	}
	if strings.ContainsAny(s, `,{}"'`) {
		return true
	}
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return true
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return true
	}
	return false
}
