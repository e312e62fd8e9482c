package mathset_test

import (
	"testing"

	"github.com/denismitr/mathset"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPowerSet(t *testing.T) {
	t.Run("two members yield the four expected subsets", func(t *testing.T) {
		ps, err := mathset.PowerSet(mathset.MustParse("{1, 2}"))
		require.NoError(t, err)

		assert.Equal(t, 4, ps.Len())
		assert.True(t, ps.Contains(mathset.MustParse("{}")))
		assert.True(t, ps.Contains(mathset.MustParse("{1}")))
		assert.True(t, ps.Contains(mathset.MustParse("{2}")))
		assert.True(t, ps.Contains(mathset.MustParse("{1, 2}")))
	})

	t.Run("the empty set has exactly one subset", func(t *testing.T) {
		ps, err := mathset.PowerSet(mathset.NewSet())
		require.NoError(t, err)

		assert.Equal(t, 1, ps.Len())
		assert.True(t, ps.Contains(mathset.NewSet()))
	})

	t.Run("cardinality is two to the n", func(t *testing.T) {
		s, err := mathset.SetOf(mathset.Ints(1, 2, 3, 4, 5)...)
		require.NoError(t, err)

		ps, err := mathset.PowerSet(s)
		require.NoError(t, err)

		assert.Equal(t, 32, ps.Len())
	})

	t.Run("includes the empty set and the set itself", func(t *testing.T) {
		s := mathset.MustParse("{a, b, {c}}")

		ps, err := mathset.PowerSet(s)
		require.NoError(t, err)

		assert.True(t, ps.Contains(mathset.NewSet()))
		assert.True(t, ps.Contains(s))
	})

	t.Run("every subset is a subset of the input", func(t *testing.T) {
		s := mathset.MustParse("{1, 2, 3}")

		ps, err := mathset.PowerSet(s)
		require.NoError(t, err)

		ps.Each(func(subset *mathset.Set) bool {
			assert.True(t, mathset.IsSubset(subset, s))
			return true
		})
	})

	t.Run("subsets get their own nested storage", func(t *testing.T) {
		s := mathset.MustParse("{{1}}")

		ps, err := mathset.PowerSet(s)
		require.NoError(t, err)

		full, ok := ps.Get(mathset.MustParse("{{1}}"))
		require.True(t, ok)
		member, ok := full.Get(mathset.Nested(mathset.MustParse("{1}")))
		require.True(t, ok)
		inner, ok := member.SetValue()
		require.True(t, ok)
		require.NoError(t, inner.Add(mathset.Int(2)))

		assert.True(t, s.Contains(mathset.Nested(mathset.MustParse("{1}"))))
	})

	t.Run("nil set fails", func(t *testing.T) {
		_, err := mathset.PowerSet(nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, mathset.ErrNullOperand))
	})
}
