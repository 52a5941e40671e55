package pointgen_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kdspace/kdtree"
	"github.com/katalvlaran/kdspace/pointgen"
)

// TestGenerate_Errors checks parameter validation of every constructor.
func TestGenerate_Errors(t *testing.T) {
	seeded := []pointgen.Option{pointgen.WithSeed(1)}
	tests := []struct {
		name string
		dims int
		opts []pointgen.Option
		ctor pointgen.Constructor
		want error
	}{
		{"dims zero", 0, seeded, pointgen.Diagonal(3), pointgen.ErrBadDims},
		{"nil constructor", 2, seeded, nil, pointgen.ErrConstructFailed},
		{"uniform n", 2, seeded, pointgen.Uniform(0, 0, 10), pointgen.ErrTooFewPoints},
		{"uniform range", 2, seeded, pointgen.Uniform(5, 10, 10), pointgen.ErrBadRange},
		{"uniform rng", 2, nil, pointgen.Uniform(5, 0, 10), pointgen.ErrNeedRandSource},
		{"diagonal n", 3, nil, pointgen.Diagonal(0), pointgen.ErrTooFewPoints},
		{"grid dims", 3, nil, pointgen.Grid(2, 2), pointgen.ErrBadDims},
		{"grid rows", 2, nil, pointgen.Grid(0, 2), pointgen.ErrTooFewPoints},
		{"duplicates distinct", 2, seeded, pointgen.Duplicates(3, 5), pointgen.ErrBadRange},
		{"duplicates rng", 2, nil, pointgen.Duplicates(5, 3), pointgen.ErrNeedRandSource},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pointgen.Generate(tc.dims, tc.opts, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestGenerate_Deterministic runs the same seeded composition twice.
func TestGenerate_Deterministic(t *testing.T) {
	run := func() []pointgen.Sample {
		out, err := pointgen.Generate(3,
			[]pointgen.Option{pointgen.WithSeed(42), pointgen.WithLabels(pointgen.PrefixLabel("p"))},
			pointgen.Uniform(50, -10, 10),
			pointgen.Duplicates(20, 4),
		)
		require.NoError(t, err)
		return out
	}
	a, b := run(), run()
	assert.Equal(t, a, b)
	require.Len(t, a, 70)
	assert.Equal(t, "p0", a[0].Value)
	assert.Equal(t, "p69", a[69].Value)
	for _, s := range a[:50] {
		require.Len(t, s.Key, 3)
		for _, c := range s.Key {
			assert.GreaterOrEqual(t, c, int64(-10))
			assert.Less(t, c, int64(10))
		}
	}
}

// TestGrid_BuildsValidTree feeds a tie-heavy lattice into kdtree.
func TestGrid_BuildsValidTree(t *testing.T) {
	pairs, err := pointgen.Generate(2, nil, pointgen.Grid(7, 9))
	require.NoError(t, err)
	require.Len(t, pairs, 63)
	assert.Equal(t, pointgen.Point{0, 0}, pairs[0].Key)
	assert.Equal(t, pointgen.Point{6, 8}, pairs[62].Key)

	tree, err := kdtree.BuildPoints(2, pairs)
	require.NoError(t, err)
	require.NoError(t, tree.Validate())
	assert.Equal(t, 63, tree.Len())
	for _, s := range pairs {
		assert.Equal(t, s.Value, tree.Find(s.Key).Value())
	}
}

// TestDiagonal_SkewsInsertion shows sequential inserts degrade into a chain.
func TestDiagonal_SkewsInsertion(t *testing.T) {
	pairs, err := pointgen.Generate(2, nil, pointgen.Diagonal(12))
	require.NoError(t, err)

	tree, err := kdtree.NewPointTree[int64, string](2)
	require.NoError(t, err)
	for _, s := range pairs {
		_, err := tree.Insert(s.Key, s.Value)
		require.NoError(t, err)
	}
	assert.Equal(t, 12, tree.Height())

	built, err := kdtree.BuildPoints(2, pairs)
	require.NoError(t, err)
	assert.Equal(t, 4, built.Height())
}

// TestDuplicates_DedupedByBuild confirms Build collapses repeated keys.
func TestDuplicates_DedupedByBuild(t *testing.T) {
	pairs, err := pointgen.Generate(2, []pointgen.Option{pointgen.WithRand(rand.New(rand.NewSource(3)))},
		pointgen.Duplicates(200, 10))
	require.NoError(t, err)

	distinct := make(map[string]string)
	for _, s := range pairs {
		distinct[s.Key.String()] = s.Value
	}
	tree, err := kdtree.BuildPoints(2, pairs)
	require.NoError(t, err)
	assert.Equal(t, len(distinct), tree.Len())
	for k, v := range tree.All() {
		assert.Equal(t, distinct[k.String()], v, "last occurrence wins for %v", k)
	}
}

// TestOptions_PanicOnNil follows the option-constructor contract.
func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { pointgen.WithRand(nil) })
	assert.Panics(t, func() { pointgen.WithLabels(nil) })
}
