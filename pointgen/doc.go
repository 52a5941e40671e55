// Package pointgen produces deterministic point sets for building and
// exercising k-d trees: uniform random clouds, diagonal chains, lattices and
// inputs with repeated keys.
//
// Generation is composed the same way every time:
//
//	pairs, err := pointgen.Generate(2,
//		[]pointgen.Option{pointgen.WithSeed(42)},
//		pointgen.Uniform(1000, -500, 500),
//		pointgen.Diagonal(10),
//	)
//	tree, err := kdtree.BuildPoints(2, pairs)
//
// Constructors run in order and their points are concatenated. Each point is
// labeled by the configured label scheme applied to its global index
// (decimal by default), so values are stable across runs.
//
// Guarantees:
//
//   - Same dims, options, seed and constructor order ⇒ identical output.
//   - Option constructors panic on meaningless inputs (nil RNG, nil scheme).
//   - Constructors return sentinel errors wrapped with their method name and
//     never panic at runtime.
package pointgen
