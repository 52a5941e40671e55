package kdtree_test

import (
	"fmt"

	"github.com/katalvlaran/kdspace/kdtree"
)

// ExampleBuildPoints builds a 2-D tree from points with a duplicate key and
// walks it in cursor order.
func ExampleBuildPoints() {
	tree, err := kdtree.BuildPoints(2, []kdtree.Pair[kdtree.Point[int], string]{
		{Key: kdtree.Point[int]{2, 4}, Value: "a"},
		{Key: kdtree.Point[int]{1, 5}, Value: "b"},
		{Key: kdtree.Point[int]{4, 2}, Value: "c"},
		{Key: kdtree.Point[int]{5, 1}, Value: "d"},
		{Key: kdtree.Point[int]{3, 3}, Value: "e"},
		{Key: kdtree.Point[int]{1, 5}, Value: "f"},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("size:", tree.Len())
	for k, v := range tree.All() {
		fmt.Println(k, v)
	}
	// Output:
	// size: 5
	// (2,4) a
	// (1,5) f
	// (3,3) e
	// (5,1) d
	// (4,2) c
}

// ExampleTree_FindMin queries the extremes of each axis.
func ExampleTree_FindMin() {
	tree, _ := kdtree.NewPointTree[float64, string](2)
	for i, name := range []string{"north", "east", "south", "west"} {
		angle := []kdtree.Point[float64]{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}[i]
		_, _ = tree.Insert(angle, name)
	}

	west, _ := tree.FindMin(0)
	east, _ := tree.FindMax(0)
	south := tree.FindMinDim(1)
	north := tree.FindMaxDim(3) // wraps to axis 1
	fmt.Println(west.Value(), east.Value(), south.Value(), north.Value())
	// Output:
	// west east south north
}

// ExampleCursor_Prev walks backwards from End and stops at Begin.
func ExampleCursor_Prev() {
	tree, _ := kdtree.NewPointTree[int, int](1)
	for _, x := range []int{5, 2, 8, 1} {
		_, _ = tree.Insert(kdtree.Point[int]{x}, x*10)
	}

	c := tree.End()
	for c.Prev() == nil {
		fmt.Print(c.Value(), " ")
	}
	fmt.Println()
	// Output:
	// 80 50 20 10
}
