// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/kdspace/kdtree"
)

var cmdDemo = &cli.Command{
	Name:   "demo",
	Usage:  "run the reference walkthrough: build, overwrite, extremes, copy, erase",
	Action: func(cctx *cli.Context) error { return runDemo(os.Stdout) },
}

type demoPoint = kdtree.Point[int]

func runDemo(w io.Writer) error {
	pairs := []kdtree.Pair[demoPoint, string]{
		{Key: demoPoint{2, 4}, Value: "a"},
		{Key: demoPoint{1, 5}, Value: "b"},
		{Key: demoPoint{4, 2}, Value: "c"},
		{Key: demoPoint{5, 1}, Value: "d"},
		{Key: demoPoint{3, 3}, Value: "e"},
		{Key: demoPoint{1, 5}, Value: "f"},
	}
	tree, err := kdtree.BuildPoints(2, pairs)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "built: size=%d order=%s\n", tree.Len(), valuesOf(tree))

	var back []string
	for _, v := range tree.Backward() {
		back = append(back, v)
	}
	fmt.Fprintf(w, "reverse: %s\n", strings.Join(back, " "))

	inserted, err := tree.Insert(demoPoint{1, 5}, "F")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "insert (1,5)=F: inserted=%t size=%d find=%s\n",
		inserted, tree.Len(), tree.Find(demoPoint{1, 5}).Value())
	if _, err := tree.Insert(demoPoint{-1, 5}, "g"); err != nil {
		return err
	}
	fmt.Fprintf(w, "insert (-1,5)=g: order=%s\n", valuesOf(tree))

	for axis := 0; axis < tree.Dims(); axis++ {
		lo, err := tree.FindMin(axis)
		if err != nil {
			return err
		}
		hi, err := tree.FindMax(axis)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "axis %d: min=%s max=%s\n", axis, lo.Value(), hi.Value())
	}

	cp := tree.Clone()
	cp.Erase(demoPoint{3, 3})
	fmt.Fprintf(w, "copy after erase (3,3): %s; original: %s\n", valuesOf(cp), valuesOf(tree))

	chain, err := kdtree.NewPointTree[int, string](2)
	if err != nil {
		return err
	}
	for i, v := range []string{"x", "y", "z"} {
		if _, err := chain.Insert(demoPoint{i, i}, v); err != nil {
			return err
		}
	}
	chain.Erase(demoPoint{0, 0})
	if err := chain.Validate(); err != nil {
		return err
	}
	fmt.Fprintf(w, "chain after erasing root: size=%d order=%s\n", chain.Len(), valuesOf(chain))
	return nil
}

func valuesOf(t *kdtree.Tree[demoPoint, string]) string {
	var vals []string
	for _, v := range t.All() {
		vals = append(vals, v)
	}
	return strings.Join(vals, " ")
}
