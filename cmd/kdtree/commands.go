// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/kdspace/kdtree"
)

var cmdWalk = &cli.Command{
	Name:  "walk",
	Usage: "print every key and value in cursor order",
	Flags: append([]cli.Flag{
		&cli.BoolFlag{
			Name:  "reverse",
			Usage: "walk from the end back to the beginning",
		},
	}, inputFlags...),
	Action: runWalk,
}

func runWalk(cctx *cli.Context) error {
	tree, err := loadTree(cctx)
	if err != nil {
		return err
	}
	seq := tree.All()
	if cctx.Bool("reverse") {
		seq = tree.Backward()
	}
	for k, v := range seq {
		fmt.Printf("%s\t%s\n", k, v)
	}
	return nil
}

var cmdShape = &cli.Command{
	Name:   "shape",
	Usage:  "draw the physical tree shape",
	Flags:  inputFlags,
	Action: runShape,
}

func runShape(cctx *cli.Context) error {
	tree, err := loadTree(cctx)
	if err != nil {
		return err
	}
	fmt.Print(tree.Render())
	fmt.Printf("size=%d height=%d\n", tree.Len(), tree.Height())
	return nil
}

var cmdQuery = &cli.Command{
	Name:  "query",
	Usage: "look up keys and per-axis extremes",
	Flags: append([]cli.Flag{
		&cli.StringSliceFlag{
			Name:  "find",
			Usage: "key to look up, as x,y,...",
		},
		&cli.IntSliceFlag{
			Name:  "min-axis",
			Usage: "axis to report the minimum of (wraps modulo dims)",
		},
		&cli.IntSliceFlag{
			Name:  "max-axis",
			Usage: "axis to report the maximum of (wraps modulo dims)",
		},
	}, inputFlags...),
	Action: runQuery,
}

func runQuery(cctx *cli.Context) error {
	tree, err := loadTree(cctx)
	if err != nil {
		return err
	}
	for _, s := range cctx.StringSlice("find") {
		key, err := parsePoint(s)
		if err != nil {
			return err
		}
		if c := tree.Find(key); c.Valid() {
			fmt.Printf("find %s: %s\n", key, c.Value())
		} else {
			fmt.Printf("find %s: not found\n", key)
		}
	}
	for _, axis := range cctx.IntSlice("min-axis") {
		printCursor(fmt.Sprintf("min axis %d", axis), tree.FindMinDim(axis))
	}
	for _, axis := range cctx.IntSlice("max-axis") {
		printCursor(fmt.Sprintf("max axis %d", axis), tree.FindMaxDim(axis))
	}
	return nil
}

func printCursor[K, V any](label string, c kdtree.Cursor[K, V]) {
	k, v, err := c.Entry()
	if err != nil {
		fmt.Printf("%s: empty tree\n", label)
		return
	}
	fmt.Printf("%s: %v %v\n", label, k, v)
}

var cmdErase = &cli.Command{
	Name:      "erase",
	Usage:     "erase keys and verify the tree afterwards",
	ArgsUsage: `<x,y,...> [<x,y,...> ...]`,
	Flags:     inputFlags,
	Action:    runErase,
}

func runErase(cctx *cli.Context) error {
	if cctx.Args().Len() == 0 {
		return fmt.Errorf("need at least one key to erase")
	}
	tree, err := loadTree(cctx)
	if err != nil {
		return err
	}
	for _, s := range cctx.Args().Slice() {
		key, err := parsePoint(s)
		if err != nil {
			return err
		}
		removed := tree.Erase(key)
		slog.Debug("erase", "key", key, "removed", removed, "size", tree.Len())
		fmt.Printf("erase %s: removed=%t size=%d\n", key, removed, tree.Len())
	}
	if err := tree.Validate(); err != nil {
		if errors.Is(err, kdtree.ErrInvariantViolated) {
			slog.Error("tree failed validation after erase", "err", err)
		}
		return err
	}
	fmt.Println("tree valid")
	return nil
}
