// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/kdspace/kdtree"
	"github.com/katalvlaran/kdspace/pointgen"
)

type pointTree = kdtree.Tree[pointgen.Point, string]

// inputFlags select where points come from: a JSON file or a generator.
var inputFlags = []cli.Flag{
	&cli.IntFlag{
		Name:    "dims",
		Aliases: []string{"k"},
		Usage:   "number of key components",
		Value:   2,
		EnvVars: []string{"KDTREE_DIMS"},
	},
	&cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   `JSON file of [{"key":[..],"value":".."}]`,
	},
	&cli.StringFlag{
		Name:  "gen",
		Usage: "generate points instead of reading a file: uniform, diagonal, grid, duplicates",
		Value: "uniform",
	},
	&cli.IntFlag{
		Name:  "n",
		Usage: "number of generated points (grid: side length; duplicates: draws from n/4 distinct points)",
		Value: 16,
	},
	&cli.Int64Flag{
		Name:    "seed",
		Usage:   "RNG seed for generated points",
		Value:   1,
		EnvVars: []string{"KDTREE_SEED"},
	},
	&cli.BoolFlag{
		Name:  "insert",
		Usage: "insert points one by one instead of the median bulk build",
	},
}

type jsonPair struct {
	Key   []int64 `json:"key"`
	Value string  `json:"value"`
}

func loadSamples(cctx *cli.Context) ([]pointgen.Sample, error) {
	dims := cctx.Int("dims")
	if path := cctx.String("input"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var pairs []jsonPair
		if err := json.Unmarshal(raw, &pairs); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		out := make([]pointgen.Sample, 0, len(pairs))
		for _, p := range pairs {
			out = append(out, pointgen.Sample{Key: pointgen.Point(p.Key), Value: p.Value})
		}
		slog.Debug("loaded points", "path", path, "count", len(out))
		return out, nil
	}

	n := cctx.Int("n")
	var ctor pointgen.Constructor
	switch gen := cctx.String("gen"); gen {
	case "uniform":
		ctor = pointgen.Uniform(n, 0, int64(10*n))
	case "diagonal":
		ctor = pointgen.Diagonal(n)
	case "grid":
		ctor = pointgen.Grid(n, n)
	case "duplicates":
		ctor = pointgen.Duplicates(n, max(1, n/4))
	default:
		return nil, fmt.Errorf("unknown generator %q", gen)
	}
	out, err := pointgen.Generate(dims, []pointgen.Option{pointgen.WithSeed(cctx.Int64("seed"))}, ctor)
	if err != nil {
		return nil, err
	}
	slog.Debug("generated points", "gen", cctx.String("gen"), "count", len(out))
	return out, nil
}

func loadTree(cctx *cli.Context) (*pointTree, error) {
	samples, err := loadSamples(cctx)
	if err != nil {
		return nil, err
	}
	dims := cctx.Int("dims")
	if !cctx.Bool("insert") {
		tree, err := kdtree.BuildPoints(dims, samples)
		if err != nil {
			return nil, err
		}
		slog.Debug("built tree", "size", tree.Len(), "height", tree.Height())
		return tree, nil
	}

	tree, err := kdtree.NewPointTree[int64, string](dims)
	if err != nil {
		return nil, err
	}
	for _, s := range samples {
		if _, err := tree.Insert(s.Key, s.Value); err != nil {
			return nil, err
		}
	}
	slog.Debug("inserted tree", "size", tree.Len(), "height", tree.Height())
	return tree, nil
}

// parsePoint reads "x,y,..." into a point.
func parsePoint(s string) (pointgen.Point, error) {
	parts := strings.Split(s, ",")
	pt := make(pointgen.Point, 0, len(parts))
	for _, part := range parts {
		c, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad point %q: %w", s, err)
		}
		pt = append(pt, c)
	}
	return pt, nil
}
