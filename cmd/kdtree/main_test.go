package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/kdspace/pointgen"
)

func TestParsePoint(t *testing.T) {
	pt, err := parsePoint("3, -4,5")
	require.NoError(t, err)
	assert.Equal(t, pointgen.Point{3, -4, 5}, pt)

	_, err = parsePoint("3,x")
	assert.Error(t, err)
}

func TestRunDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runDemo(&buf))
	out := buf.String()
	assert.Contains(t, out, "built: size=5 order=a f e d c\n")
	assert.Contains(t, out, "reverse: c d e f a\n")
	assert.Contains(t, out, "insert (1,5)=F: inserted=false size=5 find=F\n")
	assert.Contains(t, out, "axis 0: min=g max=d\n")
	assert.Contains(t, out, "axis 1: min=d max=F\n")
	assert.Contains(t, out, "chain after erasing root: size=2")
}

func TestRun_Commands(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "points.json")
	require.NoError(t, os.WriteFile(input, []byte(`[
		{"key":[2,4],"value":"a"},
		{"key":[1,5],"value":"b"},
		{"key":[3,3],"value":"e"}
	]`), 0o644))

	for _, args := range [][]string{
		{"kdtree", "walk", "-i", input},
		{"kdtree", "walk", "--reverse", "--gen", "grid", "-n", "3"},
		{"kdtree", "shape", "--gen", "diagonal", "-n", "5", "--insert"},
		{"kdtree", "query", "-i", input, "--find", "1,5", "--min-axis", "1", "--max-axis", "-1"},
		{"kdtree", "--verbose", "erase", "-i", input, "2,4", "9,9"},
		{"kdtree", "walk", "--gen", "duplicates", "-n", "40", "--seed", "7"},
		{"kdtree", "demo"},
	} {
		assert.NoError(t, run(args), "%v", args)
	}

	assert.Error(t, run([]string{"kdtree", "erase", "-i", input}))
	assert.Error(t, run([]string{"kdtree", "walk", "--gen", "spiral"}))
	assert.Error(t, run([]string{"kdtree", "walk", "-i", filepath.Join(dir, "missing.json")}))
}

// TestRun_GlobalFlags builds the app flag set, which shares the short name
// space with the built-in version flag.
func TestRun_GlobalFlags(t *testing.T) {
	for _, args := range [][]string{
		{"kdtree", "demo"},
		{"kdtree", "--verbose", "demo"},
	} {
		assert.NotPanics(t, func() {
			assert.NoError(t, run(args), "%v", args)
		}, "%v", args)
	}
}

// TestLoadSamples_Duplicates builds a deduplicated tree from repeated draws.
func TestLoadSamples_Duplicates(t *testing.T) {
	app := cli.App{
		Commands: []*cli.Command{{
			Name:  "load",
			Flags: inputFlags,
			Action: func(cctx *cli.Context) error {
				samples, err := loadSamples(cctx)
				require.NoError(t, err)
				assert.Len(t, samples, 40)

				tree, err := loadTree(cctx)
				require.NoError(t, err)
				require.NoError(t, tree.Validate())
				assert.LessOrEqual(t, tree.Len(), 10)
				assert.Positive(t, tree.Len())
				return nil
			},
		}},
	}
	require.NoError(t, app.Run([]string{"kdtree", "load", "--gen", "duplicates", "-n", "40"}))
}
