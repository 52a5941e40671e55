// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {

	app := cli.App{
		Name:    "kdtree",
		Usage:   "build, walk and edit k-d trees from the command line",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "enable debug logging",
				EnvVars: []string{"KDTREE_VERBOSE"},
			},
		},
		Before: func(cctx *cli.Context) error {
			logLevel := slog.LevelInfo
			if cctx.Bool("verbose") {
				logLevel = slog.LevelDebug
			}
			log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
			slog.SetDefault(log)
			return nil
		},
	}
	app.Commands = []*cli.Command{
		cmdWalk,
		cmdShape,
		cmdQuery,
		cmdErase,
		cmdDemo,
	}
	return app.Run(args)
}
