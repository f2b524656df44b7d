// SPDX-License-Identifier: MIT
// Source: github.com/leethomason/microcomp

// Command microcomp round-trips files through the codec with small working
// buffers, the way a microcontroller would, and reports the compression
// ratio achieved on each file.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

func main() {
	app := &cli.App{
		Name:      "microcomp",
		Usage:     "round-trip files through the microcomp codec and report ratios",
		ArgsUsage: "FILE...",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "buffer-size",
				Value: 40,
				Usage: "working buffer size for the chunked compress loop",
			},
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "print pair-table utilization after each file",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return cli.Exit(fmt.Sprintf("usage: %s [flags] FILE...", ctx.App.Name), 1)
	}
	if ctx.Bool("verbose") {
		logrus.SetLevel(logrus.DebugLevel)
	}

	bufSize := ctx.Int("buffer-size")
	if bufSize < 2 {
		return cli.Exit("buffer-size must be at least 2", 1)
	}

	files := ctx.Args().Slice()
	reports := make([]*report, len(files))

	var g errgroup.Group
	for i, name := range files {
		g.Go(func() error {
			logrus.WithField("file", name).Debug("round-tripping")
			rep, err := processFile(name, bufSize)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			reports[i] = rep
			return nil
		})
	}
	runErr := g.Wait()

	for _, rep := range reports {
		if rep != nil {
			rep.print(ctx.Bool("stats"))
		}
	}

	return runErr
}
