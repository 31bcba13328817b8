package main

import (
	"bufio"
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"rskel/skel"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.Command{
		Name:      "rskel",
		Usage:     "print the declaration skeleton of a Rust codebase",
		ArgsUsage: "[root]",
		Action:    run,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Error().Err(err).Msg("skeleton extraction aborted")
		os.Exit(1)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	root := cmd.Args().First()
	if root == "" {
		root = "."
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	return skel.Run(skel.Options{Root: root}, out)
}
