package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/filterdef/filterdef"
	"github.com/jessevdk/go-flags"
	"github.com/urfave/cli"
)

func sliceCommand() cli.Command {
	return cli.Command{
		Name:            "slice",
		Usage:           "partition a file into a contiguous slice and its remainder",
		ArgsUsage:       "<in> <slice-out> <remainder-out> <first-line> <line-count>",
		SkipFlagParsing: true,
		Action: func(c *cli.Context) error {
			return runSlice(c.Args())
		},
	}
}

type sliceOptions struct {
	Help bool `long:"help" description:"show this help"`
}

func runSlice(args cli.Args) error {
	var opts sliceOptions
	parser := flags.NewParser(&opts, flags.PassDoubleDash)
	parser.Usage = "slice <in> <slice-out> <remainder-out> <first-line> <line-count>"
	rest, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}
	if opts.Help {
		parser.WriteHelp(os.Stdout)
		return nil
	}
	if len(rest) != 5 {
		parser.WriteHelp(os.Stdout)
		return fmt.Errorf("slice needs exactly 5 arguments, got %d", len(rest))
	}

	firstLine, err := strconv.Atoi(rest[3])
	if err != nil {
		return fmt.Errorf("first-line: %w", err)
	}
	lineCount, err := strconv.Atoi(rest[4])
	if err != nil {
		return fmt.Errorf("line-count: %w", err)
	}
	return filterdef.RunSlice(rest[0], rest[1], rest[2], firstLine, lineCount)
}
