package main

import (
	"fmt"
	"os"

	"github.com/filterdef/filterdef"
	"github.com/jessevdk/go-flags"
	"github.com/urfave/cli"
)

func compareCommand() cli.Command {
	return cli.Command{
		Name:            "compare",
		Usage:           "diff a baseline and a results file, reporting last-field disagreements",
		ArgsUsage:       "<baseline> <results> <mismatches-out>",
		SkipFlagParsing: true,
		Action: func(c *cli.Context) error {
			return runCompare(c.Args())
		},
	}
}

type compareOptions struct {
	Help bool `long:"help" description:"show this help"`
}

func runCompare(args cli.Args) error {
	var opts compareOptions
	parser := flags.NewParser(&opts, flags.PassDoubleDash)
	parser.Usage = "compare <baseline> <results> <mismatches-out>"
	rest, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}
	if opts.Help {
		parser.WriteHelp(os.Stdout)
		return nil
	}
	if len(rest) != 3 {
		parser.WriteHelp(os.Stdout)
		return fmt.Errorf("compare needs exactly 3 arguments, got %d", len(rest))
	}
	return filterdef.RunCompare(rest[0], rest[1], rest[2])
}
