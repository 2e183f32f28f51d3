package main

import (
	"fmt"
	"os"

	"github.com/filterdef/filterdef"
	"github.com/jessevdk/go-flags"
	"github.com/urfave/cli"
)

func stripCommand() cli.Command {
	return cli.Command{
		Name:            "strip",
		Usage:           "remove the last field of every record in a file",
		ArgsUsage:       "<in> <out>",
		SkipFlagParsing: true,
		Action: func(c *cli.Context) error {
			return runStrip(c.Args())
		},
	}
}

type stripOptions struct {
	Help bool `long:"help" description:"show this help"`
}

func runStrip(args cli.Args) error {
	var opts stripOptions
	parser := flags.NewParser(&opts, flags.PassDoubleDash)
	parser.Usage = "strip <in> <out>"
	rest, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}
	if opts.Help {
		parser.WriteHelp(os.Stdout)
		return nil
	}
	if len(rest) != 2 {
		parser.WriteHelp(os.Stdout)
		return fmt.Errorf("strip needs exactly 2 arguments, got %d", len(rest))
	}
	return filterdef.RunStrip(rest[0], rest[1])
}
