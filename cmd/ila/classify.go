package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/filterdef/filterdef"
	"github.com/filterdef/filterdef/config"
	"github.com/filterdef/filterdef/errs"
	"github.com/filterdef/filterdef/util"
	"github.com/jessevdk/go-flags"
	"github.com/k0kubun/pp/v3"
	"github.com/urfave/cli"
)

func classifyCommand() cli.Command {
	return cli.Command{
		Name:            "classify",
		Usage:           "learn a rule set from a training file and apply it to a to-classify file",
		ArgsUsage:       "<training-file> <to-classify-file> <output-file>",
		SkipFlagParsing: true,
		Action: func(c *cli.Context) error {
			return runClassify(c.Args())
		},
	}
}

type classifyOptions struct {
	IgnoreFields string `long:"ignore-fields" description:"comma-separated field indices to exclude from induction, besides the label column" value-name:"f1,f2,..."`
	Config       string `long:"config" description:"YAML file providing default ignore_fields and log_level" value-name:"config_file"`
	Explain      bool   `long:"explain" description:"print the learned rule set to stderr before classifying"`
	DebugPrint   bool   `long:"debug-print" description:"pretty-print the learned rule set's internal structure to stderr"`
	Help         bool   `long:"help" description:"show this help"`
}

func runClassify(args cli.Args) error {
	var opts classifyOptions
	parser := flags.NewParser(&opts, flags.PassDoubleDash)
	parser.Usage = "classify [options] <training-file> <to-classify-file> <output-file>"
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
		return fmt.Errorf("classify needs exactly 3 arguments, got %d", len(rest))
	}

	cliFields, err := parseFieldList(opts.IgnoreFields)
	if err != nil {
		return err
	}
	cfg, err := config.ParseFile(opts.Config)
	if err != nil {
		return err
	}
	if cfg.LogLevel != "" {
		os.Setenv("LOG_LEVEL", cfg.LogLevel)
		util.InitSlog()
	}
	ignoreFields := config.MergeIgnoreFields(cfg, cliFields)

	runOpts := filterdef.ClassifyOptions{
		TrainingFile:   rest[0],
		ToClassifyFile: rest[1],
		OutputFile:     rest[2],
		IgnoreFields:   ignoreFields,
	}
	if opts.Explain || opts.DebugPrint {
		runOpts.Explain = func(rendering string) {
			if opts.Explain {
				fmt.Fprintln(os.Stderr, rendering)
			}
			if opts.DebugPrint {
				pp.Fprintln(os.Stderr, strings.Split(rendering, "\n"))
			}
		}
	}
	return filterdef.RunClassify(runOpts)
}

func parseFieldList(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	fields := make([]int, len(parts))
	for i, p := range parts {
		f, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errs.Input("ignore-fields: %q is not an integer", p)
		}
		fields[i] = f
	}
	return fields, nil
}
