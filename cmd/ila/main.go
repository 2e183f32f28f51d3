// Command ila is the CLI front-end over the filterdef package: it exposes
// classify, slice, strip, and compare as urfave/cli subcommands, with
// per-command option parsing delegated to go-flags.
package main

import (
	"fmt"
	"os"

	"github.com/filterdef/filterdef/util"
	"github.com/urfave/cli"
)

var version string

func main() {
	util.InitSlog()

	app := cli.NewApp()
	app.Name = "ila"
	app.HelpName = "ila"
	app.Version = version
	app.Usage = "induce and apply categorical classification rules"
	app.Commands = []cli.Command{
		classifyCommand(),
		sliceCommand(),
		stripCommand(),
		compareCommand(),
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "ila:", err)
		os.Exit(1)
	}
}
