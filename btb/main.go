package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/btcbasis/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	sub := make(map[string]*complete.Command)
	for _, c := range cmd.Commands {
		commander.Register(c, "")
		sub[c.Name()] = &complete.Command{Flags: map[string]complete.Predictor{"i": predict.Files("*.csv")}}
	}
	// no-op unless invoked by the shell completion hook.
	(&complete.Command{Sub: sub}).Complete("btb")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
