package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/ocolin/stockfolio/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command tree for shell completion.
// Run `COMP_INSTALL=1 folio` once to install it.
var completion = &complete.Command{
	Sub: map[string]*complete.Command{
		"buy":       {Flags: map[string]complete.Predictor{"t": predict.Something, "name": predict.Something, "s": predict.Something, "p": predict.Something, "d": predict.Something, "n": predict.Something}},
		"sell":      {Flags: map[string]complete.Predictor{"t": predict.Something, "name": predict.Something, "s": predict.Something, "p": predict.Something, "d": predict.Something, "n": predict.Something}},
		"tx":        {Flags: map[string]complete.Predictor{"head": predict.Something, "tail": predict.Something}},
		"edit":      {Flags: map[string]complete.Predictor{"id": predict.Something, "t": predict.Something, "name": predict.Something, "s": predict.Something, "p": predict.Something, "d": predict.Something, "n": predict.Something}},
		"delete":    {Flags: map[string]complete.Predictor{"id": predict.Something}},
		"account":   {Flags: map[string]complete.Predictor{"new": predict.Something, "switch": predict.Something, "rename": predict.Something, "delete": predict.Something, "y": predict.Nothing}},
		"cash":      {},
		"positions": {},
		"summary":   {},
		"history":   {Flags: map[string]complete.Predictor{"days": predict.Something}},
		"quote":     {},
		"watch":     {Flags: map[string]complete.Predictor{"interval": predict.Something}},
		"export":    {Flags: map[string]complete.Predictor{"csv": predict.Nothing, "all": predict.Nothing, "account": predict.Nothing, "o": predict.Files("*")}},
		"import":    {Flags: map[string]complete.Predictor{"y": predict.Nothing}, Args: predict.Files("*.json")},
		"assist":    {},
		"topic":     {},
	},
	Flags: map[string]complete.Predictor{
		"portfolio-file": predict.Files("*.json"),
		"mock-data":      predict.Nothing,
	},
}

func main() {
	completion.Complete("folio")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
