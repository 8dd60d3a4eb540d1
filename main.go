package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/semmy-space/credman/internal/cli"
	"github.com/semmy-space/credman/internal/output"
)

var (
	version = "dev"
)

func main() {
	cliInstance := &cli.CLI{}
	ctx := kong.Parse(cliInstance,
		kong.Name("credman"),
		kong.Description("Store, read, list and delete secrets in the Windows credential store"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	err := ctx.Run()
	if err != nil {
		if cliErr, ok := err.(*output.CLIError); ok {
			formatter := output.New(cliInstance.ResolvedOutput(""))
			formatter.PrintError(err)
			if cliErr.Hint != "" {
				formatter.PrintHint(cliErr.Hint)
			}
			os.Exit(cliErr.ExitCode)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(output.ExitGeneral)
	}
}
