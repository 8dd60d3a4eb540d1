package cli

import (
	"os"

	"golang.org/x/term"
)

// Globals holds global flags available to all commands
type Globals struct {
	Output  string `help:"Output format" default:"auto" enum:"json,plain,rich,auto" short:"o" env:"CREDMAN_OUTPUT"`
	Verbose bool   `help:"Verbose output" short:"v" env:"CREDMAN_VERBOSE"`
	NoInput bool   `help:"Disable interactive prompts (fail instead)" env:"CREDMAN_NO_INPUT"`
	Force   bool   `help:"Skip confirmation prompts for destructive operations" env:"CREDMAN_FORCE"`
}

// ResolvedOutput returns the effective output mode
// "auto" detects TTY: if stdout is TTY -> rich, else -> plain
func (g *Globals) ResolvedOutput(configDefault string) string {
	if g.Output != "auto" {
		return g.Output
	}
	if configDefault != "" {
		return configDefault
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		return "rich"
	}

	return "plain"
}
