package cli

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/semmy-space/credman/internal/config"
	"github.com/semmy-space/credman/internal/output"
)

// FormatterProvider wraps the formatter interface for Kong binding
type FormatterProvider struct {
	Formatter output.Formatter
}

// CLI is the root command structure
type CLI struct {
	Globals

	Set     SetCmd     `cmd:"" help:"Store a credential"`
	Get     GetCmd     `cmd:"" help:"Read a stored credential"`
	Rm      RmCmd      `cmd:"" help:"Delete a stored credential"`
	List    ListCmd    `cmd:"" help:"List stored credentials"`
	Config  ConfigCmd  `cmd:"" help:"Configuration commands"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// BeforeApply hook runs before any command execution
// It loads config, creates the formatter, and binds dependencies
func (c *CLI) BeforeApply(ctx *kong.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return &output.CLIError{
			Message:  fmt.Sprintf("Failed to load config: %v", err),
			ExitCode: output.ExitConfigError,
		}
	}

	formatter := &FormatterProvider{
		Formatter: output.New(c.ResolvedOutput(cfg.DefaultOutput)),
	}

	ctx.Bind(cfg)
	ctx.Bind(formatter)
	ctx.Bind(&c.Globals)

	return nil
}

// VersionCmd shows version information
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *kong.Context) error {
	fmt.Printf("credman %s\n", ctx.Model.Vars()["version"])
	return nil
}
