package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/semmy-space/credman/internal/config"
	"github.com/semmy-space/credman/internal/output"
	"github.com/semmy-space/credman/pkg/wincred"
)

// openStore opens the platform credential store, translating the
// platform gate into a CLI error.
func openStore() (*wincred.Store, error) {
	store, err := wincred.New()
	if err != nil {
		return nil, output.FromStoreError(err)
	}
	return store, nil
}

// SetCmd implements the set command
type SetCmd struct {
	Target   string `arg:"" help:"Target name to store the credential under"`
	User     string `help:"Username to store with the credential" short:"u"`
	Comment  string `help:"Free-form comment" short:"c"`
	Persist  string `help:"Persist scope" enum:"session,local-machine,enterprise," default:""`
	Password string `help:"Secret value (insecure: prefer the prompt or stdin)" short:"p"`
}

// Run executes the set command
func (cmd *SetCmd) Run(cfg *config.Config, fp *FormatterProvider, globals *Globals) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	// Persist scope: flag > config > local-machine default
	scope := cmd.Persist
	if scope == "" {
		scope = cfg.Persist
	}
	if scope == "" {
		scope = "local-machine"
	}
	persist, err := persistTag(scope)
	if err != nil {
		return &output.CLIError{Message: err.Error(), ExitCode: output.ExitUsage}
	}

	secret, err := readSecret(cmd.Password, globals.NoInput)
	if err != nil {
		return &output.CLIError{
			Message:  fmt.Sprintf("Failed to read secret: %v", err),
			ExitCode: output.ExitUsage,
		}
	}

	cred := wincred.Credential{
		"Type":           wincred.CredTypeGeneric,
		"TargetName":     fullTarget(cfg, cmd.Target),
		"Persist":        persist,
		"UserName":       cmd.User,
		"CredentialBlob": secret,
		"Comment":        cmd.Comment,
	}
	if err := store.Write(cred, 0); err != nil {
		return output.FromStoreError(err)
	}

	fmt.Fprintf(os.Stderr, "Stored credential %q\n", fullTarget(cfg, cmd.Target))
	return nil
}

// GetCmd implements the get command
type GetCmd struct {
	Target     string `arg:"" help:"Target name to read"`
	ShowSecret bool   `help:"Print the secret instead of redacting it"`
}

// Run executes the get command
func (cmd *GetCmd) Run(cfg *config.Config, fp *FormatterProvider) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	cred, err := store.Read(fullTarget(cfg, cmd.Target), wincred.CredTypeGeneric)
	if err != nil {
		return output.FromStoreError(err)
	}

	row := credentialRow(cred, cmd.ShowSecret)
	return fp.Formatter.Print(row, []string{"target", "user", "type", "persist", "comment", "secret"})
}

// RmCmd implements the rm command
type RmCmd struct {
	Target string `arg:"" help:"Target name to delete"`
}

// Run executes the rm command
func (cmd *RmCmd) Run(cfg *config.Config, fp *FormatterProvider, globals *Globals) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	target := fullTarget(cfg, cmd.Target)
	if !globals.Force {
		if globals.NoInput {
			return &output.CLIError{
				Message:  "Deletion requires --force when prompts are disabled",
				ExitCode: output.ExitUsage,
			}
		}
		ok, err := confirm(fmt.Sprintf("Delete credential %q? [y/N] ", target))
		if err != nil {
			return &output.CLIError{Message: err.Error(), ExitCode: output.ExitGeneral}
		}
		if !ok {
			fmt.Fprintln(os.Stderr, "Aborted")
			return nil
		}
	}

	if err := store.Delete(target, wincred.CredTypeGeneric); err != nil {
		return output.FromStoreError(err)
	}

	fmt.Fprintf(os.Stderr, "Deleted credential %q\n", target)
	return nil
}

// ListCmd implements the list command
type ListCmd struct {
	Filter string `help:"Target name prefix filter, ending in * (passed to the store as-is)" short:"f"`
}

// Run executes the list command
func (cmd *ListCmd) Run(cfg *config.Config, fp *FormatterProvider) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	creds, err := store.Enumerate(cmd.Filter, 0)
	if err != nil {
		// An empty store is not an error worth failing the command over
		if errors.Is(err, wincred.ErrNotFound) {
			creds = nil
		} else {
			return output.FromStoreError(err)
		}
	}

	rows := make([]map[string]string, 0, len(creds))
	for _, cred := range creds {
		rows = append(rows, credentialRow(cred, false))
	}

	columns := []output.Column{
		{Name: "Target", Key: "target"},
		{Name: "User", Key: "user"},
		{Name: "Persist", Key: "persist"},
		{Name: "Comment", Key: "comment", Width: 40},
	}
	return fp.Formatter.PrintList(rows, columns)
}

// readSecret obtains the secret value: the --password flag wins, then a
// non-TTY stdin is read whole, then an interactive prompt.
func readSecret(flagValue string, noInput bool) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return strings.TrimRight(string(data), "\r\n"), nil
	}

	if noInput {
		return "", errors.New("no secret provided and prompts are disabled")
	}

	fmt.Fprint(os.Stderr, "Secret: ")
	data, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// confirm asks a yes/no question on stderr and reads the answer from stdin.
func confirm(prompt string) (bool, error) {
	fmt.Fprint(os.Stderr, prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
