package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/termenv"
)

// Formatter is the interface for output formatting
type Formatter interface {
	Print(item map[string]string, order []string) error
	PrintList(items []map[string]string, columns []Column) error
	PrintError(err error)
	PrintHint(msg string)
}

// Column defines a column for table/list output
type Column struct {
	Name  string // Display name
	Key   string // Map key
	Width int    // Width for rich mode (0 = auto)
}

// New creates a formatter for the specified mode
func New(mode string) Formatter {
	switch mode {
	case "json":
		return &jsonFormatter{}
	case "plain":
		return &plainFormatter{}
	case "rich":
		profile := termenv.ColorProfile()
		return &richFormatter{profile: profile}
	default:
		return &plainFormatter{}
	}
}

// jsonFormatter outputs JSON to stdout
type jsonFormatter struct{}

func (f *jsonFormatter) Print(item map[string]string, order []string) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(item)
}

func (f *jsonFormatter) PrintList(items []map[string]string, columns []Column) error {
	envelope := map[string]any{
		"data":  items,
		"count": len(items),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(envelope)
}

func (f *jsonFormatter) PrintError(err error) {
	errObj := map[string]string{"error": err.Error()}
	enc := json.NewEncoder(os.Stderr)
	enc.SetIndent("", "  ")
	enc.Encode(errObj)
}

func (f *jsonFormatter) PrintHint(msg string) {
	// Hints are omitted in JSON mode to keep output machine-readable
}

// plainFormatter outputs tab-separated values
type plainFormatter struct{}

func (f *plainFormatter) Print(item map[string]string, order []string) error {
	for _, key := range order {
		fmt.Fprintf(os.Stdout, "%s\t%s\n", key, item[key])
	}
	return nil
}

func (f *plainFormatter) PrintList(items []map[string]string, columns []Column) error {
	for _, item := range items {
		values := make([]string, len(columns))
		for i, col := range columns {
			values[i] = item[col.Key]
		}
		fmt.Fprintln(os.Stdout, strings.Join(values, "\t"))
	}
	return nil
}

func (f *plainFormatter) PrintError(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}

func (f *plainFormatter) PrintHint(msg string) {
	fmt.Fprintf(os.Stderr, "hint: %s\n", msg)
}

// richFormatter outputs styled text for interactive terminals
type richFormatter struct {
	profile termenv.Profile
}

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	errStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	hintStyle  = lipgloss.NewStyle().Faint(true)
)

func (f *richFormatter) Print(item map[string]string, order []string) error {
	width := 0
	for _, key := range order {
		if len(key) > width {
			width = len(key)
		}
	}
	for _, key := range order {
		label := labelStyle.Render(PadString(key, width))
		fmt.Fprintf(os.Stdout, "%s  %s\n", label, item[key])
	}
	return nil
}

func (f *richFormatter) PrintList(items []map[string]string, columns []Column) error {
	if len(items) == 0 {
		fmt.Fprintln(os.Stderr, hintStyle.Render("no credentials"))
		return nil
	}
	RenderTable(os.Stdout, columns, items)
	return nil
}

func (f *richFormatter) PrintError(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", errStyle.Render("error:"), err)
}

func (f *richFormatter) PrintHint(msg string) {
	fmt.Fprintln(os.Stderr, hintStyle.Render("hint: "+msg))
}
