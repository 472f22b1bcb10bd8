// Package app drives a single validate-and-fix run over one file: prompt
// for a path, detect the format, validate, repair on failure, preview the
// diff and write a sibling fixed file after confirmation.
package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"fixdoc/cli"
	"fixdoc/internal/detect"
	"fixdoc/internal/diff"
	"fixdoc/internal/fixer"
	"fixdoc/internal/fs"
	"fixdoc/internal/model"
	"fixdoc/internal/ui"
	"fixdoc/internal/validate"
)

// ConfirmFunc decides whether a presented diff should be saved. It is a
// separate capability so tests can answer deterministically without a
// terminal.
type ConfirmFunc func(diffText string) bool

// App holds the state of one run. Nothing survives past Run: all content is
// held in memory and discarded at process exit.
type App struct {
	cfg     *cli.Config
	in      *bufio.Reader
	out     io.Writer
	ui      *ui.Printer
	confirm ConfirmFunc
}

// New creates an App bound to the real terminal.
func New(cfg *cli.Config) *App {
	return NewWithIO(cfg, os.Stdin, os.Stdout)
}

// NewWithIO creates an App reading prompt answers from in and writing to
// out, so runs can be scripted.
func NewWithIO(cfg *cli.Config, in io.Reader, out io.Writer) *App {
	a := &App{
		cfg: cfg,
		in:  bufio.NewReader(in),
		out: out,
		ui:  ui.NewPrinter(out),
	}
	a.confirm = a.confirmDiff
	return a
}

// SetConfirm replaces the diff confirmation capability.
func (a *App) SetConfirm(f ConfirmFunc) {
	a.confirm = f
}

// Run executes a single pass over one file. It returns an error only for
// conditions the run cannot recover from, such as JSON the heuristics
// cannot repair; a missing file or an unsupported type end the run with a
// message and no error.
func (a *App) Run() error {
	path := a.cfg.Path
	if path == "" {
		path = a.prompt("Enter path to your JSON/YAML/XML file: ")
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		a.ui.Error("File not found.")
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	content := string(data)

	format, err := detect.Detect(path)
	if err != nil {
		return fmt.Errorf("failed to detect file type: %w", err)
	}

	switch format {
	case model.FormatJSON:
		return a.handleJSON(path, content)
	case model.FormatYAML:
		return a.handleYAML(path, content)
	case model.FormatXML:
		return a.handleXML(path, content)
	default:
		a.ui.Error("Unsupported file type.")
		return nil
	}
}

func (a *App) handleJSON(path, content string) error {
	a.ui.Header("Detected: %s", model.FormatJSON)

	if validate.JSON(content) {
		a.ui.Success("JSON is valid.")
		if !a.askWrap() {
			a.ui.Info("No changes made to the file.")
			return nil
		}
		return a.writeFixed(path, a.wrap(content))
	}

	a.ui.Warning("JSON is invalid. Fixing...")
	fixed, err := fixer.JSON(content)
	if err != nil {
		return err
	}
	if !a.presentDiff(content, fixed) {
		return nil
	}
	if a.askWrap() {
		fixed = a.wrap(fixed)
	}
	return a.writeFixed(path, fixed)
}

func (a *App) handleYAML(path, content string) error {
	a.ui.Header("Detected: %s", model.FormatYAML)

	if validate.YAML(content) {
		a.ui.Success("YAML is valid.")
		return nil
	}

	a.ui.Warning("YAML is invalid. Fixing...")
	fixed := fixer.YAML(content)
	if !a.presentDiff(content, fixed) {
		return nil
	}
	return a.writeFixed(path, fixed)
}

func (a *App) handleXML(path, content string) error {
	a.ui.Header("Detected: %s", model.FormatXML)

	if validate.XML(content) {
		a.ui.Success("XML is valid.")
		return nil
	}

	a.ui.Warning("XML is invalid. Fixing...")
	fixed := fixer.XML(content)
	if !a.presentDiff(content, fixed) {
		return nil
	}
	return a.writeFixed(path, fixed)
}

// presentDiff shows the unified diff between the original and fixed
// content and reports whether the fixed version should be saved. A diff
// with no changes never prompts and never saves.
func (a *App) presentDiff(original, fixed string) bool {
	text, err := diff.Unified(original, fixed)
	if err != nil {
		a.ui.Error("Failed to compute diff: %v", err)
		return false
	}
	if strings.TrimSpace(text) == "" {
		a.ui.Info("No differences detected. No need to save.")
		return false
	}
	if !a.confirm(text) {
		a.ui.Warning("File not saved.")
		return false
	}
	return true
}

// confirmDiff is the default terminal implementation of ConfirmFunc.
func (a *App) confirmDiff(text string) bool {
	a.ui.Header("\n--- Differences Detected ---")
	fmt.Fprint(a.out, diff.Colorize(text))
	if a.cfg.Yes {
		return true
	}
	answer := a.prompt("\nSave the fixed file? (y/n): ")
	return strings.EqualFold(answer, "y")
}

// askWrap offers the opt-in array wrap. A blanket --yes skips the offer:
// wrapping changes the document shape and must be asked for explicitly.
func (a *App) askWrap() bool {
	if a.cfg.Yes {
		return false
	}
	answer := a.prompt("Wrap JSON into an array [ ]? (y/n): ")
	return strings.EqualFold(answer, "y")
}

// wrap applies the array wrap, falling back to the input unchanged when the
// content does not parse.
func (a *App) wrap(content string) string {
	wrapped, err := fixer.WrapJSONInArray(content)
	if err != nil {
		a.ui.Warning("Error wrapping JSON into array: %v", err)
	}
	return wrapped
}

func (a *App) writeFixed(path, content string) error {
	out, err := fs.WriteFixed(path, content)
	if err != nil {
		return fmt.Errorf("failed to save fixed file: %w", err)
	}
	a.ui.Success("Fixed file saved at: %s", out)
	return nil
}

func (a *App) prompt(label string) string {
	fmt.Fprint(a.out, a.ui.Prompt("%s", label))
	line, _ := a.in.ReadString('\n')
	return strings.TrimSpace(line)
}
