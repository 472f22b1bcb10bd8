package ui

import (
	"io"

	"github.com/fatih/color"
)

var (
	HeaderColor  = color.New(color.FgBlue, color.Bold)
	InfoColor    = color.New(color.FgCyan)
	SuccessColor = color.New(color.FgGreen)
	WarningColor = color.New(color.FgYellow)
	ErrorColor   = color.New(color.FgRed)
	PromptColor  = color.New(color.FgMagenta)
)

// Printer writes styled status messages to a single destination. The
// destination is injectable so interactive runs can be scripted in tests.
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) Header(format string, a ...interface{}) {
	HeaderColor.Fprintf(p.out, format+"\n", a...)
}

func (p *Printer) Info(format string, a ...interface{}) {
	InfoColor.Fprintf(p.out, format+"\n", a...)
}

func (p *Printer) Success(format string, a ...interface{}) {
	SuccessColor.Fprintf(p.out, format+"\n", a...)
}

func (p *Printer) Warning(format string, a ...interface{}) {
	WarningColor.Fprintf(p.out, format+"\n", a...)
}

func (p *Printer) Error(format string, a ...interface{}) {
	ErrorColor.Fprintf(p.out, format+"\n", a...)
}

// Prompt returns a styled prompt label without a trailing newline.
func (p *Printer) Prompt(format string, a ...interface{}) string {
	return PromptColor.Sprintf(format, a...)
}
