package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// Reporter writes operator-facing lines with color-coded severity.
// In text format all styling is dropped so piped output stays clean.
type Reporter struct {
	w      io.Writer
	format Format
}

// NewReporter creates a Reporter for the given writer and format
func NewReporter(w io.Writer, format Format) *Reporter {
	return &Reporter{w: w, format: format}
}

func (r *Reporter) styled() bool {
	return r.format == FormatTerminal
}

// Writer exposes the underlying writer for prompts that need it
func (r *Reporter) Writer() io.Writer {
	return r.w
}

// Title prints a section heading
func (r *Reporter) Title(text string) {
	if r.styled() {
		fmt.Fprintln(r.w, TitleStyle.Render(text))
		return
	}
	fmt.Fprintln(r.w, text)
}

// Infof prints an informational line
func (r *Reporter) Infof(format string, args ...interface{}) {
	r.line(InfoIndicator, format, args...)
}

// Successf prints a success line
func (r *Reporter) Successf(format string, args ...interface{}) {
	r.line(SuccessIndicator, format, args...)
}

// Warnf prints a warning line
func (r *Reporter) Warnf(format string, args ...interface{}) {
	r.line(WarningIndicator, format, args...)
}

// Errorf prints an error line
func (r *Reporter) Errorf(format string, args ...interface{}) {
	r.line(ErrorIndicator, format, args...)
}

// Plain prints an unstyled line
func (r *Reporter) Plain(text string) {
	fmt.Fprintln(r.w, text)
}

// Blank prints an empty line
func (r *Reporter) Blank() {
	fmt.Fprintln(r.w)
}

// Markdown renders markdown content appropriately for the format: rich
// terminal rendering via glamour, raw text otherwise.
func (r *Reporter) Markdown(content string) {
	if !r.styled() {
		fmt.Fprintln(r.w, content)
		return
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		fmt.Fprintln(r.w, content)
		return
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		fmt.Fprintln(r.w, content)
		return
	}
	fmt.Fprint(r.w, rendered)
}

func (r *Reporter) line(indicator string, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if r.styled() {
		fmt.Fprintf(r.w, "%s %s\n", indicator, msg)
		return
	}
	fmt.Fprintln(r.w, msg)
}
