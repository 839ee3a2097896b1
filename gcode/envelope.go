package gcode

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultTitle is the first comment line of every generated file.
const DefaultTitle = "Generated by the CNC Halftone Wizard."

// TimestampLayout is the layout of the "Generated at" comment.
const TimestampLayout = "15:04:05 02 Jan 2006"

// Envelope holds the machine-specific text placed around a program.
type Envelope struct {
	// Title is written as the first comment. Empty means DefaultTitle.
	Title string

	// Generated is written as the second comment. The zero time omits it.
	Generated time.Time

	// Preamble is free text copied verbatim after the comments, for
	// unit selection, work offsets and the like.
	Preamble string

	// Feed is the cutting feed rate (F word).
	Feed float64

	// Speed is the spindle speed (S word).
	Speed float64

	// Coolant turns coolant on (M08) before and off (M09) after the program.
	Coolant bool
}

// writeHeader writes everything that precedes the motion blocks.
func (e Envelope) writeHeader(w *bufio.Writer, f Formatter) {
	title := e.Title
	if title == "" {
		title = DefaultTitle
	}
	fmt.Fprintf(w, "(%s)\n", comment(title))
	if !e.Generated.IsZero() {
		fmt.Fprintf(w, "(Generated at %s)\n", e.Generated.Format(TimestampLayout))
	}
	w.WriteString(e.Preamble)
	w.WriteByte('\n')
	fmt.Fprintf(w, "F%s\n", f.Number(e.Feed))
	fmt.Fprintf(w, "S%s\n", f.Number(e.Speed))
	if e.Coolant {
		w.WriteString("M08\n")
	}
}

// writeFooter writes everything that follows the motion blocks.
func (e Envelope) writeFooter(w *bufio.Writer) {
	if e.Coolant {
		w.WriteString("M09\n")
	}
	w.WriteString("M30\n")
}

// Write writes the complete program, header and footer included, to w.
func (e Envelope) Write(w io.Writer, p *Program, f Formatter) error {
	bw := bufio.NewWriter(w)
	e.writeHeader(bw, f)
	if p != nil {
		if err := p.Encode(bw, f); err != nil {
			return err
		}
	}
	e.writeFooter(bw)
	return bw.Flush()
}

// WriteFile writes the complete program to path, replacing any existing
// file. Errors opening the file wrap the underlying *os.PathError.
func (e Envelope) WriteFile(path string, p *Program, f Formatter) error {
	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("gcode: could not open %s for writing: %w", path, err)
	}

	if err := e.Write(file, p, f); err != nil {
		_ = file.Close()
		return fmt.Errorf("gcode: write %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("gcode: close %s: %w", path, err)
	}
	return nil
}

// comment makes s safe inside a parenthesized comment. Controllers end a
// comment at the first ')' and do not allow nesting.
func comment(s string) string {
	return strings.NewReplacer("(", "[", ")", "]", "\n", " ").Replace(s)
}
