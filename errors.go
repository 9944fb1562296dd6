// errors.go: parser diagnostics and caret-snippet rendering
//
// The parser collects one Diag per reported error (panic mode suppresses the
// rest until synchronization). Diag.String renders the classic single-line
// form; Diag.Pretty renders a multi-line snippet with numbered context lines
// and a caret under the offending column, suitable for terminals:
//
//	[Line 3, Column 12] Error at ')': Expected expression
//
//	   2 | y = (1 + 2
//	   3 |            )
//	     |           ^
//	   4 | z = 3
//
// ParseError bundles all diagnostics of one parse into a single error value.
package lamc

import (
	"fmt"
	"strings"
)

// Diag is one parser diagnostic. Tok is the token type the error was
// reported at, or -1 when the diagnostic originated in the lexer (the
// original prints no "at ..." fragment in that case). Incomplete marks
// errors raised at EOF in interactive mode.
type Diag struct {
	Line       int
	Col        int
	Tok        TokenType // -1 when lexer-origin
	Lexeme     string
	Msg        string
	Incomplete bool
}

func (d Diag) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[Line %d, Column %d] Error", d.Line, d.Col)
	switch {
	case d.Tok == TokenEOF:
		b.WriteString(" at end")
	case d.Tok < 0:
		// lexer-origin: position only
	default:
		fmt.Fprintf(&b, " at '%s'", d.Lexeme)
	}
	fmt.Fprintf(&b, ": %s", d.Msg)
	return b.String()
}

// Pretty renders the diagnostic as a caret-annotated snippet of src, with up
// to one line of context before and after. Out-of-range coordinates are
// clamped so rendering never fails.
func (d Diag) Pretty(src string) string {
	lines := strings.Split(src, "\n")
	line, col := d.Line, d.Col
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}

	var b strings.Builder
	b.WriteString(d.String())
	b.WriteString("\n\n")
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}

// ParseError is the error returned by Parse when the input had any syntax or
// lexical error. It carries every reported diagnostic in source order.
type ParseError struct {
	Diags []Diag
}

func (e *ParseError) Error() string {
	if len(e.Diags) == 0 {
		return "parse failed"
	}
	parts := make([]string, len(e.Diags))
	for i, d := range e.Diags {
		parts[i] = d.String()
	}
	return strings.Join(parts, "\n")
}

// IsIncomplete reports whether err is a ParseError whose only cause is that
// input ended early (every diagnostic was raised at EOF in interactive
// mode). REPLs use this to prompt for continuation lines.
func IsIncomplete(err error) bool {
	pe, ok := err.(*ParseError)
	if !ok || len(pe.Diags) == 0 {
		return false
	}
	for _, d := range pe.Diags {
		if !d.Incomplete {
			return false
		}
	}
	return true
}
