package omml

// Mode selects the outer wrapping of a converted equation. It is chosen once
// per equation from the markup's placement in the source document and never
// changes during the recursive descent.
type Mode string

const (
	// ModeInline wraps the equation for use within a line of running text.
	ModeInline Mode = "inline"
	// ModeDisplay wraps the equation as a standalone typeset block.
	ModeDisplay Mode = "display"
)

// Wrap applies the math-mode delimiters for the given mode. It performs no
// other transformation, so callers embedding a fragment inside a larger
// expression can skip it and use ConvertFragment instead.
func Wrap(mode Mode, body string) string {
	if mode == ModeDisplay {
		return `\[` + body + `\]`
	}
	return "$" + body + "$"
}
