package docx

import (
	"strconv"
	"strings"

	"github.com/rgonek/docx-latex-converter/internal/oxml"
)

// listEnvironment reports whether the paragraph is a list item and which
// LaTeX environment it belongs to. Numbering definitions are not resolved;
// odd numbering ids map to enumerate, even ones to itemize.
// TODO: resolve w:numId against word/numbering.xml instead of the parity rule.
func listEnvironment(p *oxml.Element) (string, bool) {
	pPr := p.Find("pPr")
	if pPr == nil {
		return "", false
	}
	numPr := pPr.Find("numPr")
	if numPr == nil {
		return "", false
	}

	id := 0
	if numID := numPr.Find("numId"); numID != nil {
		id, _ = strconv.Atoi(numID.AttrOr("val", "0"))
	}
	if id%2 == 1 {
		return "enumerate", true
	}
	return "itemize", true
}

// sectionCommand maps a HeadingN paragraph style to its sectioning command.
func sectionCommand(style string) (string, bool) {
	if !strings.HasPrefix(style, "Heading") {
		return "", false
	}

	level := 1
	if n, err := strconv.Atoi(strings.TrimPrefix(style, "Heading")); err == nil {
		level = n
	}

	switch level {
	case 1:
		return `\section`, true
	case 2:
		return `\subsection`, true
	case 3:
		return `\subsubsection`, true
	case 4:
		return `\paragraph`, true
	default:
		return `\subparagraph`, true
	}
}
