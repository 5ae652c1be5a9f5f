package docx

import (
	"strings"

	"github.com/rgonek/docx-latex-converter/internal/oxml"
	"github.com/rgonek/docx-latex-converter/omml"
)

// convertBody walks the document body in order, tracking list state across
// paragraphs so consecutive list items share one environment.
func (d *document) convertBody(body *oxml.Element) (string, error) {
	if body == nil {
		return "", nil
	}

	var content []string
	inList := false
	listEnv := ""

	endList := func() {
		if inList {
			content = append(content, `\end{`+listEnv+`}`)
			inList = false
		}
	}

	for i := range body.Children {
		el := &body.Children[i]
		switch el.Local() {
		case "p":
			text, style, err := d.convertParagraph(el)
			if err != nil {
				return "", err
			}

			if env, ok := listEnvironment(el); ok {
				if !inList {
					content = append(content, `\begin{`+env+`}`)
					inList = true
					listEnv = env
				}
				content = append(content, `    \item `+text)
				continue
			}
			endList()

			if cmd, ok := sectionCommand(style); ok {
				content = append(content, cmd+`{`+text+`}`)
				continue
			}
			if style == "Title" {
				content = append(content, `\title{`+text+`}`)
				continue
			}
			if strings.TrimSpace(text) != "" {
				content = append(content, text+"\n")
			}

		case "tbl":
			endList()
			table, err := d.convertTable(el)
			if err != nil {
				return "", err
			}
			content = append(content, table)
		}
	}
	endList()

	return strings.Join(content, "\n"), nil
}

// convertParagraph returns the paragraph's LaTeX content and its style name.
func (d *document) convertParagraph(p *oxml.Element) (string, string, error) {
	style := ""
	if pPr := p.Find("pPr"); pPr != nil {
		if pStyle := pPr.Find("pStyle"); pStyle != nil {
			style = pStyle.AttrOr("val", "")
		}
	}

	var sb strings.Builder
	for i := range p.Children {
		el := &p.Children[i]
		switch el.Local() {
		case "r":
			run, err := d.convertRun(el)
			if err != nil {
				return "", "", err
			}
			sb.WriteString(run)

		case "oMathPara":
			math, err := d.convertMath(el, omml.ModeDisplay)
			if err != nil {
				return "", "", err
			}
			sb.WriteString("\n" + math + "\n")

		case "oMath":
			math, err := d.convertMath(el, omml.ModeInline)
			if err != nil {
				return "", "", err
			}
			sb.WriteString(math)

		case "hyperlink":
			link, err := d.convertHyperlink(el)
			if err != nil {
				return "", "", err
			}
			sb.WriteString(link)
		}
	}

	return sb.String(), style, nil
}

// convertRun converts one text run, applying its formatting flags from the
// inside out: strikethrough, underline, italic, bold.
func (d *document) convertRun(r *oxml.Element) (string, error) {
	bold, italic, underline, strike := false, false, false, false
	if rPr := r.Find("rPr"); rPr != nil {
		bold = rPr.Find("b") != nil
		italic = rPr.Find("i") != nil
		underline = rPr.Find("u") != nil
		strike = rPr.Find("strike") != nil
	}

	var sb strings.Builder
	for i := range r.Children {
		el := &r.Children[i]
		switch el.Local() {
		case "t":
			sb.WriteString(escapeText(el.Text))
		case "drawing":
			sb.WriteString(d.convertDrawing(el))
		case "oMath":
			math, err := d.convertMath(el, omml.ModeInline)
			if err != nil {
				return "", err
			}
			sb.WriteString(math)
		}
	}

	out := sb.String()
	if strike {
		out = `\sout{` + out + `}`
	}
	if underline {
		out = `\underline{` + out + `}`
	}
	if italic {
		out = `\textit{` + out + `}`
	}
	if bold {
		out = `\textbf{` + out + `}`
	}
	return out, nil
}

// convertMath converts one embedded formula, aggregating its warnings into
// the document result.
func (d *document) convertMath(el *oxml.Element, mode omml.Mode) (string, error) {
	result, err := d.math.Convert(omml.FromElement(el), mode)
	if err != nil {
		return "", err
	}
	d.warnings = append(d.warnings, result.Warnings...)
	return result.LaTeX, nil
}

func (d *document) convertHyperlink(el *oxml.Element) (string, error) {
	var sb strings.Builder
	for i := range el.Children {
		child := &el.Children[i]
		if child.Local() != "r" {
			continue
		}
		run, err := d.convertRun(child)
		if err != nil {
			return "", err
		}
		sb.WriteString(run)
	}
	text := sb.String()

	if id := el.AttrOr("id", ""); id != "" {
		if url, ok := d.rels[id]; ok {
			return `\href{` + url + `}{` + text + `}`, nil
		}
	}
	return text, nil
}
