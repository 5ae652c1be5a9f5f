package docx

import (
	"strings"

	"github.com/rgonek/docx-latex-converter/internal/oxml"
)

// convertTable renders a table as a centered tabular with uniform centered
// columns. The column count comes from the first row.
func (d *document) convertTable(tbl *oxml.Element) (string, error) {
	rows := tbl.FindAll("tr")
	if len(rows) == 0 {
		return "", nil
	}

	numCols := len(rows[0].FindAll("tc"))

	latexRows := make([]string, 0, len(rows))
	for _, row := range rows {
		var cells []string
		for _, cell := range row.FindAll("tc") {
			var parts []string
			for _, p := range cell.FindAll("p") {
				text, _, err := d.convertParagraph(p)
				if err != nil {
					return "", err
				}
				parts = append(parts, text)
			}
			cells = append(cells, strings.Join(parts, " "))
		}
		latexRows = append(latexRows, strings.Join(cells, " & ")+` \\`)
	}

	colSpec := "|" + strings.Repeat("c|", numCols)

	var sb strings.Builder
	sb.WriteString("\n\\begin{table}[htbp]\n")
	sb.WriteString("    \\centering\n")
	sb.WriteString("    \\begin{tabular}{" + colSpec + "}\n")
	sb.WriteString("    \\hline\n")
	sb.WriteString("    " + strings.Join(latexRows, "\n    ") + "\n")
	sb.WriteString("    \\hline\n")
	sb.WriteString("    \\end{tabular}\n")
	sb.WriteString("    \\caption{Table}\n")
	sb.WriteString("\\end{table}\n")
	return sb.String(), nil
}
