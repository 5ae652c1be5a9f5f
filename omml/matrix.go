package omml

import "strings"

// Conversion rules for the row-structured variants: matrices and equation
// arrays.

// convertMatrix converts exactly the cells present in each row. Rows with
// differing cell counts are not an error, but the condition is reported so a
// human can review the output.
func (s *state) convertMatrix(node *Node, depth int) (string, error) {
	rows := make([]string, 0, len(node.Rows))
	width := -1
	ragged := false

	for _, row := range node.Rows {
		if width < 0 {
			width = len(row)
		} else if len(row) != width {
			ragged = true
		}

		cells := make([]string, 0, len(row))
		for i := range row {
			cell, err := s.convertNode(&row[i], depth+1)
			if err != nil {
				return "", err
			}
			cells = append(cells, cell)
		}
		rows = append(rows, strings.Join(cells, " & "))
	}

	if ragged {
		s.addWarning(WarningRaggedMatrix, "matrix", "rows have differing cell counts")
	}

	env := s.config.MatrixEnvironment
	return `\begin{` + env + `}` + strings.Join(rows, ` \\ `) + `\end{` + env + `}`, nil
}

func (s *state) convertEqArray(node *Node, depth int) (string, error) {
	items := make([]string, 0, len(node.Items))
	for i := range node.Items {
		item, err := s.convertNode(&node.Items[i], depth+1)
		if err != nil {
			return "", err
		}
		items = append(items, item)
	}
	return `\begin{aligned}` + strings.Join(items, ` \\ `) + `\end{aligned}`, nil
}
