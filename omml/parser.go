package omml

import (
	"fmt"
	"strings"

	"github.com/rgonek/docx-latex-converter/internal/oxml"
)

// Parse builds a markup tree from a serialized m:oMath or m:oMathPara
// subtree. Tags outside the recognized set are surfaced as KindUnknown with
// their children preserved, never dropped.
func Parse(data []byte) (*Node, error) {
	el, err := oxml.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse math markup: %w", err)
	}
	return FromElement(el), nil
}

// FromElement builds a markup tree from an already-decoded OOXML element.
func FromElement(el *oxml.Element) *Node {
	switch el.Local() {
	case "oMathPara", "oMath", "e", "num", "den", "deg", "sub", "sup", "lim", "fName", "box", "r":
		// Plain containers: their children concatenate with no wrapping.
		return groupOf(el)

	case "t":
		return &Node{Kind: KindText, Text: el.Text}

	case "f":
		return parseFraction(el)

	case "sSup", "sSub", "sSubSup":
		return parseSupSub(el)

	case "limLow":
		return parseLimit(el, false)

	case "limUpp":
		return parseLimit(el, true)

	case "rad":
		return parseRadical(el)

	case "nary":
		return parseNary(el)

	case "d":
		return parseDelimiter(el)

	case "func":
		return parseFunction(el)

	case "m":
		return parseMatrix(el)

	case "acc":
		return parseAccent(el)

	case "bar":
		return parseBar(el)

	case "groupChr":
		return parseGroupChar(el)

	case "sPre":
		return parsePreScript(el)

	case "eqArr":
		return parseEqArray(el)

	default:
		return &Node{Kind: KindUnknown, Tag: el.Local(), Items: parseChildren(el)}
	}
}

// isProperty reports whether an element only carries attributes for its
// parent (radPr, naryPr, dPr, accPr, rPr, ctrlPr, ...), never content.
func isProperty(el *oxml.Element) bool {
	return strings.HasSuffix(el.Local(), "Pr")
}

func parseChildren(el *oxml.Element) []Node {
	var items []Node
	for i := range el.Children {
		child := &el.Children[i]
		if isProperty(child) {
			continue
		}
		items = append(items, *FromElement(child))
	}
	return items
}

func groupOf(el *oxml.Element) *Node {
	items := parseChildren(el)
	if len(items) == 1 {
		return &items[0]
	}
	return &Node{Kind: KindGroup, Items: items}
}

func parseFraction(el *oxml.Element) *Node {
	n := &Node{Kind: KindFraction}
	for i := range el.Children {
		child := &el.Children[i]
		switch child.Local() {
		case "num":
			n.Num = FromElement(child)
		case "den":
			n.Den = FromElement(child)
		}
	}
	return n
}

func parseSupSub(el *oxml.Element) *Node {
	n := &Node{Kind: KindSupSub}
	for i := range el.Children {
		child := &el.Children[i]
		switch child.Local() {
		case "e":
			n.Base = FromElement(child)
		case "sub":
			n.Sub = FromElement(child)
		case "sup":
			n.Sup = FromElement(child)
		}
	}
	return n
}

// parseLimit maps limLow/limUpp onto the script node: the limit content
// becomes a subscript (lim below) or superscript (lim above) of the base.
func parseLimit(el *oxml.Element, upper bool) *Node {
	n := &Node{Kind: KindSupSub}
	for i := range el.Children {
		child := &el.Children[i]
		switch child.Local() {
		case "e":
			n.Base = FromElement(child)
		case "lim":
			if upper {
				n.Sup = FromElement(child)
			} else {
				n.Sub = FromElement(child)
			}
		}
	}
	return n
}

func parseRadical(el *oxml.Element) *Node {
	n := &Node{Kind: KindRadical}
	hideSet := false
	for i := range el.Children {
		child := &el.Children[i]
		switch child.Local() {
		case "radPr":
			if hide := child.Find("degHide"); hide != nil {
				hideSet = true
				// A degHide element without a val attribute means "hidden".
				val := hide.AttrOr("val", "1")
				n.HideDegree = val != "0" && val != "false" && val != "off"
			}
		case "deg":
			n.Deg = FromElement(child)
		case "e":
			n.Base = FromElement(child)
		}
	}
	if !hideSet {
		n.HideDegree = n.Deg == nil
	}
	return n
}

func parseNary(el *oxml.Element) *Node {
	n := &Node{Kind: KindNary, Char: "∫"}
	for i := range el.Children {
		child := &el.Children[i]
		switch child.Local() {
		case "naryPr":
			if chr := child.Find("chr"); chr != nil {
				n.Char = chr.AttrOr("val", "∫")
			}
		case "sub":
			n.Sub = FromElement(child)
		case "sup":
			n.Sup = FromElement(child)
		case "e":
			n.Base = FromElement(child)
		}
	}
	return n
}

func parseDelimiter(el *oxml.Element) *Node {
	n := &Node{Kind: KindDelimiter, Open: "(", Close: ")"}
	for i := range el.Children {
		child := &el.Children[i]
		switch child.Local() {
		case "dPr":
			if beg := child.Find("begChr"); beg != nil {
				n.Open = beg.AttrOr("val", "(")
			}
			if end := child.Find("endChr"); end != nil {
				n.Close = end.AttrOr("val", ")")
			}
		case "e":
			n.Base = FromElement(child)
		}
	}
	return n
}

func parseFunction(el *oxml.Element) *Node {
	n := &Node{Kind: KindFunction}
	for i := range el.Children {
		child := &el.Children[i]
		switch child.Local() {
		case "fName":
			n.Name = FromElement(child)
		case "e":
			n.Base = FromElement(child)
		}
	}
	return n
}

func parseMatrix(el *oxml.Element) *Node {
	n := &Node{Kind: KindMatrix}
	for i := range el.Children {
		child := &el.Children[i]
		if child.Local() != "mr" {
			continue
		}
		var row []Node
		for j := range child.Children {
			cell := &child.Children[j]
			if cell.Local() != "e" {
				continue
			}
			row = append(row, *FromElement(cell))
		}
		n.Rows = append(n.Rows, row)
	}
	return n
}

func parseAccent(el *oxml.Element) *Node {
	n := &Node{Kind: KindAccent, Char: "^"}
	for i := range el.Children {
		child := &el.Children[i]
		switch child.Local() {
		case "accPr":
			if chr := child.Find("chr"); chr != nil {
				n.Char = chr.AttrOr("val", "^")
			}
		case "e":
			n.Base = FromElement(child)
		}
	}
	return n
}

func parseBar(el *oxml.Element) *Node {
	n := &Node{Kind: KindBar}
	for i := range el.Children {
		child := &el.Children[i]
		if child.Local() == "e" {
			n.Base = FromElement(child)
		}
	}
	return n
}

func parseGroupChar(el *oxml.Element) *Node {
	n := &Node{Kind: KindGroupChar, Char: "⏟"}
	for i := range el.Children {
		child := &el.Children[i]
		switch child.Local() {
		case "groupChrPr":
			if chr := child.Find("chr"); chr != nil {
				n.Char = chr.AttrOr("val", "⏟")
			}
		case "e":
			n.Base = FromElement(child)
		}
	}
	return n
}

func parsePreScript(el *oxml.Element) *Node {
	n := &Node{Kind: KindPreScript}
	for i := range el.Children {
		child := &el.Children[i]
		switch child.Local() {
		case "sub":
			n.Sub = FromElement(child)
		case "sup":
			n.Sup = FromElement(child)
		case "e":
			n.Base = FromElement(child)
		}
	}
	return n
}

func parseEqArray(el *oxml.Element) *Node {
	n := &Node{Kind: KindEqArray}
	for i := range el.Children {
		child := &el.Children[i]
		if child.Local() == "e" {
			n.Items = append(n.Items, *FromElement(child))
		}
	}
	return n
}
