package omml

import "strings"

// Conversion rules for the bracketing and decoration variants: fractions,
// radicals, delimiters, functions, accents, overlines and group characters.

func (s *state) convertFraction(node *Node, depth int) (string, error) {
	num, err := s.convertChild(node.Num, "fraction", "numerator", depth+1)
	if err != nil {
		return "", err
	}
	den, err := s.convertChild(node.Den, "fraction", "denominator", depth+1)
	if err != nil {
		return "", err
	}
	return `\frac{` + num + `}{` + den + `}`, nil
}

// convertRadical renders \sqrt{...} or \sqrt[deg]{...}. The hide-degree flag
// alone selects the template; the two forms are never interchanged.
func (s *state) convertRadical(node *Node, depth int) (string, error) {
	radicand, err := s.convertChild(node.Base, "radical", "radicand", depth+1)
	if err != nil {
		return "", err
	}
	if node.HideDegree {
		return `\sqrt{` + radicand + `}`, nil
	}
	degree, err := s.convertChild(node.Deg, "radical", "degree", depth+1)
	if err != nil {
		return "", err
	}
	return `\sqrt[` + degree + `]{` + radicand + `}`, nil
}

func (s *state) convertDelimiter(node *Node, depth int) (string, error) {
	body, err := s.convertChild(node.Base, "delimiter", "body", depth+1)
	if err != nil {
		return "", err
	}
	return openDelim(node.Open) + " " + body + " " + closeDelim(node.Close), nil
}

func (s *state) convertFunction(node *Node, depth int) (string, error) {
	name, err := s.convertChild(node.Name, "function", "name", depth+1)
	if err != nil {
		return "", err
	}
	argument, err := s.convertChild(node.Base, "function", "argument", depth+1)
	if err != nil {
		return "", err
	}

	name = strings.TrimSpace(name)
	if stdFunctions[strings.ToLower(name)] {
		return `\` + strings.ToLower(name) + " " + argument, nil
	}
	return `\mathrm{` + name + `} ` + argument, nil
}

func (s *state) convertAccent(node *Node, depth int) (string, error) {
	base, err := s.convertChild(node.Base, "accent", "base", depth+1)
	if err != nil {
		return "", err
	}
	return accentMacro(node.Char) + `{` + base + `}`, nil
}

func (s *state) convertBar(node *Node, depth int) (string, error) {
	base, err := s.convertChild(node.Base, "bar", "base", depth+1)
	if err != nil {
		return "", err
	}
	return `\overline{` + base + `}`, nil
}

func (s *state) convertGroupChar(node *Node, depth int) (string, error) {
	base, err := s.convertChild(node.Base, "group character", "base", depth+1)
	if err != nil {
		return "", err
	}
	switch node.Char {
	case "⏟", "︸":
		return `\underbrace{` + base + `}`, nil
	case "⏞", "︷":
		return `\overbrace{` + base + `}`, nil
	}
	// Unsupported group character: keep the content, lose the decoration.
	return base, nil
}
