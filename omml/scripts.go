package omml

// Conversion rules for the script-bearing variants: sub/superscripts, n-ary
// operators and prescripts.

// convertSupSub handles the three script sub-cases. Which scripts are present
// is decided by child nilness, not by a separate discriminator; a node with
// neither script degrades to its base alone.
func (s *state) convertSupSub(node *Node, depth int) (string, error) {
	base, err := s.convertChild(node.Base, "script", "base", depth+1)
	if err != nil {
		return "", err
	}

	out := base
	if node.Sub != nil {
		sub, err := s.convertNode(node.Sub, depth+1)
		if err != nil {
			return "", err
		}
		out += `_{` + sub + `}`
	}
	if node.Sup != nil {
		sup, err := s.convertNode(node.Sup, depth+1)
		if err != nil {
			return "", err
		}
		out += `^{` + sup + `}`
	}
	return out, nil
}

func (s *state) convertNary(node *Node, depth int) (string, error) {
	out := naryMacro(node.Char)
	if node.Sub != nil {
		lower, err := s.convertNode(node.Sub, depth+1)
		if err != nil {
			return "", err
		}
		out += `_{` + lower + `}`
	}
	if node.Sup != nil {
		upper, err := s.convertNode(node.Sup, depth+1)
		if err != nil {
			return "", err
		}
		out += `^{` + upper + `}`
	}
	body, err := s.convertChild(node.Base, "n-ary operator", "operand", depth+1)
	if err != nil {
		return "", err
	}
	return out + " " + body, nil
}

// convertPreScript places scripts before the base, as in tensor notation.
func (s *state) convertPreScript(node *Node, depth int) (string, error) {
	out := "{}"
	if node.Sub != nil {
		sub, err := s.convertNode(node.Sub, depth+1)
		if err != nil {
			return "", err
		}
		out += `_{` + sub + `}`
	}
	if node.Sup != nil {
		sup, err := s.convertNode(node.Sup, depth+1)
		if err != nil {
			return "", err
		}
		out += `^{` + sup + `}`
	}
	base, err := s.convertChild(node.Base, "prescript", "base", depth+1)
	if err != nil {
		return "", err
	}
	return out + base, nil
}
