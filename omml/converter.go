// Package omml converts Office Math Markup Language trees to LaTeX math
// notation. The conversion is a single bottom-up pass: children are converted
// before their parent's template is applied. It never fails outright —
// malformed input degrades locally and the damage is reported as warnings.
package omml

import (
	"fmt"
	"strings"
)

// Converter converts math markup trees to LaTeX. A Converter is immutable
// after New and safe for concurrent use; per-conversion scratch lives in an
// internal state value.
type Converter struct {
	config Config
}

// New creates a new Converter with the given config.
func New(config Config) (*Converter, error) {
	config = config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Converter{config: config.clone()}, nil
}

// Convert turns a markup tree into a LaTeX string wrapped for the given mode.
// The error is non-nil only under the UnknownError policy; every other
// malformation degrades locally and is reported in Result.Warnings.
func (c *Converter) Convert(node *Node, mode Mode) (Result, error) {
	result, err := c.ConvertFragment(node)
	if err != nil {
		return Result{}, err
	}
	result.LaTeX = Wrap(mode, result.LaTeX)
	return result, nil
}

// ConvertFragment converts a markup tree without any mode wrapping, for
// callers embedding the output inside a larger expression.
func (c *Converter) ConvertFragment(node *Node) (Result, error) {
	s := &state{config: c.config}
	body, err := s.convertNode(node, 0)
	if err != nil {
		return Result{}, err
	}
	return Result{LaTeX: body, Warnings: s.warnings}, nil
}

// state carries per-conversion scratch so one Converter can serve concurrent
// conversions.
type state struct {
	config        Config
	warnings      []Warning
	depthExceeded bool
}

func (s *state) addWarning(warningType WarningType, element, message string) {
	s.warnings = append(s.warnings, Warning{Type: warningType, Element: element, Message: message})
}

func (s *state) convertNode(node *Node, depth int) (string, error) {
	if node == nil {
		return "", nil
	}
	if depth > s.config.MaxDepth {
		// Warn once per conversion; a pathological tree would otherwise
		// produce one warning per node beyond the limit.
		if !s.depthExceeded {
			s.depthExceeded = true
			s.addWarning(WarningDepthExceeded, string(node.Kind),
				fmt.Sprintf("nesting exceeds %d levels, deeper content omitted", s.config.MaxDepth))
		}
		return "", nil
	}

	switch node.Kind {
	case KindText:
		return s.convertText(node), nil

	case KindGroup:
		return s.convertChildren(node.Items, depth+1)

	case KindFraction:
		return s.convertFraction(node, depth)

	case KindSupSub:
		return s.convertSupSub(node, depth)

	case KindRadical:
		return s.convertRadical(node, depth)

	case KindNary:
		return s.convertNary(node, depth)

	case KindDelimiter:
		return s.convertDelimiter(node, depth)

	case KindFunction:
		return s.convertFunction(node, depth)

	case KindMatrix:
		return s.convertMatrix(node, depth)

	case KindAccent:
		return s.convertAccent(node, depth)

	case KindBar:
		return s.convertBar(node, depth)

	case KindGroupChar:
		return s.convertGroupChar(node, depth)

	case KindPreScript:
		return s.convertPreScript(node, depth)

	case KindEqArray:
		return s.convertEqArray(node, depth)

	default:
		// KindUnknown and any future kind: preserve content, never drop it.
		return s.convertUnknown(node, depth)
	}
}

func (s *state) convertUnknown(node *Node, depth int) (string, error) {
	if s.config.UnknownElements == UnknownError {
		return "", fmt.Errorf("unknown element: %s", node.Tag)
	}
	s.addWarning(WarningUnknownElement, node.Tag, "unrecognized element converted as pass-through")
	return s.convertChildren(node.Items, depth+1)
}

// convertChildren converts a node sequence in order and concatenates the
// results with no wrapping.
func (s *state) convertChildren(items []Node, depth int) (string, error) {
	var sb strings.Builder
	for i := range items {
		out, err := s.convertNode(&items[i], depth)
		if err != nil {
			return "", err
		}
		sb.WriteString(out)
	}
	return sb.String(), nil
}

// convertChild converts a required child. A missing child degrades to an
// empty string with a warning; conversion of siblings and ancestors proceeds.
func (s *state) convertChild(node *Node, element, role string, depth int) (string, error) {
	if node == nil {
		s.addWarning(WarningMissingChild, element, fmt.Sprintf("%s is missing, substituted empty output", role))
		return "", nil
	}
	return s.convertNode(node, depth)
}

// convertText resolves each character of a text run through the symbol table
// and escapes LaTeX specials. Unmapped characters pass through unchanged.
func (s *state) convertText(node *Node) string {
	var sb strings.Builder
	for _, r := range node.Text {
		sb.WriteString(s.escapeRune(r))
	}
	return strings.TrimSpace(sb.String())
}

func (s *state) escapeRune(r rune) string {
	if macro, ok := s.config.Symbols[r]; ok {
		return macro + " "
	}
	if macro, ok := greekMacros[r]; ok {
		return macro + " "
	}
	if macro, ok := symbolMacros[r]; ok {
		return macro + " "
	}
	switch r {
	case '#', '$', '%', '&', '_', '{', '}':
		return `\` + string(r)
	case '\\':
		return `\backslash `
	case '^':
		return `\hat{}`
	case '~':
		return `\tilde{}`
	}
	return string(r)
}
