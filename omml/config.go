package omml

import (
	"fmt"
	"unicode/utf8"
)

// UnknownPolicy controls behavior for unrecognized markup elements.
type UnknownPolicy string

const (
	// UnknownPassthrough converts the children of an unrecognized element and
	// concatenates them with no wrapping, so content is never dropped.
	UnknownPassthrough UnknownPolicy = "passthrough"
	// UnknownError aborts the conversion on the first unrecognized element.
	UnknownError UnknownPolicy = "error"
)

// DefaultMaxDepth bounds recursion for adversarially deep trees. Subtrees
// beyond the limit degrade to empty output with a depth_exceeded warning.
const DefaultMaxDepth = 256

// Config holds all converter configuration options.
type Config struct {
	MaxDepth          int             `json:"maxDepth,omitempty"`
	UnknownElements   UnknownPolicy   `json:"unknownElements,omitempty"`
	MatrixEnvironment string          `json:"matrixEnvironment,omitempty"`
	Symbols           map[rune]string `json:"-"` // overrides merged over the builtin table
}

func (c Config) applyDefaults() Config {
	if c.MaxDepth == 0 {
		c.MaxDepth = DefaultMaxDepth
	}
	if c.UnknownElements == "" {
		c.UnknownElements = UnknownPassthrough
	}
	if c.MatrixEnvironment == "" {
		c.MatrixEnvironment = "pmatrix"
	}
	return c
}

// clone returns a deep copy of Config for map-backed fields.
func (c Config) clone() Config {
	cloned := c
	if c.Symbols != nil {
		cloned.Symbols = make(map[rune]string, len(c.Symbols))
		for r, macro := range c.Symbols {
			cloned.Symbols[r] = macro
		}
	}
	return cloned
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if c.MaxDepth < 1 {
		return fmt.Errorf("maxDepth must be at least 1, got %d", c.MaxDepth)
	}
	if c.UnknownElements != UnknownPassthrough && c.UnknownElements != UnknownError {
		return fmt.Errorf("invalid unknownElements policy %q", c.UnknownElements)
	}
	switch c.MatrixEnvironment {
	case "matrix", "pmatrix", "bmatrix", "Bmatrix", "vmatrix", "Vmatrix", "smallmatrix":
	default:
		return fmt.Errorf("invalid matrixEnvironment %q", c.MatrixEnvironment)
	}
	for r, macro := range c.Symbols {
		if !utf8.ValidRune(r) {
			return fmt.Errorf("symbols contains invalid rune %#x", r)
		}
		if macro == "" {
			return fmt.Errorf("symbols maps %q to an empty macro", string(r))
		}
	}
	return nil
}
