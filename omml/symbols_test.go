package omml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSymbolRoundTrip(t *testing.T) {
	// Every character in the tables must resolve to its documented macro.
	for r, macro := range greekMacros {
		assert.Equal(t, macro, ResolveSymbol(r), "greek %q", string(r))
	}
	for r, macro := range symbolMacros {
		assert.Equal(t, macro, ResolveSymbol(r), "symbol %q", string(r))
	}
}

func TestResolveSymbolSamples(t *testing.T) {
	tests := []struct {
		in   rune
		want string
	}{
		{'α', `\alpha`},
		{'Ω', `\Omega`},
		{'∞', `\infty`},
		{'∂', `\partial`},
		{'±', `\pm`},
		{'≠', `\neq`},
		{'∈', `\in`},
		{'∅', `\emptyset`},
		{'∀', `\forall`},
		{'⇔', `\Leftrightarrow`},
		{'ℝ', `\mathbb{R}`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolveSymbol(tt.in))
	}
}

func TestResolveSymbolPassthrough(t *testing.T) {
	// Characters absent from the tables convert to themselves unchanged.
	for _, r := range "abcXYZ019+-=(), " {
		assert.Equal(t, string(r), ResolveSymbol(r))
	}
}

func TestSymbolOverrides(t *testing.T) {
	conv := newTestConverter(t, Config{Symbols: map[rune]string{'α': `\upalpha`}})

	result := fragment(t, conv, text("αβ"))

	// The override wins for α, the builtin table still serves β.
	assert.Equal(t, `\upalpha \beta`, result.LaTeX)
}

func TestDelimiterFallbacks(t *testing.T) {
	assert.Equal(t, `\left(`, openDelim("("))
	assert.Equal(t, `\right\}`, closeDelim("}"))
	assert.Equal(t, `\left.`, openDelim(""))
	assert.Equal(t, `\right.`, closeDelim(""))
	// Unmapped characters keep \left / \right sizing with the raw character.
	assert.Equal(t, `\left/`, openDelim("/"))
	assert.Equal(t, `\right/`, closeDelim("/"))
}
