package omml

// Lookup tables mapping markup characters to LaTeX macros. All tables are
// package-level and read-only after initialization, so they may be shared
// across concurrent conversions without synchronization.

var greekMacros = map[rune]string{
	'α': `\alpha`, 'β': `\beta`, 'γ': `\gamma`, 'δ': `\delta`,
	'ε': `\varepsilon`, 'ζ': `\zeta`, 'η': `\eta`, 'θ': `\theta`,
	'ι': `\iota`, 'κ': `\kappa`, 'λ': `\lambda`, 'μ': `\mu`,
	'ν': `\nu`, 'ξ': `\xi`, 'π': `\pi`, 'ρ': `\rho`,
	'σ': `\sigma`, 'τ': `\tau`, 'υ': `\upsilon`, 'φ': `\varphi`,
	'χ': `\chi`, 'ψ': `\psi`, 'ω': `\omega`,
	'Α': `A`, 'Β': `B`, 'Γ': `\Gamma`, 'Δ': `\Delta`,
	'Ε': `E`, 'Ζ': `Z`, 'Η': `H`, 'Θ': `\Theta`,
	'Ι': `I`, 'Κ': `K`, 'Λ': `\Lambda`, 'Μ': `M`,
	'Ν': `N`, 'Ξ': `\Xi`, 'Π': `\Pi`, 'Ρ': `P`,
	'Σ': `\Sigma`, 'Τ': `T`, 'Υ': `\Upsilon`, 'Φ': `\Phi`,
	'Χ': `X`, 'Ψ': `\Psi`, 'Ω': `\Omega`,
	'ϕ': `\phi`, 'ϵ': `\epsilon`, 'ϑ': `\vartheta`,
	'ϖ': `\varpi`, 'ϱ': `\varrho`, 'ς': `\varsigma`,
}

var symbolMacros = map[rune]string{
	'∞': `\infty`, '∂': `\partial`, '∇': `\nabla`,
	'∑': `\sum`, '∏': `\prod`, '∫': `\int`,
	'∮': `\oint`, '∬': `\iint`, '∭': `\iiint`,
	'√': `\sqrt`, '∛': `\sqrt[3]`, '∜': `\sqrt[4]`,
	'±': `\pm`, '∓': `\mp`, '×': `\times`, '÷': `\div`,
	'·': `\cdot`, '∘': `\circ`, '⊗': `\otimes`, '⊕': `\oplus`,
	'≤': `\leq`, '≥': `\geq`, '≠': `\neq`, '≈': `\approx`,
	'≡': `\equiv`, '∝': `\propto`, '∼': `\sim`, '≃': `\simeq`,
	'≅': `\cong`, '≪': `\ll`, '≫': `\gg`,
	'∈': `\in`, '∉': `\notin`, '⊂': `\subset`, '⊃': `\supset`,
	'⊆': `\subseteq`, '⊇': `\supseteq`, '∪': `\cup`, '∩': `\cap`,
	'∅': `\emptyset`, '∀': `\forall`, '∃': `\exists`, '¬': `\neg`,
	'∧': `\land`, '∨': `\lor`, '⇒': `\Rightarrow`, '⇔': `\Leftrightarrow`,
	'→': `\to`, '←': `\leftarrow`, '↔': `\leftrightarrow`,
	'⇐': `\Leftarrow`, '↑': `\uparrow`, '↓': `\downarrow`,
	'′': `'`, '″': `''`, '‴': `'''`,
	'°': `^\circ`, '‰': `\permil`,
	'ℕ': `\mathbb{N}`, 'ℤ': `\mathbb{Z}`, 'ℚ': `\mathbb{Q}`,
	'ℝ': `\mathbb{R}`, 'ℂ': `\mathbb{C}`,
	'⟨': `\langle`, '⟩': `\rangle`,
	'⌈': `\lceil`, '⌉': `\rceil`, '⌊': `\lfloor`, '⌋': `\rfloor`,
	'|': `\vert`, '‖': `\Vert`,
	'…': `\ldots`, '⋯': `\cdots`, '⋮': `\vdots`, '⋱': `\ddots`,
	'ℓ': `\ell`, 'ℏ': `\hbar`, '℘': `\wp`, 'ℑ': `\Im`, 'ℜ': `\Re`,
}

// naryMacros maps n-ary operator characters to their big-operator macros.
// Operators not in the table fall back to \int, matching the markup format's
// own default operator.
var naryMacros = map[string]string{
	"∑": `\sum`, "∏": `\prod`,
	"∫": `\int`, "∬": `\iint`, "∭": `\iiint`, "∮": `\oint`,
	"⋃": `\bigcup`, "⋂": `\bigcap`,
	"⋁": `\bigvee`, "⋀": `\bigwedge`,
	"⨁": `\bigoplus`, "⨂": `\bigotimes`,
}

var openDelims = map[string]string{
	"(": `\left(`, "[": `\left[`, "{": `\left\{`,
	"|": `\left|`, "‖": `\left\|`,
	"⟨": `\left\langle`, "⌈": `\left\lceil`, "⌊": `\left\lfloor`,
}

var closeDelims = map[string]string{
	")": `\right)`, "]": `\right]`, "}": `\right\}`,
	"|": `\right|`, "‖": `\right\|`,
	"⟩": `\right\rangle`, "⌉": `\right\rceil`, "⌋": `\right\rfloor`,
}

// accentMacros covers both the spacing and the combining form of each accent
// character, since documents in the wild use either.
var accentMacros = map[string]string{
	"^": `\hat`, "̂": `\hat`,
	"¯": `\bar`, "̄": `\bar`,
	"→": `\vec`, "⃗": `\vec`,
	"˙": `\dot`, "̇": `\dot`,
	"¨": `\ddot`, "̈": `\ddot`,
	"˜": `\tilde`, "̃": `\tilde`,
	"˘": `\breve`, "̆": `\breve`,
	"ˇ": `\check`, "̌": `\check`,
}

// stdFunctions are function names LaTeX defines as operators; they render as
// \sin, \log, etc. Anything else goes through \mathrm.
var stdFunctions = map[string]bool{
	"sin": true, "cos": true, "tan": true, "cot": true, "sec": true, "csc": true,
	"sinh": true, "cosh": true, "tanh": true, "coth": true,
	"arcsin": true, "arccos": true, "arctan": true,
	"log": true, "ln": true, "exp": true, "lim": true, "max": true, "min": true,
	"sup": true, "inf": true, "det": true, "dim": true, "ker": true, "deg": true,
	"gcd": true, "arg": true, "mod": true,
}

// ResolveSymbol maps a single character to its LaTeX macro. Characters with
// no entry are returned unchanged; resolution never fails and never drops.
func ResolveSymbol(r rune) string {
	if macro, ok := greekMacros[r]; ok {
		return macro
	}
	if macro, ok := symbolMacros[r]; ok {
		return macro
	}
	return string(r)
}

func naryMacro(char string) string {
	if macro, ok := naryMacros[char]; ok {
		return macro
	}
	return `\int`
}

func openDelim(char string) string {
	if char == "" {
		return `\left.`
	}
	if macro, ok := openDelims[char]; ok {
		return macro
	}
	return `\left` + char
}

func closeDelim(char string) string {
	if char == "" {
		return `\right.`
	}
	if macro, ok := closeDelims[char]; ok {
		return macro
	}
	return `\right` + char
}

func accentMacro(char string) string {
	if macro, ok := accentMacros[char]; ok {
		return macro
	}
	return `\hat`
}
