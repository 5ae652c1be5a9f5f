package docx

import "strings"

// latexTextReplacer escapes LaTeX specials in regular (non-math) text. A
// single simultaneous pass avoids re-escaping the braces introduced by the
// backslash replacement.
var latexTextReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"~", `\textasciitilde{}`,
	"^", `\textasciicircum{}`,
)

func escapeText(text string) string {
	return latexTextReplacer.Replace(text)
}
