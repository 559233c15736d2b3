// Package mathtext reduces the bank's HTML/LaTeX-bearing strings to
// plain text a terminal can show. It is the typesetting collaborator of
// the practice views: they hand it already-normalized markup and render
// whatever comes back, consuming no other result.
package mathtext

import (
	"regexp"
	"strings"
)

var (
	htmlTag  = regexp.MustCompile(`</?[a-zA-Z][^>]*>`)
	fracExpr = regexp.MustCompile(`\\d?frac\{([^{}]*)\}\{([^{}]*)\}`)
	sqrtExpr = regexp.MustCompile(`\\sqrt\{([^{}]*)\}`)
	texCmd   = regexp.MustCompile(`\\[a-zA-Z]+`)
)

// symbols maps common TeX commands to terminal-friendly glyphs.
var symbols = strings.NewReplacer(
	`\cdot`, "·",
	`\times`, "×",
	`\div`, "÷",
	`\pm`, "±",
	`\neq`, "≠",
	`\leq`, "≤",
	`\geq`, "≥",
	`\approx`, "≈",
	`\pi`, "π",
	`\theta`, "θ",
	`\degree`, "°",
	`\in`, "∈",
	`\,`, " ",
	`\;`, " ",
	`\{`, "{",
	`\}`, "}",
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
)

// Render converts markup to displayable terminal text. Unknown TeX
// commands are dropped rather than shown raw; math delimiters and
// grouping braces disappear.
func Render(markup string) string {
	s := strings.ReplaceAll(markup, "<br>", " ")
	s = strings.ReplaceAll(s, "<br/>", " ")
	s = htmlTag.ReplaceAllString(s, "")

	// Structured commands before the generic sweep.
	s = fracExpr.ReplaceAllString(s, "($1)/($2)")
	s = sqrtExpr.ReplaceAllString(s, "√($1)")
	s = symbols.Replace(s)
	s = texCmd.ReplaceAllString(s, "")

	s = strings.NewReplacer("$", "", "{", "", "}", "").Replace(s)

	return strings.Join(strings.Fields(s), " ")
}
