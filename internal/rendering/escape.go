// Package rendering converts generated resume content into PDF bytes via
// either a headless-browser HTML print or LaTeX compilation.
package rendering

import "strings"

// Named escape tokens emitted for characters that have no simple
// backslash-prefixed form.
const (
	escBackslash  = `\textbackslash{}`
	escCircumflex = `\textasciicircum{}`
	escTilde      = `\textasciitilde{}`
)

// EscapeLaTeX escapes the LaTeX control characters # $ % & _ { } \ ^ ~ in
// user-supplied text. Any one of them left unescaped can abort compilation,
// so this is applied to every user field individually, never to assembled
// template fragments.
//
// The function is idempotent: already-escaped sequences are recognized and
// passed through, so applying it twice equals applying it once.
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2)

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch c {
		case '\\':
			rest := text[i:]
			switch {
			case strings.HasPrefix(rest, escBackslash):
				result.WriteString(escBackslash)
				i += len(escBackslash) - 1
			case strings.HasPrefix(rest, escCircumflex):
				result.WriteString(escCircumflex)
				i += len(escCircumflex) - 1
			case strings.HasPrefix(rest, escTilde):
				result.WriteString(escTilde)
				i += len(escTilde) - 1
			case i+1 < len(text) && isEscapable(text[i+1]):
				// Already an escaped pair; keep it as-is.
				result.WriteByte('\\')
				result.WriteByte(text[i+1])
				i++
			default:
				result.WriteString(escBackslash)
			}
		case '{':
			result.WriteString(`\{`)
		case '}':
			result.WriteString(`\}`)
		case '$':
			result.WriteString(`\$`)
		case '&':
			result.WriteString(`\&`)
		case '%':
			result.WriteString(`\%`)
		case '#':
			result.WriteString(`\#`)
		case '_':
			result.WriteString(`\_`)
		case '^':
			result.WriteString(escCircumflex)
		case '~':
			result.WriteString(escTilde)
		default:
			result.WriteByte(c)
		}
	}

	return result.String()
}

func isEscapable(c byte) bool {
	switch c {
	case '#', '$', '%', '&', '_', '{', '}':
		return true
	}
	return false
}
