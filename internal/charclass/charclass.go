// Package charclass resolves POSIX bracket-expression class names like
// [:alpha:] and [:digit:] to character membership tests.
package charclass

import "unicode"

var classes = map[string]func(rune) bool{
	"alnum": func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) },
	"alpha": unicode.IsLetter,
	"blank": func(r rune) bool { return r == ' ' || r == '\t' },
	"cntrl": unicode.IsControl,
	"digit": unicode.IsDigit,
	"graph": func(r rune) bool { return unicode.IsGraphic(r) && r != ' ' },
	"lower": unicode.IsLower,
	"print": unicode.IsGraphic,
	"punct": func(r rune) bool { return unicode.IsPunct(r) || unicode.IsSymbol(r) },
	"space": unicode.IsSpace,
	"upper": unicode.IsUpper,
	"xdigit": func(r rune) bool {
		return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
	},
}

// Is reports whether r belongs to the named class. Unknown class names match
// nothing.
func Is(name string, r rune) bool {
	f, ok := classes[name]
	if !ok {
		return false
	}
	return f(r)
}
