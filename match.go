package pathlib

import (
	"strings"
	"unicode/utf8"

	"github.com/go-pathlib/pathlib/internal/charclass"
)

// Match reports whether name matches the shell wildcard pattern. It operates
// on a single filename component: there is no separator handling and no
// cross-directory recursion (recursion belongs to Rglob, not the pattern
// language).
//
// The grammar is classic fnmatch: '?' matches exactly one character, '*'
// matches any run of characters including the empty one, '[...]' is a bracket
// expression with optional '^'/'!' negation, ranges and POSIX named classes,
// and '\' escapes the following character. An unterminated bracket is a
// literal '['. Matching is case-sensitive.
//
// Match first anchors the fixed pattern tail after the last '*' against the
// end of the name, then scans the star-delimited components left to right,
// retrying a failed component one character further along. It performs no
// allocation.
func Match(pattern, name string) bool {
	pat, str := pattern, name

	// Fixed prefix up to the first star: must match name unit for unit.
	for {
		tok, rest := nextToken(pat)
		if tok.kind == tokStar {
			pat = rest
			break
		}
		if tok.kind == tokEnd {
			return str == ""
		}
		if str == "" {
			return false
		}
		r, size := utf8.DecodeRuneInString(str)
		if !tok.matches(r) {
			return false
		}
		pat, str = rest, str[size:]
	}

	// Locate the last star and count the fixed units after it.
	tail := pat
	tailcnt := 0
	for rem := pat; ; {
		tok, rest := nextToken(rem)
		if tok.kind == tokEnd {
			break
		}
		if tok.kind == tokStar {
			tail, tailcnt = rest, 0
		} else {
			tailcnt++
		}
		rem = rest
	}

	// Slice off the final tailcnt runes of the name; fail if it is shorter.
	idx := len(str)
	for cnt := tailcnt; cnt > 0; cnt-- {
		if idx == 0 {
			return false
		}
		_, size := utf8.DecodeLastRuneInString(str[:idx])
		idx -= size
	}

	// The anchored tail must match unit for unit.
	for p, s := tail, str[idx:]; ; {
		tok, rest := nextToken(p)
		if s == "" {
			if tok.kind != tokEnd {
				return false
			}
			break
		}
		r, size := utf8.DecodeRuneInString(s)
		if !tok.matches(r) {
			return false
		}
		p, s = rest, s[size:]
	}

	// Star-delimited components between the first and last star. Each
	// component is retried one rune further along the name until it matches
	// or the name runs out.
	pat = pat[:len(pat)-len(tail)]
	str = str[:idx]
	for pat != "" {
		p, s := pat, str
		committed := false
		for {
			tok, rest := nextToken(p)
			if tok.kind == tokStar {
				pat, str = rest, s
				committed = true
				break
			}
			if s == "" {
				return false
			}
			r, size := utf8.DecodeRuneInString(s)
			if !tok.matches(r) {
				break
			}
			p, s = rest, s[size:]
		}
		if committed {
			continue
		}
		_, size := utf8.DecodeRuneInString(str)
		str = str[size:]
	}
	return true
}

const (
	tokEnd = iota
	tokLit
	tokQuestion
	tokStar
	tokBracket
)

// patToken is one matching unit of a pattern: a literal (possibly escaped)
// rune, a wildcard, or a whole bracket expression.
type patToken struct {
	kind int
	lit  rune
	body string // bracket interior, brackets stripped
}

func (tok patToken) matches(r rune) bool {
	switch tok.kind {
	case tokQuestion:
		return true
	case tokBracket:
		return matchBracket(tok.body, r)
	default:
		return r == tok.lit
	}
}

// nextToken scans one unit off the front of pat.
func nextToken(pat string) (patToken, string) {
	if pat == "" {
		return patToken{kind: tokEnd}, ""
	}
	switch pat[0] {
	case '\\':
		if len(pat) > 1 {
			r, size := utf8.DecodeRuneInString(pat[1:])
			return patToken{kind: tokLit, lit: r}, pat[1+size:]
		}
		return patToken{kind: tokLit, lit: '\\'}, pat[1:]
	case '[':
		if body, rest, ok := scanBracket(pat); ok {
			return patToken{kind: tokBracket, body: body}, rest
		}
		return patToken{kind: tokLit, lit: '['}, pat[1:]
	case '*':
		return patToken{kind: tokStar}, pat[1:]
	case '?':
		return patToken{kind: tokQuestion}, pat[1:]
	}
	r, size := utf8.DecodeRuneInString(pat)
	return patToken{kind: tokLit, lit: r}, pat[size:]
}

// scanBracket finds the extent of a bracket expression starting at pat[0] ==
// '['. A ']' in the first position (after optional negation) is part of the
// set, and [:class:] internals may contain ']'. ok is false when the
// expression never closes.
func scanBracket(pat string) (body, rest string, ok bool) {
	k := 1
	if k < len(pat) && (pat[k] == '^' || pat[k] == '!') {
		k++
	}
	if k < len(pat) && pat[k] == ']' {
		k++
	}
	for ; k < len(pat) && pat[k] != ']'; k++ {
		if k+1 < len(pat) && pat[k] == '[' && (pat[k+1] == ':' || pat[k+1] == '.' || pat[k+1] == '=') {
			z := pat[k+1]
			k += 2
			if k < len(pat) {
				k++
			}
			for k < len(pat) && !(pat[k-1] == z && pat[k] == ']') {
				k++
			}
			if k == len(pat) {
				break
			}
		}
	}
	if k >= len(pat) {
		return "", "", false
	}
	return pat[1:k], pat[k+1:], true
}

// matchBracket reports whether r belongs to the bracket expression whose
// interior (no surrounding brackets) is expr.
func matchBracket(expr string, r rune) bool {
	p := expr
	inv := false
	if len(p) > 0 && (p[0] == '^' || p[0] == '!') {
		inv = true
		p = p[1:]
	}
	matched := false
	for len(p) > 0 {
		if strings.HasPrefix(p, "[:") {
			if end := strings.Index(p, ":]"); end >= 2 {
				if charclass.Is(p[2:end], r) {
					matched = true
				}
				p = p[end+2:]
				continue
			}
		}
		lo, size := utf8.DecodeRuneInString(p)
		p = p[size:]
		// A '-' between two set members denotes a range; trailing '-' is
		// a literal.
		if len(p) > 1 && p[0] == '-' {
			hi, hsize := utf8.DecodeRuneInString(p[1:])
			p = p[1+hsize:]
			if lo <= hi && lo <= r && r <= hi {
				matched = true
			}
			continue
		}
		if r == lo {
			matched = true
		}
	}
	return matched != inv
}
