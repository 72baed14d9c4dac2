package runeio

import (
	"errors"
	"unicode/utf8"
)

// CaretForm computes the ^-escaped printable form of a C0 control rune.
// Returns "" for any other rune.
func CaretForm(r rune) string {
	if r < 0x20 || r == 0x7f {
		return "^" + string(r^0x40)
	} else if 0x80 <= r && r <= 0x9f {
		return "^[" + string(r^0xc0)
	}
	return ""
}

// ErrInvalidChar is returned by UnquoteChar for tokens that are quote wrapped
// but do not enclose exactly one rune.
var ErrInvalidChar = errors.New("character literal must enclose exactly one character")

// IsQuoted returns true if token is wrapped in single quotes.
func IsQuoted(token string) bool {
	return len(token) >= 2 && token[0] == '\'' && token[len(token)-1] == '\''
}

// UnquoteChar parses a character literal like 'x': the token must be wrapped
// in single quotes enclosing exactly one rune. No escapes are interpreted, so
// ''' is the quote character itself.
func UnquoteChar(token string) (rune, error) {
	if !IsQuoted(token) {
		return 0, ErrInvalidChar
	}
	body := token[1 : len(token)-1]
	r, n := utf8.DecodeRuneInString(body)
	if n == 0 || n != len(body) || r == utf8.RuneError && n == 1 {
		return 0, ErrInvalidChar
	}
	return r, nil
}

// QuoteChar renders r as a character literal, using caret form for controls.
func QuoteChar(r rune) string {
	if caret := CaretForm(r); caret != "" {
		return "'" + caret + "'"
	}
	return "'" + string(r) + "'"
}
