package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/jcorbin/gostk/internal/runeio"
)

type tokenKind uint8

const (
	integerToken tokenKind = iota + 1
	charToken
	actionToken
	bindingToken
	lbraceToken
	rbraceToken
)

var tokenKindNames = [...]string{
	integerToken: "integer",
	charToken:    "char",
	actionToken:  "action",
	bindingToken: "binding",
	lbraceToken:  "lbrace",
	rbraceToken:  "rbrace",
}

func (kind tokenKind) String() string {
	if int(kind) < len(tokenKindNames) && tokenKindNames[kind] != "" {
		return tokenKindNames[kind]
	}
	return fmt.Sprintf("tokenKind(%d)", uint8(kind))
}

// token is one classified word of program text. Only the payload field that
// matches kind is meaningful: n for integers, r for chars, name for actions
// and bindings (the latter without its "$" sigil).
type token struct {
	kind tokenKind
	loc  Loc
	n    int
	r    rune
	name string
}

func (tok token) String() string {
	switch tok.kind {
	case integerToken:
		return fmt.Sprintf("integer(%v)", tok.n)
	case charToken:
		return fmt.Sprintf("char(%v)", runeio.QuoteChar(tok.r))
	case actionToken, bindingToken:
		return fmt.Sprintf("%v(%v)", tok.kind, tok.name)
	default:
		return tok.kind.String()
	}
}

// identSymbols are the non-alphanumeric runes allowed in action and binding
// names; braces, quotes, and "$" are deliberately excluded.
const identSymbols = "_+-*/=^:.?[]#@<>&|!"

// isASCIISpace matches the bytes that separate words: space, tab, line
// feed, form feed, and carriage return. Bytes of multi-byte runes never match.
func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune(identSymbols, r)
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isIdentRune(r) {
			return false
		}
	}
	return true
}

// tokenize splits src into words separated by ASCII whitespace, classifying
// each one. Other space runes, like U+00A0, are part of the word they occur in.
func tokenize(src *Source) ([]token, error) {
	var tokens []token
	text := src.Text
	for i := 0; i < len(text); {
		if isASCIISpace(text[i]) {
			i++
			continue
		}
		start := i
		for i < len(text) && !isASCIISpace(text[i]) {
			i++
		}
		tok, err := classify(Loc{Src: src, Pos: start, Len: i - start})
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func classify(loc Loc) (token, error) {
	word := loc.Contents()
	tok := token{loc: loc}

	if n, err := strconv.ParseInt(word, 10, strconv.IntSize); err == nil {
		tok.kind, tok.n = integerToken, int(n)
		return tok, nil
	} else if errors.Is(err, strconv.ErrRange) {
		return tok, syntaxErrorf(loc, "integer literal `%v` out of range", word)
	}

	switch word {
	case "{":
		tok.kind = lbraceToken
		return tok, nil
	case "}":
		tok.kind = rbraceToken
		return tok, nil
	}

	if runeio.IsQuoted(word) {
		r, err := runeio.UnquoteChar(word)
		if err != nil {
			return tok, syntaxErrorf(loc, "invalid character literal `%v`: %v", word, err)
		}
		tok.kind, tok.r = charToken, r
		return tok, nil
	}

	if strings.HasPrefix(word, "$") && isIdent(word[1:]) {
		tok.kind, tok.name = bindingToken, word[1:]
		return tok, nil
	}

	if isIdent(word) {
		tok.kind, tok.name = actionToken, word
		return tok, nil
	}

	return tok, syntaxErrorf(loc, "unknown token `%v`", word)
}
