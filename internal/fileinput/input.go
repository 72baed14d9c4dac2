package fileinput

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"
)

// Location names a line and column in a named source text.
type Location struct {
	Name string
	Line int
	Col  int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v:%v", loc.Name, loc.Line, loc.Col) }

// Locate resolves a byte offset within text into a 1-based line and column.
// Columns count runes, not bytes. Offsets past the end of text are clamped.
func Locate(name, text string, offset int) Location {
	if offset > len(text) {
		offset = len(text)
	}
	if offset < 0 {
		offset = 0
	}
	loc := Location{Name: name, Line: 1, Col: 1}
	lineStart := 0
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			loc.Line++
			lineStart = i + 1
		}
	}
	loc.Col += len([]rune(text[lineStart:offset]))
	return loc
}

// StripComments blanks out every line whose first non-blank content is "//",
// where blanks are ASCII whitespace.
//
// Comment bytes are overwritten with spaces rather than removed, so that every
// byte offset into the returned text is also a valid offset into the original
// text, and locations reported against it stay accurate.
func StripComments(text string) string {
	if !strings.Contains(text, "//") {
		return text
	}
	var sb strings.Builder
	sb.Grow(len(text))
	for len(text) > 0 {
		line := text
		rest := ""
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line, rest = text[:i+1], text[i+1:]
		}
		text = rest
		if strings.HasPrefix(strings.TrimLeft(line, " \t\f\r"), "//") {
			body := strings.TrimSuffix(line, "\n")
			sb.WriteString(strings.Repeat(" ", len(body)))
			sb.WriteString(line[len(body):])
		} else {
			sb.WriteString(line)
		}
	}
	return sb.String()
}

// ReadSource reads all of r, returning its content along with a name for it:
// the given name if non-empty, r's Name() if it has one, or a placeholder.
func ReadSource(name string, r io.Reader) (string, string, error) {
	if name == "" {
		name = nameOf(r)
	}
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return name, "", fmt.Errorf("unable to read %v: %w", name, err)
	}
	return name, string(b), nil
}

// ReadFile reads the named file.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	_, text, err := ReadSource(path, f)
	return text, err
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
