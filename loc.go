package main

import (
	"fmt"

	"github.com/jcorbin/gostk/internal/fileinput"
)

// Source is a named program text. It is shared, by pointer, by every Loc
// derived from it, and must not be modified after creation.
type Source struct {
	Name string
	Text string
}

// Loc is a window of Len bytes starting at byte offset Pos within a Source.
type Loc struct {
	Src *Source
	Pos int
	Len int
}

// spanLocs returns a Loc covering both a and b, along with everything
// between them. Merging locations from different sources is a programming
// error and panics.
func spanLocs(a, b Loc) Loc {
	if a.Src != b.Src {
		panic(fmt.Sprintf("cannot span locations from different sources %q and %q",
			a.Src.name(), b.Src.name()))
	}
	start, end := a.Pos, a.end()
	if b.Pos < start {
		start = b.Pos
	}
	if e := b.end(); e > end {
		end = e
	}
	return Loc{Src: a.Src, Pos: start, Len: end - start}
}

func (loc Loc) end() int { return loc.Pos + loc.Len }

// Contents returns the source text covered by loc.
func (loc Loc) Contents() string {
	if loc.Src == nil {
		return ""
	}
	return loc.Src.Text[loc.Pos:loc.end()]
}

// Location resolves the line and column where loc starts.
func (loc Loc) Location() fileinput.Location {
	if loc.Src == nil {
		return fileinput.Location{Name: "<unknown>"}
	}
	return fileinput.Locate(loc.Src.Name, loc.Src.Text, loc.Pos)
}

func (loc Loc) String() string {
	return fmt.Sprintf("`%s` (%v)", loc.Contents(), loc.Location())
}

func (src *Source) name() string {
	if src == nil {
		return "<nil>"
	}
	return src.Name
}
