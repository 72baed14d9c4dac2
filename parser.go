package main

import (
	"strings"

	"github.com/jcorbin/gostk/internal/fileinput"
)

// NodeKind discriminates the three shapes of program tree node.
type NodeKind uint8

// Node kinds.
const (
	AtomNode NodeKind = iota + 1
	SequenceNode
	BlockNode
)

// Node is an immutable element of a parsed program:
// - an atom holds a single non-brace token
// - a sequence holds ordered child items
// - a block holds a body sequence, to be executed only when invoked
type Node struct {
	Kind  NodeKind
	Loc   Loc
	Atom  token
	Items []*Node
	Body  *Node
}

func (node *Node) String() string {
	var sb strings.Builder
	node.format(&sb)
	return sb.String()
}

func (node *Node) format(sb *strings.Builder) {
	switch node.Kind {
	case AtomNode:
		sb.WriteString(node.Loc.Contents())
	case SequenceNode:
		for i, item := range node.Items {
			if i > 0 {
				sb.WriteByte(' ')
			}
			item.format(sb)
		}
	case BlockNode:
		sb.WriteString("{ ")
		if len(node.Body.Items) > 0 {
			node.Body.format(sb)
			sb.WriteByte(' ')
		}
		sb.WriteString("}")
	}
}

// BuildProgram strips comments from text, then tokenizes and parses it as a
// program named name. Any failure is a *SyntaxError.
func BuildProgram(text, name string) (*Node, error) {
	src := &Source{Name: name, Text: fileinput.StripComments(text)}
	tokens, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	return parse(src, tokens)
}

type parser struct {
	src    *Source
	tokens []token
	i      int
}

func parse(src *Source, tokens []token) (*Node, error) {
	p := parser{src: src, tokens: tokens}
	root, err := p.parseSequence(nil)
	if err != nil {
		return nil, err
	}
	if p.i < len(p.tokens) {
		tok := p.tokens[p.i]
		return nil, syntaxErrorf(tok.loc, "unable to parse from %v", tok)
	}
	return root, nil
}

// parseSequence collects items until input runs out, or, when open is
// non-nil, until the right brace that closes it.
func (p *parser) parseSequence(open *token) (*Node, error) {
	seq := &Node{Kind: SequenceNode}
	for p.i < len(p.tokens) {
		tok := p.tokens[p.i]
		p.i++
		switch tok.kind {
		case lbraceToken:
			body, err := p.parseSequence(&tok)
			if err != nil {
				return nil, err
			}
			seq.add(&Node{Kind: BlockNode, Loc: body.Loc, Body: body})

		case rbraceToken:
			if open == nil {
				return nil, syntaxErrorf(tok.loc, "unexpected end of block while not inside a block")
			}
			if len(seq.Items) == 0 {
				seq.Loc = tok.loc
			}
			return seq, nil

		default:
			seq.add(&Node{Kind: AtomNode, Loc: tok.loc, Atom: tok})
		}
	}
	if open != nil {
		return nil, syntaxErrorf(open.loc, "ran out of tokens while inside block")
	}
	if len(seq.Items) == 0 {
		seq.Loc = Loc{Src: p.src}
	}
	return seq, nil
}

func (node *Node) add(item *Node) {
	if len(node.Items) == 0 {
		node.Loc = item.Loc
	} else {
		node.Loc = spanLocs(node.Loc, item.Loc)
	}
	node.Items = append(node.Items, item)
}
