package doctree

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// span is the byte range of one top-level block, widened to whole lines
type span struct {
	start, stop int
	kind        Kind
}

// Parse loads Markdown into a tree rooted at a Container. goldmark finds the
// top-level blocks; each block keeps its exact source lines, and the blank
// runs between blocks become Text children of the root. Paragraphs get one
// Text child per line, so a pipe table's last row is the paragraph's last
// child. root.Chars() equals src right after parsing.
func Parse(src []byte) *Node {
	root := NewContainer("")
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	var spans []span
	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		start, stop, ok := blockExtent(c)
		if !ok {
			continue
		}
		s := span{start: lineStart(src, start), stop: lineEnd(src, stop), kind: kindOf(c)}
		if n := len(spans); n > 0 && s.start < spans[n-1].stop {
			// Two blocks sharing a line stay one node
			if s.stop > spans[n-1].stop {
				spans[n-1].stop = s.stop
			}
			continue
		}
		spans = append(spans, s)
	}

	// Lines goldmark keeps outside Lines() (code fences, setext underlines)
	// stick to the block they touch.
	for i := range spans {
		lower := 0
		if i > 0 {
			lower = spans[i-1].stop
		}
		for spans[i].start > lower {
			ls := lineStart(src, spans[i].start-1)
			if ls < lower || isBlank(src[ls:spans[i].start]) {
				break
			}
			spans[i].start = ls
		}

		upper := len(src)
		if i+1 < len(spans) {
			upper = spans[i+1].start
		}
		for spans[i].stop < upper {
			le := lineAfter(src, spans[i].stop)
			if le > upper || isBlank(src[spans[i].stop:le]) {
				break
			}
			spans[i].stop = le
		}
	}

	pos := 0
	for _, s := range spans {
		if s.start > pos {
			root.AppendChild(NewText(string(src[pos:s.start])))
		}
		root.AppendChild(newBlock(s.kind, string(src[s.start:s.stop])))
		pos = s.stop
	}
	if pos < len(src) {
		root.AppendChild(NewText(string(src[pos:])))
	}
	root.Refresh()
	return root
}

func newBlock(kind Kind, chars string) *Node {
	switch kind {
	case KindParagraph:
		return NewParagraph(strings.SplitAfter(chars, "\n")...)
	case KindList:
		return NewList(chars)
	default:
		return NewContainer(chars)
	}
}

func kindOf(n ast.Node) Kind {
	switch n.Kind() {
	case ast.KindParagraph:
		return KindParagraph
	case ast.KindList:
		return KindList
	default:
		return KindContainer
	}
}

// blockExtent returns the smallest byte range covering every line segment of
// n and its block descendants
func blockExtent(n ast.Node) (start, stop int, ok bool) {
	start, stop = -1, -1
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || c.Type() != ast.TypeBlock {
			return ast.WalkContinue, nil
		}
		lines := c.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			if start < 0 || seg.Start < start {
				start = seg.Start
			}
			if seg.Stop > stop {
				stop = seg.Stop
			}
		}
		return ast.WalkContinue, nil
	})
	return start, stop, start >= 0 && stop >= start
}

func lineStart(src []byte, i int) int {
	if i > len(src) {
		i = len(src)
	}
	for i > 0 && src[i-1] != '\n' {
		i--
	}
	return i
}

// lineEnd widens an exclusive stop offset to the end of its line, newline included
func lineEnd(src []byte, stop int) int {
	if stop > len(src) {
		return len(src)
	}
	if stop > 0 && src[stop-1] == '\n' {
		return stop
	}
	return lineAfter(src, stop)
}

// lineAfter returns the offset just past the newline of the line containing pos
func lineAfter(src []byte, pos int) int {
	for pos < len(src) && src[pos] != '\n' {
		pos++
	}
	if pos < len(src) {
		pos++
	}
	return pos
}

func isBlank(b []byte) bool {
	return strings.TrimSpace(string(b)) == ""
}
