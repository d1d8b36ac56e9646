// Package doctree is the mutable document tree that templates are loaded into.
//
// Every node carries its raw characters. A node with children always holds the
// concatenation of its children's characters; the mutation helpers below keep
// that true for the node and all of its ancestors.
package doctree

import (
	"strings"
)

// Kind identifies the node variant
type Kind int

const (
	KindText Kind = iota
	KindParagraph
	KindList
	KindContainer
)

// String returns the variant name
func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindParagraph:
		return "Paragraph"
	case KindList:
		return "ListContainer"
	case KindContainer:
		return "Container"
	default:
		return "Unknown"
	}
}

// Node is one element of a document tree
type Node struct {
	kind     Kind
	chars    string
	parent   *Node
	children []*Node
}

// NewText creates a leaf text node
func NewText(chars string) *Node {
	return &Node{kind: KindText, chars: chars}
}

// NewParagraph creates a paragraph whose children are its source lines
func NewParagraph(lines ...string) *Node {
	p := &Node{kind: KindParagraph}
	for _, line := range lines {
		if line == "" {
			continue
		}
		p.AppendChild(NewText(line))
	}
	p.Refresh()
	return p
}

// NewList creates a list container holding raw list text
func NewList(chars string) *Node {
	return &Node{kind: KindList, chars: chars}
}

// NewContainer creates a generic container holding raw text
func NewContainer(chars string) *Node {
	return &Node{kind: KindContainer, chars: chars}
}

// Kind returns the node variant
func (n *Node) Kind() Kind { return n.kind }

// Chars returns the node's raw text
func (n *Node) Chars() string { return n.chars }

// SetChars overwrites the node's raw text. Ancestors are not refreshed.
func (n *Node) SetChars(chars string) { n.chars = chars }

// Parent returns the enclosing node, nil for a root or an unlinked node
func (n *Node) Parent() *Node { return n.parent }

// Children returns a snapshot of the children; mutating the tree does not affect it
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// HasChildren reports whether n has at least one child
func (n *Node) HasChildren() bool { return len(n.children) > 0 }

// FirstChild returns the first child or nil
func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// LastChild returns the last child or nil
func (n *Node) LastChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[len(n.children)-1]
}

// AppendChild adds child as the last child of n, detaching it from any previous parent
func (n *Node) AppendChild(child *Node) {
	if child == nil {
		return
	}
	child.Unlink()
	child.parent = n
	n.children = append(n.children, child)
}

// InsertBefore places sibling immediately before n under n's parent.
// It is a no-op when n has no parent.
func (n *Node) InsertBefore(sibling *Node) {
	if sibling == nil || n.parent == nil || sibling == n {
		return
	}
	sibling.Unlink()

	parent := n.parent
	idx := parent.indexOf(n)
	if idx < 0 {
		return
	}
	parent.children = append(parent.children, nil)
	copy(parent.children[idx+1:], parent.children[idx:])
	parent.children[idx] = sibling
	sibling.parent = parent
}

// Unlink removes n from its parent. The parent's text is not recomputed.
func (n *Node) Unlink() {
	if n.parent == nil {
		return
	}
	parent := n.parent
	if idx := parent.indexOf(n); idx >= 0 {
		parent.children = append(parent.children[:idx], parent.children[idx+1:]...)
	}
	n.parent = nil
}

func (n *Node) indexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// Refresh recomputes n's text as the concatenation of its children's text.
// Only call it on nodes that own children: a node whose last child was
// removed ends up with empty text.
func (n *Node) Refresh() {
	var sb strings.Builder
	for _, c := range n.children {
		sb.WriteString(c.chars)
	}
	n.chars = sb.String()
}

// RefreshAncestors recomputes the text of every ancestor of n, nearest first
func (n *Node) RefreshAncestors() {
	for p := n.parent; p != nil; p = p.parent {
		p.Refresh()
	}
}

// ReplaceAll replaces every occurrence of old in n's text. For a node with
// children the replacement is applied to the leaves and re-aggregated, so the
// concatenation invariant survives. Ancestors are refreshed.
func (n *Node) ReplaceAll(old, replacement string) {
	if old == "" {
		return
	}
	n.replaceSubtree(old, replacement)
	n.RefreshAncestors()
}

func (n *Node) replaceSubtree(old, replacement string) {
	if len(n.children) == 0 {
		n.chars = strings.ReplaceAll(n.chars, old, replacement)
		return
	}
	for _, c := range n.children {
		c.replaceSubtree(old, replacement)
	}
	n.Refresh()
}

// Clone returns a detached deep copy of n
func (n *Node) Clone() *Node {
	c := &Node{kind: n.kind, chars: n.chars}
	for _, child := range n.children {
		c.AppendChild(child.Clone())
	}
	return c
}

// Walk visits n and its descendants in pre-order until fn returns false
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Children() {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// String returns the node's raw text
func (n *Node) String() string { return n.chars }
