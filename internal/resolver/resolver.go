// Package resolver fills ${...} tokens of a document tree from records.
//
// Scalars replace their tokens in place. LIST fields repeat a fragment once
// per element: inside a Paragraph the last child (a table row or line) is the
// fragment; anywhere else the node itself is. The fragment template is only
// removed after every field has been processed (mark, then commit), so sibling
// iteration is never disturbed mid-walk.
package resolver

import (
	"fmt"
	"strings"

	"dockit/internal/doctree"
	"dockit/internal/placeholder"
)

const eol = "\n"

// Resolve substitutes value into node for the given tokens. value is either a
// scalar (every token is replaced with its text) or a placeholder.Describer
// (each field whose key is the first segment of a token is applied). Tokens
// without a matching field are left untouched.
func Resolve(node *doctree.Node, placeholders []string, value any) {
	if node == nil || len(placeholders) == 0 {
		return
	}

	if text, ok := placeholder.Format(value); ok {
		replaceTokens(node, placeholders, text)
		return
	}

	record, ok := value.(placeholder.Describer)
	if !ok {
		return
	}

	var removals removalSet
	for _, field := range record.Fields() {
		tokens := tokensFor(placeholders, field.Key)
		if len(tokens) == 0 {
			continue
		}

		if field.Kind == placeholder.KindSimple {
			replaceTokens(node, tokens, scalarText(field.Value))
			continue
		}

		elems, isSeq := placeholder.Elements(field.Value)
		if !isSeq {
			replaceTokens(node, tokens, scalarText(field.Value))
			continue
		}

		if node.Kind() == doctree.KindParagraph {
			row := node.LastChild()
			if row == nil {
				continue
			}
			for _, elem := range elems {
				if elem == nil {
					continue
				}
				expand(row, field.Key, elem, doctree.NewText)
			}
			removals.mark(row)
			continue
		}

		for _, elem := range elems {
			if elem == nil {
				continue
			}
			expand(node, field.Key, elem, doctree.NewList)
		}
		removals.mark(node)
	}

	removals.commit()
}

// expand inserts one filled copy of template before it. The list key prefix
// is stripped from the copy ("${arg.name}" -> "${name}") so the element's own
// field keys match. Sequence fields of the element (nested children) expand
// recursively against the same template, landing right after their parent.
func expand(template *doctree.Node, key string, elem any, newNode func(string) *doctree.Node) {
	chars := strings.ReplaceAll(template.Chars(), "${"+key+".", "${")
	if !strings.HasSuffix(chars, eol) {
		chars += eol
	}

	fragment := newNode(chars)
	template.InsertBefore(fragment)

	if text, ok := placeholder.Format(elem); ok {
		fragment.ReplaceAll(placeholder.Dress(key), text)
		return
	}

	record, ok := elem.(placeholder.Describer)
	if !ok {
		fragment.ReplaceAll(placeholder.Dress(key), scalarText(elem))
		return
	}

	for _, field := range record.Fields() {
		if field.Kind == placeholder.KindList {
			if children, isSeq := placeholder.Elements(field.Value); isSeq {
				for _, child := range children {
					if child != nil {
						expand(template, key, child, newNode)
					}
				}
				continue
			}
		}
		fragment.ReplaceAll(placeholder.Dress(field.Key), scalarText(field.Value))
	}
}

// replaceTokens accepts tokens dressed ("${title}") or bare ("title")
func replaceTokens(node *doctree.Node, tokens []string, text string) {
	for _, token := range tokens {
		node.ReplaceAll(placeholder.Dress(placeholder.Undress(token)), text)
	}
}

// tokensFor returns the tokens whose first segment is key
func tokensFor(placeholders []string, key string) []string {
	var out []string
	for _, token := range placeholders {
		if placeholder.Root(token) == key {
			out = append(out, token)
		}
	}
	return out
}

// scalarText renders any field value as text, blank values as ""
func scalarText(value any) string {
	if text, ok := placeholder.Format(value); ok {
		return text
	}
	var text string
	if s, ok := value.(fmt.Stringer); ok {
		text = s.String()
	} else {
		text = fmt.Sprint(value)
	}
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return text
}

// removalSet collects fragment templates during a pass; commit unlinks them
// and recomputes the text of every former parent and its ancestors
type removalSet struct {
	nodes []*doctree.Node
}

func (r *removalSet) mark(n *doctree.Node) {
	for _, existing := range r.nodes {
		if existing == n {
			return
		}
	}
	r.nodes = append(r.nodes, n)
}

func (r *removalSet) commit() {
	for _, n := range r.nodes {
		parent := n.Parent()
		n.Unlink()
		if parent != nil {
			parent.Refresh()
			parent.RefreshAncestors()
		}
	}
	r.nodes = nil
}
