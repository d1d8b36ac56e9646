package doctree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTemplate = "# ${title}\n" +
	"\n" +
	"- ${desc}\n" +
	"\n" +
	"| name | type |\n" +
	"| --- | --- |\n" +
	"| ${arg.name} | ${arg.type} |\n" +
	"\n" +
	"```json\n" +
	"${resSample}\n" +
	"```\n"

func TestParseRoundTrip(t *testing.T) {
	root := Parse([]byte(sampleTemplate))
	assert.Equal(t, sampleTemplate, root.Chars())

	var joined string
	for _, c := range root.Children() {
		joined += c.Chars()
		assert.Same(t, root, c.Parent())
	}
	assert.Equal(t, sampleTemplate, joined)
}

func TestParseBlockKinds(t *testing.T) {
	root := Parse([]byte(sampleTemplate))

	var blocks []*Node
	for _, c := range root.Children() {
		if c.Kind() != KindText {
			blocks = append(blocks, c)
		}
	}
	require.Len(t, blocks, 4)

	assert.Equal(t, KindContainer, blocks[0].Kind())
	assert.Equal(t, "# ${title}\n", blocks[0].Chars())

	assert.Equal(t, KindList, blocks[1].Kind())
	assert.Equal(t, "- ${desc}\n", blocks[1].Chars())

	table := blocks[2]
	assert.Equal(t, KindParagraph, table.Kind())
	require.Len(t, table.Children(), 3)
	assert.Equal(t, "| ${arg.name} | ${arg.type} |\n", table.LastChild().Chars())

	assert.Equal(t, KindContainer, blocks[3].Kind())
	assert.Equal(t, "```json\n${resSample}\n```\n", blocks[3].Chars())
}

func TestParseWithoutTrailingNewline(t *testing.T) {
	src := "intro\n\n| a |\n| ${arg.name} |"
	root := Parse([]byte(src))
	assert.Equal(t, src, root.Chars())

	last := root.LastChild()
	require.Equal(t, KindParagraph, last.Kind())
	assert.Equal(t, "| ${arg.name} |", last.LastChild().Chars())
}

func TestInsertBeforeAndUnlink(t *testing.T) {
	p := NewParagraph("a\n", "b\n")
	b := p.LastChild()

	b.InsertBefore(NewText("x\n"))
	assert.Equal(t, []string{"a\n", "x\n", "b\n"}, texts(p))

	b.Unlink()
	assert.Nil(t, b.Parent())
	p.Refresh()
	assert.Equal(t, "a\nx\n", p.Chars())

	// No parent: nothing happens
	b.InsertBefore(NewText("y"))
	assert.Nil(t, b.Parent())
}

func TestReplaceAllKeepsConcatenation(t *testing.T) {
	root := NewContainer("")
	p := NewParagraph("${title}\n", "by ${title}\n")
	root.AppendChild(p)
	root.AppendChild(NewText("tail ${title}"))
	root.Refresh()

	p.ReplaceAll("${title}", "Users")
	assert.Equal(t, "Users\nby Users\n", p.Chars())
	assert.Equal(t, "Users\n", p.FirstChild().Chars())
	assert.Equal(t, "Users\nby Users\ntail ${title}", root.Chars())
}

func TestCloneIsDetached(t *testing.T) {
	root := NewContainer("")
	p := NewParagraph("a\n", "b\n")
	root.AppendChild(p)

	c := p.Clone()
	assert.Nil(t, c.Parent())
	assert.Equal(t, p.Chars(), c.Chars())
	assert.Len(t, c.Children(), 2)
	assert.Same(t, c, c.FirstChild().Parent())
}

func TestWalkStops(t *testing.T) {
	p := NewParagraph("a\n", "b\n", "c\n")
	visited := 0
	p.Walk(func(n *Node) bool {
		visited++
		return n.Chars() != "b\n"
	})
	assert.Equal(t, 3, visited)
}

func texts(n *Node) []string {
	var out []string
	for _, c := range n.Children() {
		out = append(out, c.Chars())
	}
	return out
}
