package javadoc

import (
	"regexp"
	"strings"
)

// TagType classifies a block tag the way javadoc does
type TagType int

const (
	TagUnknown TagType = iota
	TagReturn
	TagParam
	TagThrows
	TagAuthor
	TagDeprecated
	TagSee
	TagSince
	TagVersion
)

var tagTypes = map[string]TagType{
	"return":     TagReturn,
	"param":      TagParam,
	"throws":     TagThrows,
	"exception":  TagThrows,
	"author":     TagAuthor,
	"deprecated": TagDeprecated,
	"see":        TagSee,
	"since":      TagSince,
	"version":    TagVersion,
}

// InlineTag is an inline element such as {@link UserVO} (Name "link", Content "UserVO")
type InlineTag struct {
	Name    string
	Content string
}

// Element is one piece of a description: plain text or an inline tag
type Element struct {
	Text   string
	Inline *InlineTag
}

// Description is free text possibly interleaved with inline tags
type Description struct {
	Elements []Element
}

// Text renders the description back to source form, inline tags included
func (d Description) Text() string {
	var sb strings.Builder
	for _, e := range d.Elements {
		if e.Inline != nil {
			sb.WriteString("{@" + e.Inline.Name)
			if e.Inline.Content != "" {
				sb.WriteString(" " + e.Inline.Content)
			}
			sb.WriteString("}")
			continue
		}
		sb.WriteString(e.Text)
	}
	return strings.TrimSpace(sb.String())
}

// IsEmpty reports whether the description has no visible content
func (d Description) IsEmpty() bool {
	return d.Text() == ""
}

// InlineTags returns the inline tags named name, in order
func (d Description) InlineTags(name string) []InlineTag {
	var tags []InlineTag
	for _, e := range d.Elements {
		if e.Inline != nil && e.Inline.Name == name {
			tags = append(tags, *e.Inline)
		}
	}
	return tags
}

// BlockTag is one "@name body" entry of a comment
type BlockTag struct {
	Name    string
	Type    TagType
	Content Description
}

// Comment is a parsed method comment
type Comment struct {
	// Raw source, delimiters included
	Raw string

	// True for /** ... */ comments
	Doc bool

	// Text before the first block tag
	Description Description

	BlockTags []BlockTag
}

var (
	inlineTagRegex = regexp.MustCompile(`\{@(\w+)\s*([^}]*)\}`)
	blockTagRegex  = regexp.MustCompile(`^@(\w+)\s*(.*)$`)
)

// ParseComment parses a raw /* */, /** */ or // comment
func ParseComment(raw string) *Comment {
	c := &Comment{
		Raw: raw,
		Doc: strings.HasPrefix(raw, "/**") && raw != "/**/",
	}

	var (
		descLines []string
		tagName   string
		tagLines  []string
	)

	flush := func() {
		if tagName == "" {
			return
		}
		tagType, ok := tagTypes[tagName]
		if !ok {
			tagType = TagUnknown
		}
		c.BlockTags = append(c.BlockTags, BlockTag{
			Name:    tagName,
			Type:    tagType,
			Content: parseDescription(strings.Join(tagLines, "\n")),
		})
		tagName, tagLines = "", nil
	}

	for _, line := range commentLines(raw) {
		if m := blockTagRegex.FindStringSubmatch(line); m != nil {
			flush()
			tagName = m[1]
			tagLines = []string{m[2]}
			continue
		}
		if tagName != "" {
			tagLines = append(tagLines, line)
		} else {
			descLines = append(descLines, line)
		}
	}
	flush()

	c.Description = parseDescription(strings.Join(descLines, "\n"))
	return c
}

// Tags returns the block tags named name, in order
func (c *Comment) Tags(name string) []BlockTag {
	var tags []BlockTag
	for _, t := range c.BlockTags {
		if t.Name == name {
			tags = append(tags, t)
		}
	}
	return tags
}

// commentLines strips delimiters and the leading " * " of every line
func commentLines(raw string) []string {
	body := raw
	switch {
	case strings.HasPrefix(body, "/**"):
		body = strings.TrimPrefix(body, "/**")
	case strings.HasPrefix(body, "/*"):
		body = strings.TrimPrefix(body, "/*")
	}
	body = strings.TrimSuffix(body, "*/")

	var lines []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "//")
		if strings.HasPrefix(line, "*") {
			line = strings.TrimPrefix(line, "*")
		}
		lines = append(lines, strings.TrimSpace(line))
	}

	// Drop leading and trailing blank lines
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func parseDescription(text string) Description {
	var d Description
	last := 0
	for _, loc := range inlineTagRegex.FindAllStringSubmatchIndex(text, -1) {
		if loc[0] > last {
			d.Elements = append(d.Elements, Element{Text: text[last:loc[0]]})
		}
		d.Elements = append(d.Elements, Element{Inline: &InlineTag{
			Name:    text[loc[2]:loc[3]],
			Content: strings.TrimSpace(text[loc[4]:loc[5]]),
		}})
		last = loc[1]
	}
	if last < len(text) {
		d.Elements = append(d.Elements, Element{Text: text[last:]})
	}
	return d
}
