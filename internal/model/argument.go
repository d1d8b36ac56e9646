package model

import (
	"fmt"
	"strings"

	"dockit/internal/placeholder"
)

const (
	// DefaultArgumentType is used when a descriptor leaves the type blank
	DefaultArgumentType = "Object"
	// DefaultRequired is used when a descriptor leaves the required marker blank
	DefaultRequired = "No"
	// UnknownArgumentType marks the diagnostic argument produced for a malformed descriptor
	UnknownArgumentType = "Unknown"
	// PathSeparator splits the segments of a nested field path ("data.items.id")
	PathSeparator = "."
)

// Argument is one documented request parameter or response field
type Argument struct {
	// Path as written in the comment, e.g. "data.items.id"
	OriginName string `yaml:"origin_name"`

	// Local name: last path segment for nested fields, OriginName otherwise
	Name string `yaml:"name"`

	Description string `yaml:"description,omitempty"`

	// Free-form marker ("true", "No", ...), kept exactly as authored
	Required string `yaml:"required,omitempty"`

	Type string `yaml:"type"`

	// Nesting depth (0 = top level)
	Level int `yaml:"level"`

	// Display indent derived from Level, e.g. " - " for level 1
	LevelPrefix string `yaml:"-"`

	Children []*Argument `yaml:"children,omitempty"`
}

// NewArgument creates a top-level argument with defaults applied
func NewArgument(originName, argType, required, description string) *Argument {
	if argType == "" {
		argType = DefaultArgumentType
	}
	if required == "" {
		required = DefaultRequired
	}
	return &Argument{
		OriginName:  originName,
		Name:        originName,
		Type:        argType,
		Required:    required,
		Description: description,
		Children:    make([]*Argument, 0),
	}
}

// NewDiagnosticArgument creates the placeholder argument emitted for a
// descriptor that could not be parsed. It keeps the authoring mistake visible
// in the generated document instead of failing the run.
func NewDiagnosticArgument(body string) *Argument {
	return &Argument{
		Type:        UnknownArgumentType,
		Description: fmt.Sprintf("argument format error, expected \"name, type, required=<marker>, description\" but got %q", body),
		Children:    make([]*Argument, 0),
	}
}

// IsDiagnostic reports whether a was produced for a malformed descriptor
func (a *Argument) IsDiagnostic() bool {
	return a.Name == "" && a.Type == UnknownArgumentType
}

// IsNested reports whether OriginName is a dotted path
func (a *Argument) IsNested() bool {
	return strings.Contains(a.OriginName, PathSeparator)
}

// ParentPath returns everything before the last path segment ("" for top-level names)
func (a *Argument) ParentPath() string {
	idx := strings.LastIndex(a.OriginName, PathSeparator)
	if idx < 0 {
		return ""
	}
	return a.OriginName[:idx]
}

// SetLevel updates Level and the display prefix derived from it
func (a *Argument) SetLevel(level int) {
	a.Level = level
	a.LevelPrefix = LevelPrefix(level)
}

// LevelPrefix returns the display indent for a nesting level: " - ", " -- ", ...
func LevelPrefix(level int) string {
	if level <= 0 {
		return ""
	}
	return " " + strings.Repeat("-", level) + " "
}

// AddChild appends child under a
func (a *Argument) AddChild(child *Argument) {
	if child == nil {
		return
	}
	a.Children = append(a.Children, child)
}

// Find searches a and its descendants (pre-order) for originName
func (a *Argument) Find(originName string) *Argument {
	if a.OriginName == originName {
		return a
	}
	for _, child := range a.Children {
		if found := child.Find(originName); found != nil {
			return found
		}
	}
	return nil
}

// FindArgument searches a forest (pre-order, roots in order) for originName
func FindArgument(roots []*Argument, originName string) *Argument {
	for _, root := range roots {
		if found := root.Find(originName); found != nil {
			return found
		}
	}
	return nil
}

// CountArguments returns the number of arguments in a forest, descendants included
func CountArguments(roots []*Argument) int {
	count := 0
	for _, root := range roots {
		count += 1 + CountArguments(root.Children)
	}
	return count
}

// Fields implements placeholder.Describer. Keys are bare field names; the
// resolver strips the list key ("arg.") from a row before substituting them.
func (a *Argument) Fields() []placeholder.Field {
	return []placeholder.Field{
		{Key: "originName", Kind: placeholder.KindSimple, Value: a.OriginName},
		{Key: "levelPrefix", Kind: placeholder.KindSimple, Value: a.LevelPrefix},
		{Key: "name", Kind: placeholder.KindSimple, Value: a.Name},
		{Key: "type", Kind: placeholder.KindSimple, Value: a.Type},
		{Key: "required", Kind: placeholder.KindSimple, Value: a.Required},
		{Key: "description", Kind: placeholder.KindSimple, Value: a.Description},
		{Key: "level", Kind: placeholder.KindSimple, Value: a.Level},
		{Key: "children", Kind: placeholder.KindList, Value: describers(a.Children)},
	}
}

// String returns a human-readable representation of the argument
func (a *Argument) String() string {
	return fmt.Sprintf("%s%s (%s, required=%s)", a.LevelPrefix, a.Name, a.Type, a.Required)
}
