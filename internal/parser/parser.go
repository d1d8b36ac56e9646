// Package parser turns a method's tagged Javadoc comment into a MethodRecord.
//
// Supported block tags:
//
//	@title, @version, @status, @author, @remark
//	@desc / @description   one line each, repeatable
//	@url
//	@method / @requestMethod
//	@arg, @resArg          name, type, required=<marker>, description
//	@return {@link Type}
//	@deprecated
//
// Arguments whose name is a dotted path ("data.items.id") are attached under
// the previously declared argument with the parent path.
package parser

import (
	"strings"

	"dockit/internal/javadoc"
	"dockit/internal/logger"
	"dockit/internal/model"
)

const (
	requiredPrefix = "required="
	linkTag        = "link"

	// name, type, required, description
	descriptorSegments = 4
)

// Parse builds a record from the method's doc comment. ok is false when the
// method has no comment or the comment is not a /** ... */ doc comment.
func Parse(method javadoc.Method) (*model.MethodRecord, bool) {
	if method.Comment == nil || !method.Comment.Doc {
		return nil, false
	}

	rec := model.NewMethodRecord(method.Name)

	for _, tag := range method.Comment.BlockTags {
		if tag.Type == javadoc.TagReturn {
			if link := firstLink(tag.Content); link != "" {
				rec.ResponseObjectClassName = link
			}
			continue
		}

		// @deprecated is meaningful without a body
		if tag.Name == "deprecated" {
			rec.Deprecated = true
			continue
		}

		body := tag.Content.Text()
		if body == "" {
			continue
		}

		switch tag.Name {
		case "title":
			rec.Title = body
		case "version":
			rec.Version = body
		case "status":
			rec.Status = body
		case "author":
			rec.Author = body
		case "remark":
			rec.Remark = body
		case "desc", "description":
			rec.DescriptionList = append(rec.DescriptionList, body)
		case "url":
			rec.RequestURL = body
		case "method", "requestMethod":
			rec.RequestMethod = strings.ToUpper(body)
		case "arg":
			rec.RequestArgList = place(rec, rec.RequestArgList, body)
		case "resArg":
			rec.ResponseArgList = place(rec, rec.ResponseArgList, body)
		}
	}

	return rec, true
}

func place(rec *model.MethodRecord, list []*model.Argument, body string) []*model.Argument {
	arg := ParseArgument(body)
	if arg.IsDiagnostic() {
		logger.Debug("[PARSER] %s: malformed argument %q", rec.MethodName, body)
	}

	list, placed := PlaceArgument(list, arg)
	if !placed {
		logger.Debug("[PARSER] %s: dropped %q, parent %q is not declared before it",
			rec.MethodName, arg.OriginName, arg.ParentPath())
	}
	return list
}

// ParseArgument parses "name, type, required=<marker>, description". A body
// with fewer than four comma-separated segments yields a diagnostic argument
// (see model.NewDiagnosticArgument). Text after a fourth comma is discarded.
func ParseArgument(body string) *model.Argument {
	segments := strings.Split(body, ",")
	if len(segments) < descriptorSegments {
		return model.NewDiagnosticArgument(body)
	}

	for i := range segments {
		segments[i] = strings.TrimSpace(segments[i])
	}

	required := strings.TrimSpace(strings.TrimPrefix(segments[2], requiredPrefix))

	return model.NewArgument(segments[0], segments[1], required, segments[3])
}

// PlaceArgument adds arg to list. Top-level names are appended. A dotted name
// is attached to the argument whose OriginName is its parent path (searched
// depth-first, roots in order), with Name, Level and LevelPrefix set from the
// path. placed is false when the parent does not exist; arg is then dropped
// and list is returned unchanged.
func PlaceArgument(list []*model.Argument, arg *model.Argument) ([]*model.Argument, bool) {
	if arg == nil {
		return list, false
	}

	if !arg.IsNested() {
		return append(list, arg), true
	}

	parent := model.FindArgument(list, arg.ParentPath())
	if parent == nil {
		return list, false
	}

	segments := strings.Split(arg.OriginName, model.PathSeparator)
	arg.Name = segments[len(segments)-1]
	arg.SetLevel(len(segments) - 1)
	parent.AddChild(arg)

	return list, true
}

// firstLink returns the trimmed content of the first {@link ...} in d
func firstLink(d javadoc.Description) string {
	links := d.InlineTags(linkTag)
	if len(links) == 0 {
		return ""
	}
	return strings.TrimSpace(links[0].Content)
}
