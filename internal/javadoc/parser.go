// Package javadoc extracts methods and their attached comments from Java source.
//
// It is a lexical scanner plus regular expressions, not a Java parser: comments
// and string literals are blanked out (offsets preserved) so the regexes only
// ever see code, then each method declaration is paired with the comment that
// immediately precedes it.
package javadoc

import (
	"regexp"
	"strings"

	"dockit/internal/logger"
)

// Annotation represents a Java annotation with its attributes
type Annotation struct {
	Name       string            // e.g., "GetMapping"
	Attributes map[string]string // e.g., {"value": "/users", "method": "GET"}
	Raw        string            // Original annotation text
}

// Method is one method declaration with the comment written above it
type Method struct {
	Name        string       // e.g., "getUser"
	Params      string       // e.g., "@PathVariable Long id"
	ReturnType  string       // e.g., "Result<UserVO>"
	Annotations []Annotation // e.g., @GetMapping("/users/{id}")
	Line        int          // 1-based line of the method name
	Comment     *Comment     // nil when nothing is attached
}

// JavaFile is the result of scanning one source file
type JavaFile struct {
	Package     string       // e.g., "com.company.user"
	ClassName   string       // First top-level type name
	Annotations []Annotation // Annotations of the first type declaration
	Methods     []Method
}

var (
	packageRegex    = regexp.MustCompile(`package\s+([\w.]+)\s*;`)
	classRegex      = regexp.MustCompile(`\b(?:class|interface|enum|record)\s+(\w+)`)
	typeDeclRegex   = regexp.MustCompile(`\b(?:class|interface|enum|record)\s+\w+`)
	annotationRegex = regexp.MustCompile(`@(\w+)(?:\s*\(((?:[^()]|\([^()]*\))*)\))?`)
	attrRegex       = regexp.MustCompile(`(\w+)\s*=\s*(\{[^}]*\}|"[^"]*"|[^,]+)`)

	// Groups: 1 return type, 2 method name, 3 params, 4 body brace or terminator
	methodRegex = regexp.MustCompile(`([\w<>,.?\[\]]+(?:\s*<[\w<>,.?\[\]\s]*>)?(?:\[\])*)\s+(\w+)\s*\(((?:[^()]|\([^()]*\))*)\)\s*(?:throws\s+[\w.,\s]+)?\s*(\{|;)`)
)

var modifiers = map[string]bool{
	"public": true, "protected": true, "private": true, "static": true, "final": true,
	"abstract": true, "synchronized": true, "native": true, "default": true, "strictfp": true,
}

// ParseFile scans Java source and returns its methods with attached comments
func ParseFile(content string) (*JavaFile, error) {
	code, comments := blankNonCode(content)

	file := &JavaFile{
		Package:   firstGroup(packageRegex, code),
		ClassName: firstGroup(classRegex, code),
		Methods:   []Method{},
	}

	if loc := typeDeclRegex.FindStringIndex(code); loc != nil {
		start := lastBoundary(code, loc[0])
		file.Annotations = parseAnnotations(code, content, start, loc[0])
	}

	scope := memberScopes(code)

	for _, m := range methodRegex.FindAllStringSubmatchIndex(code, -1) {
		returnType := strings.TrimSpace(code[m[2]:m[3]])
		name := code[m[4]:m[5]]
		nameStart := m[4]

		if !scope[nameStart] || modifiers[returnType] || isNoise(name) || isNoise(returnType) {
			continue
		}

		declStart := lastBoundary(code, m[2])
		method := Method{
			Name:        name,
			ReturnType:  returnType,
			Params:      strings.Join(strings.Fields(content[m[6]:m[7]]), " "),
			Annotations: parseAnnotations(code, content, declStart, m[2]),
			Line:        strings.Count(content[:nameStart], "\n") + 1,
			Comment:     attachedComment(comments, declStart, m[2]),
		}
		file.Methods = append(file.Methods, method)
		logger.Debug("[JAVADOC] %s.%s (line %d, comment=%v)", file.ClassName, name, method.Line, method.Comment != nil)
	}

	return file, nil
}

// span of one comment in the original source
type commentSpan struct {
	start, end int
	raw        string
}

// blankNonCode replaces comments and string/char literals with spaces
// (newlines kept) and returns the comments it found
func blankNonCode(content string) (string, []commentSpan) {
	code := []byte(content)
	var comments []commentSpan

	blank := func(from, to int) {
		for i := from; i < to && i < len(code); i++ {
			if code[i] != '\n' {
				code[i] = ' '
			}
		}
	}

	for i := 0; i < len(content); i++ {
		c := content[i]
		switch {
		case c == '/' && i+1 < len(content) && content[i+1] == '*':
			end := strings.Index(content[i+2:], "*/")
			stop := len(content)
			if end >= 0 {
				stop = i + 2 + end + 2
			}
			comments = append(comments, commentSpan{start: i, end: stop, raw: content[i:stop]})
			blank(i, stop)
			i = stop - 1
		case c == '/' && i+1 < len(content) && content[i+1] == '/':
			stop := strings.IndexByte(content[i:], '\n')
			if stop < 0 {
				stop = len(content)
			} else {
				stop += i
			}
			comments = append(comments, commentSpan{start: i, end: stop, raw: content[i:stop]})
			blank(i, stop)
			i = stop - 1
		case c == '"' || c == '\'':
			stop := closingQuote(content, i)
			blank(i+1, stop-1)
			i = stop - 1
		}
	}

	return string(code), comments
}

// closingQuote returns the offset just past the literal opened at start
func closingQuote(content string, start int) int {
	quote := content[start]
	escaped := false
	for i := start + 1; i < len(content); i++ {
		switch {
		case escaped:
			escaped = false
		case content[i] == '\\':
			escaped = true
		case content[i] == quote:
			return i + 1
		case content[i] == '\n':
			return i
		}
	}
	return len(content)
}

// memberScopes marks every offset whose innermost enclosing brace opens a
// type body. Method-like matches anywhere else (calls inside bodies, lambdas)
// are ignored.
func memberScopes(code string) []bool {
	scope := make([]bool, len(code)+1)
	var stack []bool
	boundary := 0

	for i := 0; i < len(code); i++ {
		switch code[i] {
		case '{':
			stack = append(stack, typeDeclRegex.MatchString(code[boundary:i]))
			boundary = i + 1
		case '}':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			boundary = i + 1
		case ';':
			boundary = i + 1
		}
		scope[i] = len(stack) > 0 && stack[len(stack)-1]
	}
	scope[len(code)] = false
	return scope
}

// lastBoundary returns the offset after the last ; { or } before pos
func lastBoundary(code string, pos int) int {
	idx := strings.LastIndexAny(code[:pos], ";{}")
	return idx + 1
}

// attachedComment returns the last block comment written between the
// previous statement boundary and the declaration, or nil
func attachedComment(comments []commentSpan, declStart, declEnd int) *Comment {
	for i := len(comments) - 1; i >= 0; i-- {
		cs := comments[i]
		if cs.end > declEnd {
			continue
		}
		if cs.start < declStart {
			return nil
		}
		// Line comments between a doc comment and its method do not replace it
		if !strings.HasPrefix(cs.raw, "/*") {
			continue
		}
		return ParseComment(cs.raw)
	}
	return nil
}

// parseAnnotations matches annotations in code[from:to] (comments blanked)
// and reads their text back from the original content
func parseAnnotations(code, content string, from, to int) []Annotation {
	annotations := []Annotation{}
	for _, loc := range annotationRegex.FindAllStringSubmatchIndex(code[from:to], -1) {
		annotation := Annotation{
			Name:       content[from+loc[2] : from+loc[3]],
			Attributes: make(map[string]string),
			Raw:        content[from+loc[0] : from+loc[1]],
		}
		if loc[4] >= 0 && loc[5] > loc[4] {
			parseAnnotationAttributes(&annotation, content[from+loc[4]:from+loc[5]])
		}
		annotations = append(annotations, annotation)
	}
	return annotations
}

// parseAnnotationAttributes parses annotation attributes into a map
func parseAnnotationAttributes(annotation *Annotation, attributesText string) {
	attributesText = strings.TrimSpace(attributesText)

	// @Annotation("value") or @Annotation({"a", "b"})
	if strings.HasPrefix(attributesText, "\"") || strings.HasPrefix(attributesText, "{") {
		annotation.Attributes["value"] = firstLiteral(attributesText)
		return
	}

	for _, match := range attrRegex.FindAllStringSubmatch(attributesText, -1) {
		annotation.Attributes[match[1]] = firstLiteral(strings.TrimSpace(match[2]))
	}
}

// firstLiteral unwraps `"x"`, `{"x", "y"}` (first element) or returns s trimmed
func firstLiteral(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	if idx := strings.Index(s, ","); idx >= 0 && strings.HasPrefix(strings.TrimSpace(s), "\"") {
		s = s[:idx]
	}
	return trimQuotes(s)
}

func trimQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func firstGroup(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); len(m) > 1 {
		return m[1]
	}
	return ""
}

// CombineURLPaths joins class-level and method-level mapping paths
func CombineURLPaths(classPath, methodPath string) string {
	classPath = strings.TrimSpace(classPath)
	methodPath = strings.TrimSpace(methodPath)

	if classPath == "" {
		return methodPath
	}
	if methodPath == "" {
		return classPath
	}

	classPath = strings.TrimSuffix(classPath, "/")
	methodPath = strings.TrimPrefix(methodPath, "/")

	return classPath + "/" + methodPath
}

// ClassMappingURL returns the class-level @RequestMapping path
func (f *JavaFile) ClassMappingURL() string {
	for _, ann := range f.Annotations {
		if ann.Name == "RequestMapping" {
			if v := mappingPath(ann); v != "" {
				return v
			}
		}
	}
	return ""
}

// MappingURL returns the full URL (class path + method path) of a Spring
// handler method, or "" when the method carries no mapping annotation
func (m *Method) MappingURL(classPath string) string {
	for _, ann := range m.Annotations {
		if strings.HasSuffix(ann.Name, "Mapping") {
			return CombineURLPaths(classPath, mappingPath(ann))
		}
	}
	return ""
}

// HTTPMethod returns the HTTP verb implied by the mapping annotation
func (m *Method) HTTPMethod() string {
	for _, ann := range m.Annotations {
		switch ann.Name {
		case "GetMapping":
			return "GET"
		case "PostMapping":
			return "POST"
		case "PutMapping":
			return "PUT"
		case "DeleteMapping":
			return "DELETE"
		case "PatchMapping":
			return "PATCH"
		case "RequestMapping":
			if method, ok := ann.Attributes["method"]; ok {
				// RequestMethod.POST
				if idx := strings.LastIndex(method, "."); idx >= 0 {
					method = method[idx+1:]
				}
				return strings.ToUpper(strings.TrimSpace(method))
			}
			return ""
		}
	}
	return ""
}

func mappingPath(ann Annotation) string {
	if v, ok := ann.Attributes["value"]; ok {
		return v
	}
	if v, ok := ann.Attributes["path"]; ok {
		return v
	}
	return ""
}
