package javadoc

import "strings"

// keywords that the method regex can pick up as a "name" or "return type"
var noiseKeywords = map[string]bool{
	"if":       true,
	"else":     true,
	"switch":   true,
	"case":     true,
	"for":      true,
	"while":    true,
	"do":       true,
	"return":   true,
	"new":      true,
	"throw":    true,
	"throws":   true,
	"try":      true,
	"catch":    true,
	"finally":  true,
	"break":    true,
	"continue": true,
}

// isNoise reports whether a regex match is a keyword rather than a declaration
func isNoise(name string) bool {
	// RULE 1: Empty or whitespace-only names
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return true
	}

	// RULE 2: Java keywords and control flow
	return noiseKeywords[strings.ToLower(trimmed)]
}
