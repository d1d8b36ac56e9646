// Package source finds Java files under a project root and reads them with
// encoding detection.
package source

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"

	"dockit/internal/logger"
)

const javaExt = ".java"

// DefaultEncodings is the decoding order used when none is configured
var DefaultEncodings = []string{"utf-8", "euc-kr"}

// ScanDirectory walks root and returns every .java file in lexical order.
// Directories matching one of excludePatterns (relative, slash-separated)
// are skipped, as are VCS metadata directories.
func ScanDirectory(root string, excludePatterns []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if d.Name() == ".git" || d.Name() == ".svn" {
				return filepath.SkipDir
			}

			relPath, _ := filepath.Rel(root, p)
			relPath = filepath.ToSlash(relPath)

			for _, pat := range excludePatterns {
				if matchGlob(relPath, pat) {
					logger.Debug("[SCAN] excluded %s (%s)", relPath, pat)
					return filepath.SkipDir
				}
			}
			return nil
		}

		if strings.HasSuffix(p, javaExt) {
			files = append(files, p)
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	return files, nil
}

// matchGlob matches a directory against a pattern such as "build",
// "**/generated/**" or "src/test/*". A "**" pattern matches when its literal
// part appears as a path segment sequence anywhere in relPath.
func matchGlob(relPath, pattern string) bool {
	pattern = strings.TrimSpace(filepath.ToSlash(pattern))
	if pattern == "" || relPath == "." {
		return false
	}

	if strings.Contains(pattern, "**") {
		clean := strings.Trim(strings.ReplaceAll(pattern, "**", ""), "/")
		if clean == "" {
			return false
		}
		wrapped := "/" + relPath + "/"
		return strings.Contains(wrapped, "/"+clean+"/")
	}

	if ok, _ := path.Match(pattern, relPath); ok {
		return true
	}
	// Bare names match any directory with that name
	if !strings.Contains(pattern, "/") {
		ok, _ := path.Match(pattern, path.Base(relPath))
		return ok
	}
	return false
}

// ReadFile reads path and decodes it. Valid UTF-8 is returned as is;
// otherwise each configured encoding is tried in order and the first one that
// decodes without error wins. Comments are preserved.
func ReadFile(p string, encodings []string) (string, error) {
	raw, err := os.ReadFile(p)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	if utf8.Valid(raw) {
		return strings.TrimPrefix(string(raw), "\ufeff"), nil
	}

	if len(encodings) == 0 {
		encodings = DefaultEncodings
	}

	for _, name := range encodings {
		enc, err := lookupEncoding(name)
		if err != nil {
			logger.Warn("[READ] %s: %v", p, err)
			continue
		}
		if enc == nil {
			// utf-8 already failed
			continue
		}

		decoded, _, err := transform.Bytes(enc.NewDecoder(), raw)
		if err != nil {
			continue
		}
		logger.Debug("[READ] %s decoded as %s", p, name)
		return string(decoded), nil
	}

	// Fall back to the raw bytes (might be corrupted)
	logger.Warn("[READ] %s: no configured encoding matched, using raw bytes", p)
	return string(raw), nil
}

// lookupEncoding resolves an encoding label. It returns a nil encoding for
// UTF-8.
func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf-8", "utf8":
		return nil, nil
	case "euc-kr", "cp949", "ms949", "uhc":
		return korean.EUCKR, nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	return enc, nil
}

// IsValidEncoding reports whether name is a label ReadFile understands
func IsValidEncoding(name string) bool {
	_, err := lookupEncoding(name)
	return err == nil
}
