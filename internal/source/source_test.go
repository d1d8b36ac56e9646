package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

const testDataDir = "testdata"

func TestScanDirectory(t *testing.T) {
	files, err := ScanDirectory(testDataDir, nil)
	require.NoError(t, err)

	var rel []string
	for _, f := range files {
		r, _ := filepath.Rel(testDataDir, f)
		rel = append(rel, filepath.ToSlash(r))
	}
	assert.Equal(t, []string{
		"build/generated/Generated.java",
		"com/company/user/UserController.java",
		"com/company/user/UserService.java",
	}, rel)
}

func TestScanDirectoryExcludes(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		want     int
	}{
		{"double star", []string{"**/generated/**"}, 2},
		{"bare name", []string{"build"}, 2},
		{"relative path", []string{"com/company/*"}, 1},
		{"no match", []string{"**/target/**"}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := ScanDirectory(testDataDir, tt.patterns)
			require.NoError(t, err)
			assert.Len(t, files, tt.want)
		})
	}
}

func TestScanDirectoryMissingRoot(t *testing.T) {
	_, err := ScanDirectory(filepath.Join(testDataDir, "does-not-exist"), nil)
	assert.Error(t, err)
}

func TestReadFileUTF8(t *testing.T) {
	content, err := ReadFile(filepath.Join(testDataDir, "com/company/user/UserService.java"), nil)
	require.NoError(t, err)

	// Comments survive reading
	assert.Contains(t, content, "@title Find user")
}

func TestReadFileStripsBOM(t *testing.T) {
	p := filepath.Join(t.TempDir(), "Bom.java")
	require.NoError(t, os.WriteFile(p, []byte("\ufeffclass Bom {}"), 0644))

	content, err := ReadFile(p, nil)
	require.NoError(t, err)
	assert.Equal(t, "class Bom {}", content)
}

func TestReadFileEUCKR(t *testing.T) {
	text := "/** @title 사용자 조회 */"
	encoded, _, err := transform.Bytes(korean.EUCKR.NewEncoder(), []byte(text))
	require.NoError(t, err)

	p := filepath.Join(t.TempDir(), "Legacy.java")
	require.NoError(t, os.WriteFile(p, encoded, 0644))

	content, err := ReadFile(p, []string{"utf-8", "cp949"})
	require.NoError(t, err)
	assert.Equal(t, text, content)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.java"), nil)
	assert.Error(t, err)
}

func TestIsValidEncoding(t *testing.T) {
	assert.True(t, IsValidEncoding("UTF-8"))
	assert.True(t, IsValidEncoding("euc-kr"))
	assert.True(t, IsValidEncoding("shift_jis"))
	assert.False(t, IsValidEncoding("klingon"))
}
