package finder

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// utf8BOM prefixes files saved by Visual Studio with default settings
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ScanDirectory walks the root directory and collects .cs files,
// skipping directories matching excludePatterns
func ScanDirectory(root string, excludePatterns []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			// Skip VCS and build output always
			switch d.Name() {
			case ".git", ".svn", "bin", "obj":
				return filepath.SkipDir
			}

			relPath, _ := filepath.Rel(root, path)
			relPath = filepath.ToSlash(relPath)

			for _, pat := range excludePatterns {
				if matchGlob(relPath, pat) {
					return filepath.SkipDir
				}
			}
			return nil
		}

		if strings.HasSuffix(strings.ToLower(path), ".cs") {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	return files, nil
}

// FindClassFile locates the candidate source file for a class name. When
// multiple files match, a path whose directory is one of the
// conventional model folders wins; otherwise the first candidate is
// taken. found is false when nothing matches.
func FindClassFile(className, root string, modelDirs, excludePatterns []string) (path string, found bool) {
	files, err := ScanDirectory(root, excludePatterns)
	if err != nil {
		return "", false
	}

	target := strings.ToLower(className) + ".cs"
	var candidates []string
	for _, f := range files {
		if strings.ToLower(filepath.Base(f)) == target {
			candidates = append(candidates, f)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}

	for _, c := range candidates {
		dir := strings.ToLower(filepath.Base(filepath.Dir(c)))
		for _, md := range modelDirs {
			if dir == strings.ToLower(md) {
				return c, true
			}
		}
	}
	return candidates[0], true
}

// ReadFile reads a source file with encoding tolerance. UTF-8 (with or
// without BOM) is taken as-is; anything else is decoded as Windows-1252,
// the usual codepage of pre-Unicode .NET sources.
func ReadFile(path string) (string, error) {
	rawBytes, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	rawBytes = bytes.TrimPrefix(rawBytes, utf8BOM)

	if utf8.Valid(rawBytes) {
		return string(rawBytes), nil
	}

	decoder := charmap.Windows1252.NewDecoder()
	decodedBytes, _, err := transform.Bytes(decoder, rawBytes)
	if err != nil {
		// Decoding failed outright; hand back what we have
		return string(rawBytes), nil
	}
	return string(decodedBytes), nil
}

// matchGlob matches an exclude pattern against a slash-separated
// relative path. Plain names match any path segment; ** patterns are
// reduced to containment the way the config matcher does it.
func matchGlob(path, pattern string) bool {
	if strings.Contains(pattern, "**") {
		clean := strings.ReplaceAll(pattern, "**", "")
		clean = strings.Trim(clean, "/")
		return clean != "" && strings.Contains(path, clean)
	}

	for _, segment := range strings.Split(path, "/") {
		if strings.EqualFold(segment, pattern) {
			return true
		}
	}
	return false
}
