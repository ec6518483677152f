package dicomio

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DicomExtensions are common DICOM file extensions.
var DicomExtensions = []string{".dcm", ".DCM", ".dicom", ".DICOM"}

// ExcludedNames are filenames to skip.
var ExcludedNames = map[string]bool{
	"DICOMDIR":    true,
	".DS_Store":   true,
	"Thumbs.db":   true,
	"desktop.ini": true,
	"README":      true,
	"README.md":   true,
}

// ExcludedDirs are directory names to skip entirely.
var ExcludedDirs = map[string]bool{
	".git":    true,
	".idea":   true,
	".vscode": true,
	"vendor":  true,
}

// FindDicomFiles finds all DICOM files under inputPath, sorted by path.
// Files without a recognized extension are included when they carry the
// DICOM magic bytes.
func FindDicomFiles(inputPath string, recursive bool) ([]string, error) {
	var files []string

	walkFn := func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip files we can't access
		}

		if info.IsDir() {
			if ExcludedDirs[info.Name()] {
				return filepath.SkipDir
			}
			if !recursive && path != inputPath {
				return filepath.SkipDir
			}
			return nil
		}

		if ExcludedNames[info.Name()] {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		for _, de := range DicomExtensions {
			if ext == strings.ToLower(de) {
				files = append(files, path)
				return nil
			}
		}

		if ext == "" && hasDicomMagicBytes(path) {
			files = append(files, path)
		}

		return nil
	}

	if err := filepath.Walk(inputPath, walkFn); err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// hasDicomMagicBytes checks for "DICM" at byte offset 128.
func hasDicomMagicBytes(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	header := make([]byte, 132)
	if _, err := io.ReadFull(file, header); err != nil {
		return false
	}

	return string(header[128:132]) == "DICM"
}
