package errors

import (
	"unicode"
)

// maxPathLength bounds input paths accepted on the command line.
const maxPathLength = 4096

// ValidateInputPath validates a path given on the command line before it is opened.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 bytes
//   - No null bytes or control characters
//
// Existence and permissions are left to the open call, which reports
// FILE_ACCESS with the operating system's reason.
func ValidateInputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d bytes)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
