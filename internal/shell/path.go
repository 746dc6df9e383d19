package shell

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

// Path validation errors
var (
	ErrEmptyPath         = errors.New("path cannot be empty")
	ErrPathNotAbsolute   = errors.New("path must start with /")
	ErrPathNotNormalized = errors.New("path must not end with /")
	ErrPathQuery         = errors.New("path cannot contain a query string")
	ErrPathFragment      = errors.New("path cannot contain a fragment")
	ErrPathParent        = errors.New("path cannot contain parent directory references")
	ErrPathWildcard      = errors.New("path cannot contain wildcards")
)

// Segment validation errors
var (
	ErrSegmentTooShort           = errors.New("path segment must be at least 3 characters")
	ErrSegmentTooLong            = errors.New("path segment must be at most 63 characters")
	ErrSegmentInvalidChars       = errors.New("path segment must contain only lowercase letters, numbers, and hyphens")
	ErrSegmentInvalidStart       = errors.New("path segment must start with a lowercase letter")
	ErrSegmentInvalidEnd         = errors.New("path segment must end with a lowercase letter or number")
	ErrSegmentConsecutiveHyphens = errors.New("path segment cannot contain consecutive hyphens")
)

var segmentRegex = regexp.MustCompile(`^[a-z][a-z0-9-]*[a-z0-9]$`)

// NormalizePath returns the canonical form of a request path: a leading
// slash and no trailing slash, except for the root.
func NormalizePath(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	path = strings.TrimRight(path, "/")
	if path == "" {
		return "/"
	}
	return path
}

// ValidatePath checks a declared route path. The root path is valid; every
// other path is a sequence of segments accepted by ValidateSegment.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if !strings.HasPrefix(path, "/") {
		return ErrPathNotAbsolute
	}
	if strings.Contains(path, "?") {
		return ErrPathQuery
	}
	if strings.Contains(path, "#") {
		return ErrPathFragment
	}
	if strings.Contains(path, "..") {
		return ErrPathParent
	}
	if strings.Contains(path, "*") {
		return ErrPathWildcard
	}
	if path == "/" {
		return nil
	}
	if strings.HasSuffix(path, "/") {
		return ErrPathNotNormalized
	}

	for _, segment := range strings.Split(path[1:], "/") {
		if err := ValidateSegment(segment); err != nil {
			return err
		}
	}
	return nil
}

// ValidateSegment validates a single path segment:
// - 3-63 characters
// - Lowercase alphanumeric + hyphens only
// - Must start with a lowercase letter
// - Must end with a lowercase letter or digit
// - No consecutive hyphens
func ValidateSegment(segment string) error {
	if len(segment) < 3 {
		return ErrSegmentTooShort
	}
	if len(segment) > 63 {
		return ErrSegmentTooLong
	}

	if strings.Contains(segment, "--") {
		return ErrSegmentConsecutiveHyphens
	}

	if !segmentRegex.MatchString(segment) {
		first := rune(segment[0])
		if !unicode.IsLower(first) || !unicode.IsLetter(first) {
			return ErrSegmentInvalidStart
		}

		last := rune(segment[len(segment)-1])
		if !unicode.IsLower(last) && !unicode.IsDigit(last) {
			return ErrSegmentInvalidEnd
		}

		return ErrSegmentInvalidChars
	}

	return nil
}
