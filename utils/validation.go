package utils

import (
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	slugRegex  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	hexColor   = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateSlug accepts lowercase letters, digits and single hyphens,
// between 3 and 60 characters.
func ValidateSlug(slug string) bool {
	if len(slug) < 3 || len(slug) > 60 {
		return false
	}
	return slugRegex.MatchString(slug)
}

func ValidateHexColor(color string) bool {
	return hexColor.MatchString(color)
}

// Slugify turns free text into a slug candidate (lowercase, hyphens,
// alphanumeric only). Uniqueness is handled by the caller.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastHyphen := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
