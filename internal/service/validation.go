package service

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf16"
)

// jsSpace is the whitespace set of an ECMAScript \s class. Go's \s only covers ASCII.
const jsSpace = `\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

var (
	// ASCII letters only; (?i) would also fold in signs such as U+212A KELVIN.
	namePattern  = regexp.MustCompile(`^[A-Za-z` + jsSpace + `]+$`)
	emailPattern = regexp.MustCompile(`^[^@` + jsSpace + `]+@[^@` + jsSpace + `]+\.[^@` + jsSpace + `]+$`)

	lowerPattern   = regexp.MustCompile(`[a-z]`)
	upperPattern   = regexp.MustCompile(`[A-Z]`)
	digitPattern   = regexp.MustCompile(`\d`)
	specialPattern = regexp.MustCompile(`[\W_]`)
)

const minPasswordLength = 8

func isValidName(name string) bool {
	return namePattern.MatchString(name)
}

func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// isStrongPassword requires at least 8 characters on a single line with a
// lowercase letter, an uppercase letter, a digit and a symbol. Length is
// counted in UTF-16 code units, so a character outside the BMP counts twice.
func isStrongPassword(password string) bool {
	if len(utf16.Encode([]rune(password))) < minPasswordLength {
		return false
	}
	if strings.ContainsAny(password, "\n\r\u2028\u2029") {
		return false
	}
	return lowerPattern.MatchString(password) &&
		upperPattern.MatchString(password) &&
		digitPattern.MatchString(password) &&
		specialPattern.MatchString(password)
}

// truthy treats nil, false, zero numbers and "" as empty. Every other value,
// including empty arrays and objects, counts as provided.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case float64:
		return val != 0 && !math.IsNaN(val)
	case float32:
		return val != 0 && !math.IsNaN(float64(val))
	case int:
		return val != 0
	case int32:
		return val != 0
	case int64:
		return val != 0
	default:
		return true
	}
}
