// Package validation provides input validation helpers.
package validation

// IsProductCode reports whether s is exactly 6 ASCII digits.
func IsProductCode(s string) bool {
	return isDigits(s, 6)
}

// IsCardNumber reports whether s is exactly 16 ASCII digits.
func IsCardNumber(s string) bool {
	return isDigits(s, 16)
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
