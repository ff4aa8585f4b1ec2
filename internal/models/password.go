package models

// passwordSymbols is the set of punctuation characters that satisfy the
// symbol requirement of the password policy.
const passwordSymbols = "!@#$%^&*()_+"

// ValidatePassword reports whether a candidate password satisfies the
// registration policy: at least 8 characters, at least one uppercase
// letter, one digit, and one symbol from passwordSymbols.
func ValidatePassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var hasUpper, hasDigit, hasSymbol bool
	for _, c := range password {
		switch {
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= '0' && c <= '9':
			hasDigit = true
		default:
			for _, s := range passwordSymbols {
				if c == s {
					hasSymbol = true
					break
				}
			}
		}
	}

	return hasUpper && hasDigit && hasSymbol
}
