package domain

// Field-level validators for the registration form. Each is total and
// deterministic; lengths are raw byte counts, matching what the portal
// has always enforced.

// ValidateName reports whether a display name is long enough.
func ValidateName(name string) bool {
	return len(name) >= 5
}

// ValidatePhone reports whether a phone number is exactly ten ASCII
// digits. No separators, no country prefix.
func ValidatePhone(phone string) bool {
	if len(phone) != 10 {
		return false
	}
	for i := 0; i < len(phone); i++ {
		if phone[i] < '0' || phone[i] > '9' {
			return false
		}
	}
	return true
}

// ValidatePassword reports whether a password meets the minimum length.
func ValidatePassword(password string) bool {
	return len(password) >= 8
}
