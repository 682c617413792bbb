package validation

import "regexp"

var (
	nameRegex   = regexp.MustCompile(`^[a-zA-Z]+$`)
	emailRegex  = regexp.MustCompile(`^([a-zA-Z0-9_.\-])+@(([a-zA-Z0-9\-])+\.)+([a-zA-Z0-9]{2,4})+$`)
	mobileRegex = regexp.MustCompile(`\b\d{10}\b`)
)

// IsNameValid reports whether name is non-empty and entirely alphabetic.
// Digits, spaces, and punctuation all disqualify it.
func IsNameValid(name string) bool {
	if name == "" {
		return false
	}
	return nameRegex.MatchString(name)
}

// IsEmailValid reports whether email matches local@domain.tld where the
// TLD is built from 2-4 character runs. No DNS or deliverability checks.
func IsEmailValid(email string) bool {
	return emailRegex.MatchString(email)
}

// IsMobileValid reports whether mobile contains a word-bounded run of ten
// digits. Empty values and leading zeros are rejected. Note this is a
// substring match: a ten-digit run embedded in a longer string passes.
func IsMobileValid(mobile string) bool {
	if mobile == "" || mobile[0] == '0' {
		return false
	}
	return mobileRegex.MatchString(mobile)
}

// IsGenderValid reports whether the value is a boolean.
func IsGenderValid(gender interface{}) bool {
	_, ok := gender.(bool)
	return ok
}
