package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var mobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// ValidateMobileNo normalizes a mobile number to its bare 10-digit form and
// validates it. Accepts numbers with spaces, dashes, a leading +91/91 country
// code, or a leading zero.
func ValidateMobileNo(mobileNo string) (string, error) {
	stripped := strings.ReplaceAll(mobileNo, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.TrimPrefix(stripped, "+")

	if strings.HasPrefix(stripped, "91") && len(stripped) == 12 {
		stripped = stripped[2:]
	} else if strings.HasPrefix(stripped, "0") && len(stripped) == 11 {
		stripped = stripped[1:]
	}

	if !mobilePattern.MatchString(stripped) {
		return "", fmt.Errorf("invalid mobile number format")
	}

	return stripped, nil
}

// FormatWithCountryCode renders a normalized mobile number for out-of-band
// delivery, e.g. WhatsApp recipients
func FormatWithCountryCode(mobileNo string) string {
	return "+91" + mobileNo
}
