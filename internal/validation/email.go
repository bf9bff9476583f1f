package validation

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

// ValidateEmail validates email format and length
// Uses Go's built-in net/mail parser which follows RFC 5322
func ValidateEmail(email string) error {
	// Check length (RFC 5321: local part max 64, domain max 255, total max 254 with @)
	if len(email) > 254 {
		return errors.New("email address is too long (max 254 characters)")
	}

	if email == "" {
		return errors.New("email address is required")
	}

	// Parse using Go's RFC 5322 compliant parser
	_, err := mail.ParseAddress(email)
	if err != nil {
		return errors.New("invalid email address format")
	}

	return nil
}

// ValidateInstitutionalEmail additionally requires the campus domain suffix,
// e.g. "@pitt.edu".
func ValidateInstitutionalEmail(email, domain string) error {
	err := ValidateEmail(email)
	if err != nil {
		return err
	}

	if !strings.HasSuffix(strings.ToLower(email), strings.ToLower(domain)) {
		return fmt.Errorf("email must end with %s", domain)
	}

	return nil
}
