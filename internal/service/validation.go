package service

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/rookgm/storedesk/internal/models"
)

const (
	maxPeople     = 50
	minAddressLen = 5
	maxAddressLen = 250
)

var (
	phonePattern = regexp.MustCompile(`^(?:\+?91|0)?(\d{10})$`)
	namePattern  = regexp.MustCompile(`^[\p{L} .'-]{2,50}$`)
	otpPattern   = regexp.MustCompile(`^\d{4}$`)
	phoneNoise   = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

// NormalizePhone validates phone number and returns its 10 digit form
func NormalizePhone(phone string) (string, error) {
	m := phonePattern.FindStringSubmatch(phoneNoise.Replace(strings.TrimSpace(phone)))
	if m == nil {
		return "", &models.ValidationError{Field: "phoneNumber", Reason: "must be a 10 digit number"}
	}
	return m[1], nil
}

// ValidateName checks customer name
func ValidateName(name string) error {
	if !namePattern.MatchString(strings.TrimSpace(name)) {
		return &models.ValidationError{Field: "name", Reason: "must be 2 to 50 letters"}
	}
	return nil
}

// ValidateAddress checks delivery address
func ValidateAddress(address string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(address))
	if n < minAddressLen || n > maxAddressLen {
		return &models.ValidationError{Field: "address", Reason: "must be 5 to 250 characters"}
	}
	return nil
}

// ValidateOTP checks OTP format. Empty OTP is left to the transition check.
func ValidateOTP(otp string) error {
	if otp != "" && !otpPattern.MatchString(otp) {
		return &models.ValidationError{Field: "otp", Reason: "must be 4 digits"}
	}
	return nil
}

// ValidatePeople checks party size
func ValidatePeople(n int) error {
	if n < 1 || n > maxPeople {
		return &models.ValidationError{Field: "numberOfPeople", Reason: "must be between 1 and 50"}
	}
	return nil
}
