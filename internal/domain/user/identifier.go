package user

import (
	"strings"
	"unicode"
)

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Digits strips everything but digits, so "12.345.678/0001-90" and
// "(11) 98888-7777" compare by their numbers only.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SplitIdentifier classifies a login identifier. Anything with an "@" is an
// email; otherwise its digits are matched against phone and tax id.
func SplitIdentifier(identifier string) (email, digits string) {
	identifier = strings.TrimSpace(identifier)
	if strings.Contains(identifier, "@") {
		return NormalizeEmail(identifier), ""
	}
	return "", Digits(identifier)
}

// ValidTaxID accepts a CPF (11 digits) or CNPJ (14 digits), formatted or not.
// Check digits are not verified; legacy records carry unverified numbers.
func ValidTaxID(taxID string) bool {
	n := len(Digits(taxID))
	return n == 11 || n == 14
}
